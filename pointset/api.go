// SPDX-License-Identifier: MIT
// Package: rngraph/pointset
//
// api.go — thin public entry-points for the pointset package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg once, runs cons
//     in order and concatenates their output.
//   - Constructors are declared here and implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical points.

package pointset

import (
	"fmt"

	"github.com/katalvlaran/rngraph/geom"
)

// Constructor generates points from a resolved configuration. Constructors
// validate their parameters first and return wrapped sentinels; they never
// panic.
type Constructor func(cfg pointConfig) ([]geom.Point, error)

// Build resolves opts into one configuration (sharing one RNG stream) and
// runs cons in order, concatenating their points. The first constructor
// error is returned wrapped with "Build: ".
//
// Complexity: Σ cost of constructors + O(total points) for concatenation.
func Build(opts []Option, cons ...Constructor) ([]geom.Point, error) {
	cfg := newPointConfig(opts...)

	out := make([]geom.Point, 0)
	for _, con := range cons {
		pts, err := con(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		out = append(out, pts...)
	}

	return out, nil
}

// ByName returns the constructor for a shape name (ShapeLine, ShapeUniform,
// ShapeSphere, ShapeLattice). Lattice shapes use the smallest cube with at
// least n points, truncated to exactly n in row-major order.
func ByName(shape string, n int) (Constructor, error) {
	switch shape {
	case ShapeLine:
		return Line(n), nil
	case ShapeUniform:
		return Uniform(n), nil
	case ShapeSphere:
		return Sphere(n), nil
	case ShapeLattice:
		return latticeN(n), nil
	default:
		return nil, fmt.Errorf("%s: %q: %w", MethodByName, shape, ErrUnknownShape)
	}
}
