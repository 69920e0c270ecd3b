// SPDX-License-Identifier: MIT
// Package: rngraph/pointset
//
// errors.go — sentinel errors for the pointset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors wrap them with the method tag: "Lattice: nx=0 ...: %w".
//   • Option constructors panic on meaningless values instead.

package pointset

import "errors"

// ErrTooFewPoints indicates that a size parameter (n, nx, ny, nz) is below
// the constructor's minimum.
var ErrTooFewPoints = errors.New("pointset: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (or jitter) ran
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("pointset: rng is required")

// ErrUnknownShape indicates an unrecognised shape name passed to ByName.
var ErrUnknownShape = errors.New("pointset: unknown shape")
