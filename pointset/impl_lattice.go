// SPDX-License-Identifier: MIT
// Package: rngraph/pointset
//
// impl_lattice.go — Lattice(nx, ny, nz) constructor.
//
// Contract:
//   • nx, ny, nz ≥ 1 (else ErrTooFewPoints).
//   • Points are emitted x-fastest: index = x + nx·(y + ny·z).
//   • Coordinate (x·Scale, y·Scale, z·Scale) + Origin.
//
// Complexity: O(nx·ny·nz).

package pointset

import (
	"math"

	"github.com/katalvlaran/rngraph/geom"
)

// Lattice returns a Constructor for an nx×ny×nz rectangular lattice.
func Lattice(nx, ny, nz int) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		for _, dim := range []struct {
			name string
			v    int
		}{{"nx", nx}, {"ny", ny}, {"nz", nz}} {
			if err := validateMin(MethodLattice, dim.name, dim.v, MinLatticeDim); err != nil {
				return nil, err
			}
		}
		if err := validateRand(MethodLattice, cfg, false); err != nil {
			return nil, err
		}

		return lattice(cfg, nx, ny, nz, nx*ny*nz), nil
	}
}

// LatticeIndex maps lattice coordinates to the point index used by Lattice.
func LatticeIndex(nx, ny, x, y, z int) int {
	return x + nx*(y+ny*z)
}

// latticeN emits the first n points of the smallest k×k×k cube holding n.
func latticeN(n int) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if err := validateMin(MethodLattice, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodLattice, cfg, false); err != nil {
			return nil, err
		}
		k := int(math.Ceil(math.Cbrt(float64(n))))
		for k*k*k < n { // guard against Cbrt rounding down
			k++
		}

		return lattice(cfg, k, k, k, n), nil
	}
}

// lattice emits at most limit points of an nx×ny×nz lattice, x-fastest.
func lattice(cfg pointConfig, nx, ny, nz, limit int) []geom.Point {
	pts := make([]geom.Point, 0, limit)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				if len(pts) == limit {
					return pts
				}
				pts = append(pts, cfg.place(float64(x)*cfg.scale, float64(y)*cfg.scale, float64(z)*cfg.scale))
			}
		}
	}

	return pts
}
