package rng

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rngraph/geom"
)

// distFunc returns the distance between points[i] and points[j].
type distFunc func(i, j int) float64

// newDistFunc returns the distance lookup used by the scan.
// With caching enabled and n ≥ 2 every unordered pair is evaluated once
// into a symmetric matrix; Distance is bit-exact symmetric, so the cached
// value equals the on-demand value in either direction.
//
// Complexity: O(n²) time and memory when cached, O(1) otherwise.
func newDistFunc(points []geom.Point, cached bool) distFunc {
	n := len(points)
	if !cached || n < 2 {
		return func(i, j int) float64 {
			return points[i].Distance(points[j])
		}
	}

	table := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			table.SetSym(i, j, points[i].Distance(points[j]))
		}
	}

	return table.At
}
