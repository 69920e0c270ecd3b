package rng

import (
	"fmt"

	"github.com/katalvlaran/rngraph/geom"
)

// blocker runs the dominance test for the pair (i, j) over n points.
// It returns the first k (ascending, k ∉ {i,j}) with
// dist(k,i) < d(i,j) and dist(k,j) < d(i,j), and the number of third
// points examined. Ties never block: the comparison is strict on both sides.
//
// Complexity: O(n) time, O(1) space.
func blocker(dist distFunc, n, i, j int) (k int, blocked bool, checks int) {
	d := dist(i, j)
	for k = 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		checks++
		if dist(k, i) < d && dist(k, j) < d {
			return k, true, checks
		}
	}

	return -1, false, checks
}

// Linkable reports whether points[i] and points[j] are relative neighbours
// within points. The order of i and j does not matter.
//
// Errors: ErrIndexOutOfRange, ErrSelfPair, ErrNonFinite.
// Complexity: O(n) time, O(1) space.
func Linkable(points []geom.Point, i, j int) (bool, error) {
	_, blocked, err := queryPair(methodLinkable, points, i, j)
	if err != nil {
		return false, err
	}

	return !blocked, nil
}

// Blocker returns the first point index k, in ascending order, that is
// strictly closer to both points[i] and points[j] than they are to each
// other. ok is false when the pair is linkable.
//
// Errors: ErrIndexOutOfRange, ErrSelfPair, ErrNonFinite.
// Complexity: O(n) time, O(1) space.
func Blocker(points []geom.Point, i, j int) (k int, ok bool, err error) {
	return queryPair(methodBlocker, points, i, j)
}

// queryPair validates a single-pair query and runs the dominance test with
// on-demand distances.
func queryPair(method string, points []geom.Point, i, j int) (int, bool, error) {
	n := len(points)
	if i < 0 || i >= n || j < 0 || j >= n {
		return -1, false, fmt.Errorf("%s: pair (%d,%d) with n=%d: %w", method, i, j, n, ErrIndexOutOfRange)
	}
	if i == j {
		return -1, false, fmt.Errorf("%s: pair (%d,%d): %w", method, i, j, ErrSelfPair)
	}
	if err := geom.Validate(points); err != nil {
		return -1, false, fmt.Errorf("%s: %w", method, err)
	}
	if i > j {
		i, j = j, i
	}
	k, blocked, _ := blocker(newDistFunc(points, false), n, i, j)

	return k, blocked, nil
}
