package geom

import "fmt"

// Validate checks that every point has finite coordinates.
// The first offending point is reported with its index; the returned error
// wraps ErrNonFinite.
//
// Complexity: O(n) time, O(1) space.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("point %d %v: %w", i, p, ErrNonFinite)
		}
	}

	return nil
}
