package pointset

import "github.com/katalvlaran/rngraph/geom"

// Line returns a Constructor emitting n points (i·Scale, 0, 0), i = 0..n-1.
// Its relative neighborhood graph is the path 0–1–…–(n-1).
//
// Complexity: O(n).
func Line(n int) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if err := validateMin(MethodLine, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodLine, cfg, false); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, n)
		for i := 0; i < n; i++ {
			pts[i] = cfg.place(float64(i)*cfg.scale, 0, 0)
		}

		return pts, nil
	}
}
