package pointset

import "github.com/katalvlaran/rngraph/geom"

// Uniform returns a Constructor emitting n points uniformly distributed in
// the cube [0, Scale)³ + Origin. Requires WithSeed or WithRand.
//
// Complexity: O(n).
func Uniform(n int) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if err := validateMin(MethodUniform, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodUniform, cfg, true); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, n)
		for i := range pts {
			x := cfg.rng.Float64() * cfg.scale
			y := cfg.rng.Float64() * cfg.scale
			z := cfg.rng.Float64() * cfg.scale
			pts[i] = cfg.place(x, y, z)
		}

		return pts, nil
	}
}
