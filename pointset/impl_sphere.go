package pointset

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rngraph/geom"
)

// Sphere returns a Constructor emitting n points uniformly distributed on
// the sphere of radius Scale centred at Origin. Directions are normalised
// standard Gaussian vectors, which are isotropic. Requires WithSeed or
// WithRand.
//
// Complexity: O(n) expected.
func Sphere(n int) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if err := validateMin(MethodSphere, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodSphere, cfg, true); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, n)
		for i := range pts {
			var v r3.Vec
			for r3.Norm2(v) == 0 { // resample the (measure-zero) origin
				v = r3.Vec{X: cfg.rng.NormFloat64(), Y: cfg.rng.NormFloat64(), Z: cfg.rng.NormFloat64()}
			}
			v = r3.Scale(cfg.scale, r3.Unit(v))
			pts[i] = cfg.place(v.X, v.Y, v.Z)
		}

		return pts, nil
	}
}
