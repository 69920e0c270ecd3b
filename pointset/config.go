package pointset

import (
	"math/rand"

	"github.com/katalvlaran/rngraph/geom"
)

// pointConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type pointConfig struct {
	rng    *rand.Rand // nil means "no randomness"
	scale  float64    // > 0
	origin geom.Point // translation
	jitter float64    // ≥ 0
}

// newPointConfig applies opts in order over deterministic defaults.
func newPointConfig(opts ...Option) pointConfig {
	cfg := pointConfig{
		scale: DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place translates a local coordinate by the origin and applies jitter.
// Callers have already checked that jitter > 0 implies rng != nil.
func (c pointConfig) place(x, y, z float64) geom.Point {
	if c.jitter > 0 {
		x += c.rng.NormFloat64() * c.jitter
		y += c.rng.NormFloat64() * c.jitter
		z += c.rng.NormFloat64() * c.jitter
	}

	return geom.Pt(c.origin.X+x, c.origin.Y+y, c.origin.Z+z)
}
