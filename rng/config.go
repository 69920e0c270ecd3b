package rng

import "runtime"

// buildConfig aggregates the knobs resolved from Options.
type buildConfig struct {
	workers   int      // ≥1; 1 means sequential
	maxPoints int      // 0 means unlimited
	observer  Observer // nil means nobody listens
	noCache   bool     // compute distances on demand
}

// newBuildConfig starts from the defaults and applies opts in order
// (later options override earlier ones).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}
