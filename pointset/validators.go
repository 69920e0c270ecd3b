package pointset

import "fmt"

// validateMin ensures got ≥ min, wrapping ErrTooFewPoints otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, name, got, min, ErrTooFewPoints)
	}

	return nil
}

// validateRand ensures an RNG is present when the constructor needs one.
func validateRand(method string, cfg pointConfig, stochastic bool) error {
	if (stochastic || cfg.jitter > 0) && cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
