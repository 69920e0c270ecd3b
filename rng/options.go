// SPDX-License-Identifier: MIT
// Package: rngraph/rng
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • No option changes the resulting graph; they only change how it is
//     computed, what is rejected up front, and who is told about it.

package rng

// Option customizes a Build call by mutating its buildConfig.
type Option func(*buildConfig)

// WithWorkers sets the number of goroutines used by the pair scan and the
// materializer. 1 selects the plain sequential scan. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("rng: WithWorkers(n<1)")
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithMaxPoints rejects inputs with more than m points with ErrTooManyPoints.
// m == 0 disables the limit. Panics if m < 0.
func WithMaxPoints(m int) Option {
	if m < 0 {
		panic("rng: WithMaxPoints(m<0)")
	}
	return func(c *buildConfig) {
		c.maxPoints = m
	}
}

// WithObserver registers o to receive BuildStats after each successful build.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("rng: WithObserver(nil)")
	}
	return func(c *buildConfig) {
		c.observer = o
	}
}

// WithoutDistanceCache computes every distance on demand instead of filling
// an n×n table first. It trades O(n²) memory for roughly 2n³ extra distance
// evaluations; the output is the same.
func WithoutDistanceCache() Option {
	return func(c *buildConfig) {
		c.noCache = true
	}
}
