// SPDX-License-Identifier: MIT
// Package: rngraph/pointset
//
// options.go — functional options for the pointset package.
//
// Contract:
//   • Options are functional (type Option func(*pointConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package pointset

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/rngraph/geom"
)

// Option customizes constructors by mutating a pointConfig before use.
type Option func(*pointConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointset: WithRand(nil)")
	}
	return func(c *pointConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *pointConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale sets the lattice spacing, cube edge or sphere radius.
// Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("pointset: WithScale(s<=0 or non-finite)")
	}
	return func(c *pointConfig) {
		c.scale = s
	}
}

// WithOrigin translates every generated point by o. Panics on non-finite o.
func WithOrigin(o geom.Point) Option {
	if !o.IsFinite() {
		panic("pointset: WithOrigin(non-finite)")
	}
	return func(c *pointConfig) {
		c.origin = o
	}
}

// WithJitter adds N(0, sigma²) noise to every coordinate. sigma == 0 means
// no noise. Panics if sigma < 0 or non-finite.
func WithJitter(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("pointset: WithJitter(sigma<0 or non-finite)")
	}
	return func(c *pointConfig) {
		c.jitter = sigma
	}
}
