// SPDX-License-Identifier: MIT
// Package: rngraph/rng
//
// errors.go — sentinel errors for the rng package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and a method tag.
//   • Algorithms never panic on user input; option constructors do.

package rng

import (
	"errors"

	"github.com/katalvlaran/rngraph/geom"
)

// ErrNonFinite indicates that an input point has a NaN or ±Inf coordinate.
// It is the same sentinel as geom.ErrNonFinite so either can be matched.
var ErrNonFinite = geom.ErrNonFinite

// ErrTooManyPoints indicates that the point count exceeds the limit set with
// WithMaxPoints. The default configuration has no limit.
var ErrTooManyPoints = errors.New("rng: too many points")

// ErrIndexOutOfRange indicates that a point index lies outside [0, n).
var ErrIndexOutOfRange = errors.New("rng: index out of range")

// ErrSelfPair indicates that a pair query was made with identical indices.
var ErrSelfPair = errors.New("rng: pair indices must differ")

// Method tags used as error prefixes.
const (
	methodBuild    = "Build"
	methodLinkable = "Linkable"
	methodBlocker  = "Blocker"
	methodEntry    = "Entry"
)
