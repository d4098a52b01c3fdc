// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// errors.go — sentinel errors for the gen package. Callers branch with
// errors.Is; constructors attach context via %w wrapping.

package gen

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (e.g. Cycle needs n ≥ 3, Path needs n ≥ 2).
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked
// without a seeded RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates an unusable constructor (e.g. nil) was
// passed to Build.
var ErrConstructFailed = errors.New("gen: construction failed")
