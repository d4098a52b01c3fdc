// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// config.go — internal configuration and deterministic defaults.
// config is the single source of truth for all gen knobs; options are
// applied in order (later overrides earlier); no globals.

package gen

import "math/rand"

// config aggregates the knobs used by constructors. Passed by value,
// immutable to callers.
type config struct {
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// Option configures fixture construction via functional arguments.
type Option func(*config)

// WithSeed installs a fresh RNG seeded with the given value, freezing
// every stochastic path for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG; a nil value is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// newConfig resolves options over deterministic defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
