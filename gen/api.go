// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// api.go — thin public entry-point for the gen package. All topology
// factories are implemented in constructors.go and random.go.

package gen

import (
	"fmt"

	"github.com/katalvlaran/hue/core"
)

// Constructor applies one deterministic graph mutation using the
// resolved config. Constructors validate parameters early, return
// sentinel errors, and never panic.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a new core.Graph, resolves the configuration from opts,
// and applies every constructor in order. The first constructor error is
// wrapped with "Build: %w" and returned immediately.
//
// Complexity: O(len(opts)) resolution plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
