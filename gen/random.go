// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// random.go — Erdős–Rényi-style RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource); the
//     degenerate p ∈ {0, 1} cases are deterministic without one.
//   - Stable trial order: for each i ascending, j in (i, n) ascending, so
//     outcomes are deterministic for a fixed seed.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials; O(1) extra space.

package gen

import (
	"fmt"

	"github.com/katalvlaran/hue/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling a simple undirected graph
// over n vertices where each unordered pair {i, j} is an edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addRange(g, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return wrapEdge(methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
