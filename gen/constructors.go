// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// constructors.go — canonical deterministic topologies over vertices
// 0..n-1. Each factory validates its parameters, adds vertices in
// ascending order, and emits edges in a stable documented order.

package gen

import (
	"fmt"

	"github.com/katalvlaran/hue/core"
)

// File-local method tags and domain minima (no magic literals).
const (
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodStar      = "Star"
	methodComplete  = "Complete"
	methodBipartite = "Bipartite"

	minCycleVertices     = 3
	minPathVertices      = 2
	minStarVertices      = 2
	minCompleteVertices  = 1
	minBipartiteSideSize = 1
)

// addRange inserts vertices 0..n-1 in ascending order.
func addRange(g *core.Graph, n int) {
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
}

// wrapEdge attaches the method tag to an AddEdge failure.
func wrapEdge(method string, u, v int, err error) error {
	return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
}

// Cycle returns a Constructor building the simple cycle C_n (n ≥ 3):
// edges (i, i+1) for i < n-1, closed by (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		addRange(g, n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := g.AddEdge(i, j); err != nil {
				return wrapEdge(methodCycle, i, j, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor building the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		addRange(g, n)
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return wrapEdge(methodPath, i, i+1, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor building a star on n vertices (n ≥ 2):
// center 0 connected to leaves 1..n-1, no leaf-leaf edges.
func Star(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		addRange(g, n)
		for leaf := 1; leaf < n; leaf++ {
			if err := g.AddEdge(0, leaf); err != nil {
				return wrapEdge(methodStar, 0, leaf, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor building the complete graph K_n (n ≥ 1):
// every unordered pair {i, j}, i < j, in ascending order.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		addRange(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return wrapEdge(methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}

// Bipartite returns a Constructor building the complete bipartite graph
// K_{m,n} (m, n ≥ 1): left side 0..m-1, right side m..m+n-1, every
// cross edge, no edges inside a side.
func Bipartite(m, n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if m < minBipartiteSideSize || n < minBipartiteSideSize {
			return fmt.Errorf("%s: sides m=%d, n=%d (min %d each): %w",
				methodBipartite, m, n, minBipartiteSideSize, ErrTooFewVertices)
		}
		addRange(g, m+n)
		for i := 0; i < m; i++ {
			for j := m; j < m+n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return wrapEdge(methodBipartite, i, j, err)
				}
			}
		}

		return nil
	}
}
