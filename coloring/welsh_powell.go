// Package coloring: Welsh–Powell largest-degree-first coloring.

package coloring

import (
	"sort"

	"github.com/katalvlaran/hue/core"
)

// WelshPowell colors g by processing vertices in order of descending
// degree, opening one color class at a time and extending it greedily.
//
// When an uncolored vertex is reached, a new color is opened and assigned
// to it; the same sorted order is then rescanned and every still-uncolored
// vertex with no neighbor in the new class is pulled into it. This
// extension pass is what separates Welsh–Powell from plain greedy by
// degree: a color class is saturated with non-adjacent vertices before
// the next color is opened. Colors are dense from 1.
//
// Ties between equal-degree vertices are broken by insertion order
// (sort.SliceStable over g.Vertices()), so output is deterministic.
//
// Returns ErrGraphNil for a nil graph, or the context's error if the
// supplied context is canceled mid-run.
func WelshPowell(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := g.Vertices()
	deg := degrees(g, order)

	// Stable sort keeps insertion order among equal degrees.
	sorted := make([]int, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return deg[sorted[i]] > deg[sorted[j]]
	})

	assign := make(map[int]int, len(order))
	color := 0
	for _, v := range sorted {
		if err := checkCtx(o.Ctx); err != nil {
			return nil, err
		}
		if _, colored := assign[v]; colored {
			continue
		}

		// Open the next color class with v as its seed.
		color++
		assign[v] = color
		o.OnColor(v, color)

		// Extension pass: pull every compatible uncolored vertex into
		// the class, scanning the full sorted order.
		for _, u := range sorted {
			if _, colored := assign[u]; colored {
				continue
			}
			if classHasNeighbor(g, u, color, assign) {
				continue
			}
			assign[u] = color
			o.OnColor(u, color)
		}
	}

	return &Result{Assignment: assign}, nil
}

// classHasNeighbor reports whether any neighbor of u already holds color c.
func classHasNeighbor(g *core.Graph, u, c int, assign map[int]int) bool {
	nbrs, _ := g.Neighbors(u)
	for _, nbr := range nbrs {
		if assign[nbr] == c {
			return true
		}
	}

	return false
}
