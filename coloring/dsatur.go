// Package coloring: DSATUR (degree of saturation) coloring.

package coloring

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/hue/core"
)

// DSATUR colors g by repeatedly selecting the uncolored vertex with the
// highest saturation — the number of distinct colors among its
// already-colored neighbors — and giving it the smallest available color.
//
// Saturation is tracked as a true per-vertex set of neighbor colors, so a
// color repeated among a vertex's neighbors is counted once. (An
// increment-per-colored-neighbor counter would over-count exactly in that
// case; the set is also precisely the forbidden-color set, so selection
// and assignment share one structure.)
//
// Selection order: maximize (saturation, static degree) lexicographically;
// remaining ties go to the earliest-inserted vertex, so output is
// deterministic. Colors are dense from 1.
//
// Returns ErrGraphNil for a nil graph, or the context's error if the
// supplied context is canceled mid-run.
func DSATUR(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := g.Vertices()
	deg := degrees(g, order)

	// sat[v] is the set of distinct colors among v's colored neighbors.
	sat := make(map[int]mapset.Set[int], len(order))
	for _, v := range order {
		sat[v] = mapset.NewThreadUnsafeSet[int]()
	}

	assign := make(map[int]int, len(order))
	for len(assign) < len(order) {
		if err := checkCtx(o.Ctx); err != nil {
			return nil, err
		}

		v := selectNext(order, assign, sat, deg)

		// sat[v] is exactly the forbidden set for v.
		c := smallestAvailable(sat[v])
		assign[v] = c
		o.OnColor(v, c)

		// Raise saturation of uncolored neighbors that gain a new color.
		nbrs, _ := g.Neighbors(v)
		for _, nbr := range nbrs {
			if _, colored := assign[nbr]; !colored {
				sat[nbr].Add(c)
			}
		}
	}

	return &Result{Assignment: assign}, nil
}

// selectNext returns the uncolored vertex maximizing (saturation, degree),
// scanning insertion order so remaining ties stay deterministic.
func selectNext(order []int, assign map[int]int, sat map[int]mapset.Set[int], deg map[int]int) int {
	best := -1
	bestSat, bestDeg := -1, -1
	for _, v := range order {
		if _, colored := assign[v]; colored {
			continue
		}
		s := sat[v].Cardinality()
		if s > bestSat || (s == bestSat && deg[v] > bestDeg) {
			best, bestSat, bestDeg = v, s, deg[v]
		}
	}

	return best
}
