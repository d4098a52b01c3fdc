// Package coloring: arrival-order greedy coloring.

package coloring

import (
	"github.com/katalvlaran/hue/core"
)

// Greedy colors g by processing vertices in insertion order, giving each
// the smallest positive color not used by an already-colored neighbor.
//
// There is no global color-class extension and no reordering: the total
// number of colors depends entirely on the arrival order, which makes
// Greedy the cheapest heuristic and the weakest bound. On a graph with
// no edges every vertex gets color 1.
//
// Returns ErrGraphNil for a nil graph, or the context's error if the
// supplied context is canceled mid-run.
func Greedy(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := g.Vertices()
	assign := make(map[int]int, len(order))
	for _, v := range order {
		if err := checkCtx(o.Ctx); err != nil {
			return nil, err
		}

		c := smallestAvailable(neighborColors(g, v, assign))
		assign[v] = c
		o.OnColor(v, c)
	}

	return &Result{Assignment: assign}, nil
}
