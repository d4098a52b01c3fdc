package coloring

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/hue/core"
)

// checkCtx returns the context's error if it is already done.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// degrees snapshots the static degree of every vertex in order.
// Vertices are guaranteed present, so lookups cannot fail.
func degrees(g *core.Graph, order []int) map[int]int {
	deg := make(map[int]int, len(order))
	for _, v := range order {
		d, _ := g.Degree(v)
		deg[v] = d
	}

	return deg
}

// neighborColors collects the distinct colors already assigned among
// the neighbors of v.
func neighborColors(g *core.Graph, v int, assign map[int]int) mapset.Set[int] {
	used := mapset.NewThreadUnsafeSet[int]()
	nbrs, _ := g.Neighbors(v)
	for _, nbr := range nbrs {
		if c, ok := assign[nbr]; ok {
			used.Add(c)
		}
	}

	return used
}

// smallestAvailable probes colors 1, 2, 3, … and returns the first one
// absent from used.
func smallestAvailable(used mapset.Set[int]) int {
	c := 1
	for used.Contains(c) {
		c++
	}

	return c
}
