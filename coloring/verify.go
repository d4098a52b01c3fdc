// Package coloring: assignment verification.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/hue/core"
)

// Verify checks that res is a proper total coloring of g:
//
//   - Totality: the assignment's key set equals g's vertex set exactly,
//     and every color is a positive integer.
//   - Validity: no edge connects two vertices of the same color.
//
// Returns nil on success, ErrGraphNil for a nil graph, and otherwise an
// error wrapping ErrIncompleteColoring or ErrImproperColoring with the
// offending vertex or edge.
func Verify(g *core.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrIncompleteColoring)
	}

	vertices := g.Vertices()
	if len(res.Assignment) != len(vertices) {
		return fmt.Errorf("%w: %d vertices assigned, graph has %d",
			ErrIncompleteColoring, len(res.Assignment), len(vertices))
	}
	for _, v := range vertices {
		c, ok := res.Assignment[v]
		if !ok {
			return fmt.Errorf("%w: vertex %d unassigned", ErrIncompleteColoring, v)
		}
		if c < 1 {
			return fmt.Errorf("%w: vertex %d has non-positive color %d", ErrIncompleteColoring, v, c)
		}
	}

	for _, e := range g.Edges() {
		if res.Assignment[e.U] == res.Assignment[e.V] {
			return fmt.Errorf("%w: vertices %d and %d both hold color %d",
				ErrImproperColoring, e.U, e.V, res.Assignment[e.U])
		}
	}

	return nil
}
