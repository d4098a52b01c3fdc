// Package dot: DOT document emission.

package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
)

// ErrNilGraph is returned when a nil graph is passed to Write.
var ErrNilGraph = errors.New("dot: graph is nil")

// palette holds the node fill colors, reused cyclically when a coloring
// needs more than len(palette) colors. X11 names Graphviz ships with.
var palette = []string{
	"lightblue", "lightgreen", "lightsalmon", "gold", "plum",
	"lightcyan", "palegreen", "lightpink", "khaki", "lavender",
	"peachpuff", "aquamarine",
}

// fill maps a 1-based color to its palette entry.
func fill(color int) string {
	return palette[(color-1)%len(palette)]
}

// Write emits g as an undirected Graphviz DOT document. When res is
// non-nil, every vertex it colors is drawn filled from the palette;
// vertices without a color (and all vertices when res is nil) are drawn
// unfilled.
//
// Complexity: O(V + E log E).
func Write(w io.Writer, g *core.Graph, res *coloring.Result) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph {")
	fmt.Fprintln(bw, "  node [style=filled];")

	for _, v := range g.Vertices() {
		if res != nil {
			if c, ok := res.ColorOf(v); ok {
				fmt.Fprintf(bw, "  %d [fillcolor=%s];\n", v, fill(c))
				continue
			}
		}
		fmt.Fprintf(bw, "  %d [style=solid];\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -- %d;\n", e.U, e.V)
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}
