package dimacs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/dimacs"
)

// ExampleRead loads a small DIMACS document and colors it.
func ExampleRead() {
	const data = `c triangle with a pendant
p edge 4 4
e 1 2
e 2 3
e 1 3
e 3 4
`
	g, err := dimacs.Read(strings.NewReader(data))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := coloring.DSATUR(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("colors:", res.NumColors())
	// Output:
	// vertices: 4
	// edges: 4
	// colors: 3
}
