package core_test

import (
	"fmt"

	"github.com/katalvlaran/hue/core"
)

// ExampleGraph builds the 4-cycle 1–2–3–4–1 and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	nbrs, _ := g.Neighbors(1)
	fmt.Println("neighbors of 1:", nbrs)
	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of 1: [2 4]
}
