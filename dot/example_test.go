package dot_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
	"github.com/katalvlaran/hue/dot"
)

// ExampleWrite renders a colored path of three vertices.
func ExampleWrite() {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	res, err := coloring.DSATUR(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := dot.Write(os.Stdout, g, res); err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// graph {
	//   node [style=filled];
	//   1 [fillcolor=lightgreen];
	//   2 [fillcolor=lightblue];
	//   3 [fillcolor=lightgreen];
	//   1 -- 2;
	//   2 -- 3;
	// }
}
