package gen_test

import (
	"fmt"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/gen"
)

// ExampleBuild samples a reproducible random graph and colors it with
// all three heuristics.
func ExampleBuild() {
	g, err := gen.Build([]gen.Option{gen.WithSeed(7)}, gen.RandomSparse(30, 0.2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	wp, _ := coloring.WelshPowell(g)
	gr, _ := coloring.Greedy(g)
	ds, _ := coloring.DSATUR(g)

	fmt.Println("valid Welsh-Powell:", coloring.Verify(g, wp) == nil)
	fmt.Println("valid Greedy:", coloring.Verify(g, gr) == nil)
	fmt.Println("valid DSATUR:", coloring.Verify(g, ds) == nil)
	// Output:
	// valid Welsh-Powell: true
	// valid Greedy: true
	// valid DSATUR: true
}
