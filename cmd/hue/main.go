// Command hue loads or generates an undirected graph, colors it with a
// chosen heuristic, reports how many colors were used and how long the
// run took, and optionally writes the graph back as an edge list and/or
// a colored Graphviz DOT rendering.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
	"github.com/katalvlaran/hue/dimacs"
	"github.com/katalvlaran/hue/dot"
	"github.com/katalvlaran/hue/gen"
)

type cli struct {
	Input  string  `help:"Edge-list file to load (DIMACS markers or bare 'u v' lines)" short:"i" type:"existingfile"`
	Random int     `help:"Generate a random graph with this many vertices instead of loading" short:"n" default:"0"`
	Prob   float64 `help:"Edge probability for the random graph" short:"p" default:"0.2"`
	Seed   int64   `help:"Random graph seed" default:"1"`
	Algo   string  `help:"Coloring heuristic" enum:"wp,greedy,dsatur" default:"dsatur"`
	Strict bool    `help:"Reject malformed input lines instead of skipping them"`
	Out    string  `help:"Write the loaded graph back as an edge list to this file" short:"o"`
	Dot    string  `help:"Write a colored Graphviz DOT rendering to this file"`
}

// algorithms maps the --algo flag to its implementation.
var algorithms = map[string]func(*core.Graph, ...coloring.Option) (*coloring.Result, error){
	"wp":     coloring.WelshPowell,
	"greedy": coloring.Greedy,
	"dsatur": coloring.DSATUR,
}

func main() {
	var params cli
	kong.Parse(&params)

	g, err := buildGraph(params)
	if err != nil {
		log.Fatalln("hue:", err)
	}
	fmt.Printf("vertices: %d\nedges: %d\n", g.VertexCount(), g.EdgeCount())

	start := time.Now()
	res, err := algorithms[params.Algo](g)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalln("hue: coloring:", err)
	}
	if err = coloring.Verify(g, res); err != nil {
		log.Fatalln("hue: verify:", err)
	}
	fmt.Printf("algorithm: %s\ncolors: %d\nelapsed: %s\n",
		params.Algo, res.NumColors(), elapsed)

	if params.Out != "" {
		if err = dimacs.WriteFile(params.Out, g); err != nil {
			log.Fatalln("hue:", err)
		}
	}
	if params.Dot != "" {
		f, err := os.Create(params.Dot)
		if err != nil {
			log.Fatalln("hue:", err)
		}
		if err = dot.Write(f, g, res); err != nil {
			f.Close()
			log.Fatalln("hue:", err)
		}
		if err = f.Close(); err != nil {
			log.Fatalln("hue:", err)
		}
	}
}

// buildGraph resolves the input flags: exactly one of --input and
// --random must be given.
func buildGraph(params cli) (*core.Graph, error) {
	switch {
	case params.Input != "" && params.Random > 0:
		return nil, fmt.Errorf("--input and --random are mutually exclusive")
	case params.Input != "":
		var opts []dimacs.Option
		if params.Strict {
			opts = append(opts, dimacs.WithStrict())
		}
		return dimacs.ReadFile(params.Input, opts...)
	case params.Random > 0:
		return gen.Build(
			[]gen.Option{gen.WithSeed(params.Seed)},
			gen.RandomSparse(params.Random, params.Prob),
		)
	default:
		return nil, fmt.Errorf("either --input or --random is required")
	}
}
