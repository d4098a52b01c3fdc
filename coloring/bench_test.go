package coloring_test

import (
	"testing"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
	"github.com/katalvlaran/hue/gen"
)

// benchGraph samples one fixed sparse graph per benchmark run.
func benchGraph(b *testing.B, n int, p float64) *core.Graph {
	b.Helper()
	g, err := gen.Build([]gen.Option{gen.WithSeed(42)}, gen.RandomSparse(n, p))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkWelshPowell_Sparse colors a 500-vertex random graph (p = 0.05).
func BenchmarkWelshPowell_Sparse(b *testing.B) {
	g := benchGraph(b, 500, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.WelshPowell(g)
	}
}

// BenchmarkGreedy_Sparse colors the same class of graph greedily.
func BenchmarkGreedy_Sparse(b *testing.B) {
	g := benchGraph(b, 500, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.Greedy(g)
	}
}

// BenchmarkDSATUR_Sparse colors the same class of graph with DSATUR.
func BenchmarkDSATUR_Sparse(b *testing.B) {
	g := benchGraph(b, 500, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.DSATUR(g)
	}
}

// BenchmarkDSATUR_Dense stresses the selection scan (p = 0.5).
func BenchmarkDSATUR_Dense(b *testing.B) {
	g := benchGraph(b, 200, 0.5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.DSATUR(g)
	}
}
