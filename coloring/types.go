// Package coloring: options, the Result report, and error definitions
// shared by the three heuristics.

package coloring

import (
	"context"
	"errors"
	"sort"
)

// Sentinel errors for coloring execution and verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrIncompleteColoring indicates an assignment that does not cover
	// the graph's vertex set exactly, or contains a non-positive color.
	ErrIncompleteColoring = errors.New("coloring: assignment is not total")

	// ErrImproperColoring indicates two adjacent vertices sharing a color.
	ErrImproperColoring = errors.New("coloring: adjacent vertices share a color")
)

// Option configures heuristic behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by all three heuristics.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// outer-loop iteration.
	Ctx context.Context

	// OnColor is called after a vertex receives its color.
	OnColor func(v, color int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnColor hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnColor: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnColor registers a callback fired on each color assignment.
func WithOnColor(fn func(v, color int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnColor = fn
		}
	}
}

// Result is the coloring report: a total mapping from vertex to a
// positive integer color, produced fresh by each heuristic call and
// never mutated afterward.
type Result struct {
	// Assignment maps every vertex of the input graph to its color (≥ 1).
	Assignment map[int]int
}

// NumColors returns the number of distinct colors used, i.e. the maximum
// assigned color (colors are dense from 1). Zero for an empty graph.
func (r *Result) NumColors() int {
	max := 0
	for _, c := range r.Assignment {
		if c > max {
			max = c
		}
	}

	return max
}

// ColorOf returns the color of v and whether v is present in the assignment.
func (r *Result) ColorOf(v int) (int, bool) {
	c, ok := r.Assignment[v]

	return c, ok
}

// Classes groups vertices by color: color → ascending vertex list.
// Members of one class are pairwise non-adjacent by construction.
func (r *Result) Classes() map[int][]int {
	classes := make(map[int][]int)
	for v, c := range r.Assignment {
		classes[c] = append(classes[c], v)
	}
	for c := range classes {
		sort.Ints(classes[c])
	}

	return classes
}
