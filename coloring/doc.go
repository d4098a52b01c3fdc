// Package coloring implements three heuristics for approximate vertex
// coloring of an undirected core.Graph: Welsh–Powell (largest degree
// first with color-class extension), arrival-order greedy, and DSATUR
// (degree of saturation).
//
// Every function takes a *core.Graph and returns a *Result holding a
// total assignment from vertex to a positive integer color, such that no
// two adjacent vertices share a color. Colors start at 1. The graph is
// never mutated; algorithms may run concurrently against the same graph
// as long as no caller mutates it during the run.
//
// Determinism: each heuristic iterates in the graph's insertion order and
// breaks all ties by that order, so the same graph always yields the same
// assignment. Which heuristic uses fewest colors depends on the graph;
// DSATUR is usually the strongest of the three, greedy the cheapest.
//
// Complexity (V vertices, E edges, C colors used):
//
//   - WelshPowell: O(C·V·d) neighbor scans plus one O(V log V) sort.
//   - Greedy:      O(V + E) neighbor scans with an O(d) color probe each.
//   - DSATUR:      O(V²) selection scans plus O(V + E) saturation updates.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context,
//     checked once per outer-loop iteration.
//   - WithOnColor(fn)   hook invoked after each vertex is assigned a color.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - context errors         if the supplied context is done.
//   - ErrIncompleteColoring / ErrImproperColoring from Verify.
package coloring
