// Package dot renders a graph, optionally with a coloring, as a
// Graphviz DOT document: an undirected `graph` block with one node
// statement per vertex and one edge statement per undirected edge.
// When a coloring result is supplied, each node is filled from a fixed
// palette indexed by its color; the palette repeats past its length,
// so any color count renders.
//
// Output is plain text for `dot -Tpng` and friends; nothing here
// shells out. Vertices are emitted in graph insertion order and edges
// in canonical (U,V) order, so the same inputs always produce the
// same bytes.
package dot
