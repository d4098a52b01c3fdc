// Package core defines the central Graph type for vertex coloring:
// a mutable, undirected, simple graph over integer vertex identifiers.
//
// The Graph owns its storage outright — a vertex list in insertion order
// plus a symmetric adjacency map of neighbor sets — and exposes exactly the
// operations coloring needs: vertex and edge lifecycle, membership,
// neighbor and degree queries, and cardinalities.
//
// Two guarantees matter to the coloring packages built on top:
//
//   - Symmetry: v ∈ adjacency[u] ⇔ u ∈ adjacency[v], maintained on every
//     mutation; removing a vertex strips it from all neighbor sets in the
//     same critical section, so no dangling references are observable.
//   - Determinism: Vertices() returns insertion order and Neighbors()
//     returns ascending order, giving the heuristics a reproducible
//     iteration order to define their tie-breaks over.
//
// All methods are guarded by a single RWMutex, so concurrent readers
// (including simultaneous coloring runs) are safe as long as no mutation
// happens during a run.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - attempt to add an edge from a vertex to itself.
package core
