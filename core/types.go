// This file declares the Graph and Edge types, sentinel errors,
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	// Self-loops are rejected outright: a vertex adjacent to itself can
	// never satisfy the no-shared-color rule.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is one undirected edge, reported with U < V so each edge
// appears exactly once in Edges().
type Edge struct {
	U, V int
}

// Graph is the core in-memory graph data structure: a simple,
// undirected graph over integer vertex IDs.
//
// order preserves vertex insertion sequence; index maps a vertex to its
// position in order (and doubles as the membership set); adj holds one
// neighbor set per vertex, kept symmetric at all times.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	order []int                  // vertices in insertion order
	index map[int]int            // vertex ID → position in order
	adj   map[int]mapset.Set[int] // vertex ID → neighbor set

	edgeCount int // number of undirected edges
}

// NewGraph creates an empty undirected Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[int]int),
		adj:   make(map[int]mapset.Set[int]),
	}
}
