// Package core: Graph method implementations.
//
// All mutations acquire the write lock; queries acquire the read lock.
// Internal helpers assume the caller already holds the appropriate lock.

package core

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// AddVertex inserts v into the graph if absent.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked inserts v without taking the lock.
func (g *Graph) addVertexLocked(v int) {
	if _, exists := g.index[v]; exists {
		return
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	g.adj[v] = mapset.NewThreadUnsafeSet[int]()
}

// HasVertex reports whether the graph contains vertex v.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.index[v]

	return exists
}

// RemoveVertex deletes v and strips it from every neighbor's adjacency set
// in the same critical section, so symmetry is never observably broken.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(V + deg(v)) — the insertion-order slice must be compacted.
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, exists := g.index[v]
	if !exists {
		return ErrVertexNotFound
	}

	// Strip v from all neighbor sets; each removal kills one edge.
	g.adj[v].Each(func(nbr int) bool {
		g.adj[nbr].Remove(v)
		g.edgeCount--
		return false
	})
	delete(g.adj, v)

	// Compact the insertion-order slice and re-index the tail.
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	delete(g.index, v)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return nil
}

// AddEdge records the undirected edge {u, v}, inserting both endpoints
// if absent. Adding an existing edge is a no-op (idempotent).
// Returns ErrSelfLoop if u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if g.adj[u].Contains(v) {
		return nil // edge already present
	}
	g.adj[u].Add(v)
	g.adj[v].Add(u)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {u, v} from both adjacency sets.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adj[u]
	if !exists || !nbrs.Contains(v) {
		return ErrEdgeNotFound
	}
	nbrs.Remove(v)
	g.adj[v].Remove(u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adj[u]

	return exists && nbrs.Contains(v)
}

// Neighbors returns the neighbor set of v in ascending order.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(d log d), where d is the degree of v.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adj[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := nbrs.ToSlice()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, exists := g.adj[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return nbrs.Cardinality(), nil
}

// Vertices returns all vertex IDs in insertion order.
// This order is the deterministic iteration order the coloring
// heuristics define their tie-breaks over.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every undirected edge exactly once as Edge{U, V} with
// U < V, sorted by (U, V) for reproducible output.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		g.adj[u].Each(func(v int) bool {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
			return false
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Graph, preserving insertion order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.order = make([]int, len(g.order))
	copy(clone.order, g.order)
	for v, i := range g.index {
		clone.index[v] = i
	}
	for v, nbrs := range g.adj {
		clone.adj[v] = nbrs.Clone()
	}
	clone.edgeCount = g.edgeCount

	return clone
}
