// SPDX-License-Identifier: MIT
// Package: hue/gen
//
// Package gen builds deterministic graph fixtures for the coloring
// heuristics: canonical topologies (cycle, path, star, complete,
// complete bipartite) and an Erdős–Rényi-style random sparse graph.
//
// Design contract (strict):
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves
//     the configuration, runs every Constructor in order.
//   - Vertices are the integers 0..n-1, added in ascending order, so the
//     graph's insertion order — and therefore every coloring tie-break —
//     is fixed by construction.
//   - Determinism: same options/seed and constructor order ⇒ identical
//     graphs. RandomSparse trials run in a stable i<j pair order.
//   - Safety: never panic; constructors return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//
// Typical use:
//
//	g, err := gen.Build([]gen.Option{gen.WithSeed(7)}, gen.RandomSparse(50, 0.2))
package gen
