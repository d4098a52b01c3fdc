// Package hue is an in-memory toolkit for approximate vertex coloring of
// undirected graphs — assign every vertex a positive integer color so that
// no two adjacent vertices match, using as few colors as practical.
//
// 🎨 What is hue?
//
//	A small, thread-safe library built from four pieces:
//		• Core primitives: an owned adjacency structure with vertex & edge mutation
//		• Coloring heuristics: Welsh–Powell, arrival-order greedy, DSATUR
//		• Edge-list I/O: DIMACS-style and bare "u v" readers and a writer
//		• Fixtures: deterministic cycle/star/complete/random graph constructors
//
// ✨ Why choose hue?
//
//   - Deterministic – fixed insertion order drives every tie-break, so the
//     same graph always yields the same coloring
//   - Rock-solid guarantees – R/W locks on the graph, pure algorithms that
//     never mutate their input
//   - Practical – context cancellation and per-assignment hooks for large
//     inputs, sentinel errors for every failure class
//
// Everything is organized under flat subpackages:
//
//	core/     — the Graph: vertices, symmetric adjacency, degree queries
//	coloring/ — the three heuristics plus the Result report and Verify
//	dimacs/   — edge-list loading and exporting
//	dot/      — colored Graphviz DOT rendering of a finished assignment
//	gen/      — deterministic test-graph constructors
//	cmd/hue   — command-line glue: load, color, report, export
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a 4-cycle; every heuristic here 2-colors it.
//
//	go get github.com/katalvlaran/hue
package hue
