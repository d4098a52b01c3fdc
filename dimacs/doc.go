// Package dimacs loads and stores undirected graphs as plain-text edge
// lists, in the two formats the coloring tooling exchanges:
//
//   - DIMACS-style: "c ..." comment lines are ignored, a "p edge N M"
//     descriptor pre-declares vertices 1..N (so isolated vertices
//     survive), and "e u v" lines declare edges.
//   - Legacy: one bare "u v" pair per line, no markers, no header.
//
// Read accepts both formats in the same file. Malformed edge lines are
// not fatal: they are skipped with a structured diagnostic, unless
// WithStrict upgrades them to an error wrapping ErrMalformedLine.
//
// Write emits the legacy format (one "u v" line per edge, each edge
// once); WriteProblem emits the DIMACS form with a "p edge" header.
// Both round-trip with Read.
package dimacs
