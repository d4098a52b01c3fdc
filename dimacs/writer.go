// Package dimacs: edge-list output.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hue/core"
)

// Write emits the legacy edge-list format: one "u v" line per edge
// (each undirected edge once, u < v, sorted), no header. Isolated
// vertices are not representable in this format; use WriteProblem to
// keep them.
//
// Complexity: O(E log E).
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("dimacs: write: %w", err)
		}
	}

	return bw.Flush()
}

// WriteProblem emits the DIMACS-style format: a "p edge N M" descriptor
// followed by one "e u v" line per edge. N is the largest vertex ID (the
// format's vertices are 1..N), so loading restores every vertex up to
// it, isolated ones included.
func WriteProblem(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	maxID := 0
	for _, v := range g.Vertices() {
		if v > maxID {
			maxID = v
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", maxID, g.EdgeCount()); err != nil {
		return fmt.Errorf("dimacs: write: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("dimacs: write: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile creates path and delegates to Write.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dimacs: create %s: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
