// Package dimacs: edge-list parsing.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hue/core"
)

// Line markers of the DIMACS-like format.
const (
	markComment = "c"
	markProblem = "p"
	markEdge    = "e"
)

// Read parses an edge list into a fresh graph. Both the DIMACS-style
// markers and bare legacy "u v" lines are accepted; blank lines and
// comments are ignored. Malformed edge lines (including self-loops) are
// skipped with a diagnostic, or rejected under WithStrict.
//
// Complexity: O(lines).
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case markComment:
			continue
		case markProblem:
			if err := applyProblem(g, fields, lineNo, o); err != nil {
				return nil, err
			}
		case markEdge:
			if err := applyEdge(g, fields[1:], line, lineNo, o); err != nil {
				return nil, err
			}
		default:
			// legacy variant: a bare "u v" pair
			if err := applyEdge(g, fields, line, lineNo, o); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// applyProblem consumes a "p edge N M" descriptor, pre-adding vertices
// 1..N so that isolated vertices survive loading. An unparsable
// descriptor is diagnostic-only unless strict.
func applyProblem(g *core.Graph, fields []string, lineNo int, o options) error {
	if len(fields) >= 3 {
		if n, err := strconv.Atoi(fields[2]); err == nil && n >= 0 {
			for v := 1; v <= n; v++ {
				g.AddVertex(v)
			}
			return nil
		}
	}
	if o.strict {
		return fmt.Errorf("%w: line %d: bad problem descriptor %q", ErrMalformedLine, lineNo, strings.Join(fields, " "))
	}
	o.logger.Warn("dimacs: skipping unparsable problem line", "line", lineNo)

	return nil
}

// applyEdge parses two integers and records the edge. Anything else —
// wrong field count, non-integers, a self-loop — is a malformed line.
func applyEdge(g *core.Graph, fields []string, line string, lineNo int, o options) error {
	u, v, perr := parsePair(fields)
	if perr == nil {
		perr = g.AddEdge(u, v)
	}
	if perr == nil {
		return nil
	}
	if o.strict {
		return fmt.Errorf("%w: line %d %q: %v", ErrMalformedLine, lineNo, line, perr)
	}
	o.logger.Warn("dimacs: skipping malformed edge line",
		"line", lineNo, "text", line, "reason", perr)

	return nil
}

// parsePair expects exactly two integer fields.
func parsePair(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}
