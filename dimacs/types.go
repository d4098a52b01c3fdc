// Package dimacs: options and error definitions for edge-list I/O.

package dimacs

import (
	"errors"
	"log/slog"
)

// Sentinel errors for edge-list I/O.
var (
	// ErrNilGraph is returned when a nil graph is passed to a writer.
	ErrNilGraph = errors.New("dimacs: graph is nil")

	// ErrMalformedLine indicates a line that could not be parsed as an
	// edge. Surfaced only under WithStrict; otherwise the line is
	// skipped with a diagnostic.
	ErrMalformedLine = errors.New("dimacs: malformed line")
)

// Option configures reader behavior via functional arguments.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		strict: false,
	}
}

// WithLogger routes skipped-line diagnostics to the given logger;
// a nil value is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict turns malformed lines into errors wrapping ErrMalformedLine
// instead of skip-and-continue diagnostics.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}
