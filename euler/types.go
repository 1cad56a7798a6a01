// Package euler defines types, options and error definitions for the
// Eulerian path strategies.
package euler

import "errors"

// Sentinel errors for Eulerian path construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNotFound indicates that no Eulerian path or circuit exists for the
	// given graph under the invoked strategy. Every precondition violation
	// (degree parity, balance, disconnection, isolated vertex) and every
	// defensive traversal failure reports this value, never a panic.
	ErrNotFound = errors.New("euler: euler path not found")

	// ErrInternal indicates the per-call adjacency lost its occurrence
	// pairing. It signals a bookkeeping defect in this package, not a
	// property of the input graph.
	ErrInternal = errors.New("euler: adjacency bookkeeping out of sync")
)

// Option configures traversal behavior via functional arguments.
// Use with Fleury(g, opts...) or Hierholzer(g, opts...).
type Option func(*Options)

// Options holds callbacks to customize Eulerian traversal.
type Options struct {
	// OnVisit is called once per vertex occurrence in the resulting path,
	// in path order. Fleury invokes it while traversing; Hierholzer invokes
	// it after splicing completes, since the walk is assembled in reverse.
	OnVisit func(id string)
}

// DefaultOptions returns Options with sane defaults: a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string) {},
	}
}

// WithOnVisit registers a callback invoked for each vertex of the result path.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a successful Eulerian traversal:
//   - Path: the vertex sequence, of length edge-count+1, consuming every
//     edge of the input exactly once.
//   - Circuit: true when the walk is closed (first and last vertex match).
type Result struct {
	Path    []string
	Circuit bool
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
