// Package builder: shared option plumbing and validation errors.
//
// File: types.go
// Role: sentinels, Options and the per-call configuration fold.
// Determinism: options resolve before any mutation; generators see one
//              immutable snapshot.
// Concurrency: generators build fresh graphs per call; nothing shared.
package builder

import "errors"

// Sentinel errors returned by the generators.
var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// generator's documented minimum (n, rows or cols).
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrEdgeCountOutOfRange is returned by RandomSparse when the extra
	// edge count is negative or exceeds what a simple graph of n vertices
	// can still hold beyond the backbone.
	ErrEdgeCountOutOfRange = errors.New("builder: extra edge count out of range")
)

// Options carries the knobs shared by every generator.
// Zero value = undirected, unit weights.
type Options struct {
	// Directed selects the graph orientation. Path and Cycle orient
	// every edge forward; Complete, Star and Grid emit both arcs per
	// adjacency so the neighborhood stays symmetric.
	Directed bool

	// Weight assigns each emitted edge its weight. Defaults to UnitWeight.
	Weight WeightFn
}

// Option mutates Options.
type Option func(*Options)

// WithDirected selects directed output.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeightFn installs a custom weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Directed: false, Weight: UnitWeight}
}

// apply folds opts over the defaults.
func apply(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
