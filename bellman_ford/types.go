// Package bellman_ford defines options, result types, and error definitions
// for single-source shortest paths under negative edge weights.
package bellman_ford

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dkoslav/grath/core"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors for Bellman-Ford execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bellman_ford: graph is nil")

	// ErrSourceOutOfRange is returned when the source index lies outside
	// [0, n). It wraps core.ErrVertexOutOfRange.
	ErrSourceOutOfRange = fmt.Errorf("bellman_ford: source vertex %w", core.ErrVertexOutOfRange)

	// ErrNegativeCycle is returned when a negative-total-weight cycle is
	// reachable from the source; no distance array exists then, so none is
	// returned.
	ErrNegativeCycle = errors.New("bellman_ford: negative cycle reachable from source")

	// ErrNoPath is returned by Result.PathTo for an unreachable destination.
	ErrNoPath = errors.New("bellman_ford: no path to destination")
)

// Option configures Bellman-Ford behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a Bellman-Ford run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked between relaxation
	// passes. Defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of a Bellman-Ford run:
//   - Dist: minimum cost from the source per vertex; Unreachable when no
//     path exists.
//   - Parent: predecessor on one shortest path; -1 for the source and for
//     unreached vertices.
type Result struct {
	Dist   []int64
	Parent []int
}

// PathTo reconstructs one minimum-cost path from the source to dest.
// Returns ErrNoPath if dest was not reached, or an error wrapping
// core.ErrVertexOutOfRange if dest is not a valid index.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("bellman_ford: dest %w: v=%d, n=%d", core.ErrVertexOutOfRange, dest, len(r.Dist))
	}
	if r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, dest)
	}

	// Walk parents back to the source, then reverse.
	var path []int
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
