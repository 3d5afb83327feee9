// Package dijkstra defines options, result types, and error definitions for
// single-source shortest paths on non-negatively weighted graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/dkoslav/grath/core"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange is returned when the source index lies outside
	// [0, n). It wraps core.ErrVertexOutOfRange.
	ErrSourceOutOfRange = fmt.Errorf("dijkstra: source vertex %w", core.ErrVertexOutOfRange)

	// ErrNegativeWeight is returned when any edge in the graph carries a
	// negative weight; Dijkstra's greedy finalization is unsound then, so
	// the run fails before any relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Option configures Dijkstra behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Dijkstra is invoked.
type Option func(*Options)

// Options holds parameters customizing a Dijkstra run.
type Options struct {
	// MaxDistance bounds exploration: vertices whose best distance exceeds
	// it are never finalized and relaxation past it is skipped.
	// Defaults to Unreachable (no bound).
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance bound.
func DefaultOptions() Options {
	return Options{
		MaxDistance: Unreachable,
		err:         nil,
	}
}

// WithMaxDistance stops exploring once the closest frontier vertex is
// farther than x from the source.
//
//	x > 0: bound exploration to distance x
//	x == 0: only vertices at distance zero are finalized
//	x < 0: invalid option → ErrOptionViolation
func WithMaxDistance(x int64) Option {
	return func(o *Options) {
		if x < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, x)

			return
		}
		o.MaxDistance = x
	}
}

// Result holds the outcome of a Dijkstra run:
//   - Dist: minimum cost from the source per vertex; Unreachable when no
//     path exists (or the MaxDistance bound cut exploration short).
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
		return nil, fmt.Errorf("dijkstra: dest %w: v=%d, n=%d", core.ErrVertexOutOfRange, dest, len(r.Dist))
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
