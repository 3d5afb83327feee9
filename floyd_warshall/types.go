// Package floyd_warshall defines options, result types, and error
// definitions for all-pairs shortest paths on dense distance matrices.
package floyd_warshall

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dkoslav/grath/core"
)

// Unreachable is the distance reported for vertex pairs no path connects.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors for Floyd-Warshall execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("floyd_warshall: graph is nil")

	// ErrNegativeCycle is returned when the closed matrix carries a negative
	// diagonal entry, proving a negative-total-weight cycle; no distance
	// matrix exists then, so none is returned.
	ErrNegativeCycle = errors.New("floyd_warshall: negative cycle detected")

	// ErrNoPath is returned by Result.Path for a disconnected vertex pair.
	ErrNoPath = errors.New("floyd_warshall: no path between vertices")
)

// Option configures Floyd-Warshall behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a Floyd-Warshall run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per intermediate
	// vertex k, so a cancelled run stops within one O(n²) layer.
	// Defaults to context.Background().
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

// Result holds the closed all-pairs matrices of a Floyd-Warshall run.
// Both tables are flat row-major buffers of n*n entries, matching the
// storage layout the closure loops run on.
type Result struct {
	n    int     // matrix order (vertex count)
	dist []int64 // dist[i*n+j]: minimum cost i→j; Unreachable when no path
	next []int   // next[i*n+j]: successor of i on one shortest i→j path; -1 when no path
}

// Order reports the number of vertices n; both matrices are n×n.
func (r *Result) Order() int { return r.n }

// At returns the minimum cost of a path from one vertex to another, or
// Unreachable when no path exists. Either index outside [0, n) yields an
// error wrapping core.ErrVertexOutOfRange.
func (r *Result) At(from, to int) (int64, error) {
	if err := r.check(from, to); err != nil {
		return 0, err
	}

	return r.dist[from*r.n+to], nil
}

// Dist materializes the distance matrix as n row slices. The rows alias
// the Result's backing buffer; treat them as read-only.
func (r *Result) Dist() [][]int64 {
	rows := make([][]int64, r.n)
	for i := 0; i < r.n; i++ {
		rows[i] = r.dist[i*r.n : (i+1)*r.n]
	}

	return rows
}

// Path reconstructs one minimum-cost path between two vertices by walking
// the successor table, inclusive of both endpoints. Path(v, v) is the
// trivial path [v]. Returns ErrNoPath when the pair is disconnected, or an
// error wrapping core.ErrVertexOutOfRange for an invalid index.
func (r *Result) Path(from, to int) ([]int, error) {
	if err := r.check(from, to); err != nil {
		return nil, err
	}
	if r.next[from*r.n+to] == -1 {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	// Hop successor to successor until the destination is reached. The
	// walk terminates: every hop strictly shortens the remaining shortest
	// path, which exists because next[from][to] != -1.
	path := []int{from}
	for cur := from; cur != to; {
		cur = r.next[cur*r.n+to]
		path = append(path, cur)
	}

	return path, nil
}

// check validates a pair of vertex indices against the matrix order.
func (r *Result) check(from, to int) error {
	if from < 0 || from >= r.n {
		return fmt.Errorf("floyd_warshall: from %w: v=%d, n=%d", core.ErrVertexOutOfRange, from, r.n)
	}
	if to < 0 || to >= r.n {
		return fmt.Errorf("floyd_warshall: to %w: v=%d, n=%d", core.ErrVertexOutOfRange, to, r.n)
	}

	return nil
}
