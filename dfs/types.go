// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Vertex colors of the classic three-state DFS bookkeeping.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the walk stack (visiting).
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, TopologicalKahn, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates the start index lies outside [0, n).
	// It wraps core.ErrVertexOutOfRange, so callers may match either.
	ErrStartOutOfRange = fmt.Errorf("dfs: start vertex %w", core.ErrVertexOutOfRange)

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort or TopologicalKahn; no partial order is returned.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected is returned when a topological operation is invoked on
	// a graph whose default orientation is undirected.
	ErrUndirected = errors.New("dfs: operation requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.PostOrder.
	// Returning an error aborts traversal with that error.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the root(s). Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each arc before descending.
	// Return true to walk into the arc's head, false to skip it.
	FilterNeighbor func(e core.Edge) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending index order, covering disconnected components (forest
	// traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - no pre-/post-order hooks
//   - no depth limit (MaxDepth = -1)
//   - no neighbor filtering
//   - single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root vertices are visited; negative values
// mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters arcs.
// If fn(e) == false, that arc is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex in ascending order,
// covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
// All per-vertex slices have length n and use -1 for "not applicable".
type Result struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []int

	// PostOrder records vertices in the sequence they finished.
	PostOrder []int

	// Depth holds each vertex's distance (#arcs) from its tree root;
	// -1 for vertices the walk never reached.
	Depth []int

	// Parent holds the vertex from which each vertex was first discovered;
	// -1 for tree roots and unreached vertices.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool

	// SkippedNeighbors reports how many arcs were skipped due to
	// FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
