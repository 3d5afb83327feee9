// Package flow: shared types, option plumbing and validation errors.
//
// File: types.go
// Role: sentinels, the CapacityError detail type, FlowOptions and Result.
// Determinism: MinCut derives the source side by index-ascending BFS over
//              the residual network, so its output is reproducible.
// Concurrency: a Result is read-only after the solver returns; concurrent
//              MinCut calls are safe.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Sentinel errors returned by the max-flow solvers.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceOutOfRange is returned when source ∉ [0, VertexCount).
	// It wraps core.ErrVertexOutOfRange so errors.Is matches either.
	ErrSourceOutOfRange = fmt.Errorf("flow: source %w", core.ErrVertexOutOfRange)

	// ErrSinkOutOfRange is returned when sink ∉ [0, VertexCount).
	// It wraps core.ErrVertexOutOfRange so errors.Is matches either.
	ErrSinkOutOfRange = fmt.Errorf("flow: sink %w", core.ErrVertexOutOfRange)

	// ErrSourceIsSink is returned when source == sink. A degenerate
	// network has no well-defined cut, so the call is rejected rather
	// than answering 0.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")
)

// CapacityError reports an edge whose weight cannot serve as a capacity.
// Use errors.As to recover the offending endpoints:
//
//	var ce *flow.CapacityError
//	if errors.As(err, &ce) { ... ce.From, ce.To, ce.Cap ... }
type CapacityError struct {
	From, To int   // endpoints as recorded in the edge catalog
	Cap      int64 // the rejected weight
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity %d on edge %d-%d", e.Cap, e.From, e.To)
}

// FlowOptions carries the shared solver knobs.
// Zero value = no cancellation.
type FlowOptions struct {
	// Ctx, when non-nil, is polled once per augmentation (and once per
	// level rebuild in Dinic). Cancellation aborts the run with ctx.Err().
	Ctx context.Context
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// WithContext installs a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: nil}
}

// apply folds opts over the defaults.
func apply(opts []Option) FlowOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// cancelled reports whether cfg.Ctx is done. Nil ctx never cancels.
func (o *FlowOptions) cancelled() error {
	if o.Ctx == nil {
		return nil
	}
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// Result is the outcome of a max-flow run. It retains the final residual
// network, so the minimum cut can be recovered without re-solving.
type Result struct {
	// MaxFlow is the value of the maximum source→sink flow.
	MaxFlow int64

	source int
	net    *network
}

// MinCut returns the minimum s-t cut certified by the run.
//
// sourceSide lists, in ascending order, every vertex still reachable from
// the source in the final residual network. cut lists the saturated arcs
// that cross from sourceSide to the rest, oriented From→To with Weight set
// to the original capacity. By max-flow/min-cut duality the weights of cut
// sum to MaxFlow.
func (r *Result) MinCut() (sourceSide []int, cut []core.Edge) {
	inS := make([]bool, r.net.n)
	queue := make([]int, 0, r.net.n)
	queue = append(queue, r.source)
	inS[r.source] = true

	// 1) BFS over arcs with residual capacity left.
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, ai := range r.net.head[u] {
			a := r.net.arcs[ai]
			if a.cap > 0 && !inS[a.to] {
				inS[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	// 2) Collect the source side in index order.
	sourceSide = make([]int, 0, len(queue))
	for v := 0; v < r.net.n; v++ {
		if inS[v] {
			sourceSide = append(sourceSide, v)
		}
	}

	// 3) Forward arcs sit at even indices; a crossing one is saturated.
	for i := 0; i < len(r.net.arcs); i += 2 {
		u, v := r.net.arcs[i^1].to, r.net.arcs[i].to
		if inS[u] && !inS[v] {
			cut = append(cut, core.Edge{From: u, To: v, Weight: r.net.arcs[i].orig, Directed: true})
		}
	}
	return sourceSide, cut
}

// FlowOn reports how much flow the run sends from u to v, aggregated
// over parallel edges. Pairs without an edge, self-loops and vertices
// outside [0, VertexCount) all yield 0. An undirected edge is reported
// per direction; the net transfer is FlowOn(u, v) - FlowOn(v, u).
func (r *Result) FlowOn(u, v int) int64 {
	if u < 0 || u >= r.net.n || v < 0 || v >= r.net.n {
		return 0
	}
	// head[u] holds forward arcs out of u (even index) and reverse twins
	// of arcs into u (odd); aggregation leaves at most one forward slot
	// per ordered pair.
	for _, ai := range r.net.head[u] {
		if ai&1 == 0 && r.net.arcs[ai].to == v {
			return r.net.arcs[ai].orig - r.net.arcs[ai].cap
		}
	}
	return 0
}
