// Package flow: Dinic maximum flow.
//
// File: dinic.go
// Role: level-graph max flow with blocking-flow phases, O(V²·E).
// Determinism: level BFS and the advance scan both follow arc insertion
//              order, so phases and augmentations replay identically.
// Concurrency: single goroutine per call; no shared state.
package flow

import (
	"context"
	"math"

	"github.com/dkoslav/grath/core"
)

// dinicState is the per-call phase scratch.
type dinicState struct {
	net   *network
	level []int // BFS depth from source over positive-capacity arcs; -1 dead
	iter  []int // per-vertex cursor into head[v], persists within a phase
	path  []int // arc indices from source to the current vertex
	queue []int
}

// Dinic computes the maximum source→sink flow in phases. Each phase
// layers the residual network by BFS depth and then saturates it with a
// blocking flow that only steps from level L to level L+1.
//
// Same graph handling and error set as EdmondsKarp; prefer Dinic on
// dense or unit-capacity networks where its phase bound wins.
func Dinic(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	cfg := apply(opts)
	net, err := prepare(g, source, sink)
	if err != nil {
		return nil, err
	}

	st := &dinicState{
		net:   net,
		level: make([]int, net.n),
		iter:  make([]int, net.n),
		path:  make([]int, 0, net.n),
		queue: make([]int, 0, net.n),
	}
	res := &Result{source: source, net: net}
	for {
		if err := cfg.cancelled(); err != nil {
			return nil, err
		}
		st.layer(source)
		if st.level[sink] < 0 {
			break
		}
		for i := range st.iter {
			st.iter[i] = 0
		}
		pushed, err := st.blockingFlow(cfg.Ctx, source, sink)
		if err != nil {
			return nil, err
		}
		res.MaxFlow += pushed
	}
	return res, nil
}

// layer recomputes BFS levels over arcs with residual capacity.
func (st *dinicState) layer(source int) {
	for i := range st.level {
		st.level[i] = -1
	}
	st.level[source] = 0
	st.queue = st.queue[:0]
	st.queue = append(st.queue, source)
	for head := 0; head < len(st.queue); head++ {
		u := st.queue[head]
		for _, ai := range st.net.head[u] {
			a := st.net.arcs[ai]
			if a.cap > 0 && st.level[a.to] < 0 {
				st.level[a.to] = st.level[u] + 1
				st.queue = append(st.queue, a.to)
			}
		}
	}
}

// blockingFlow saturates the current level graph with an explicit
// advance/retreat walk. The iter cursors make each arc's rejection
// permanent within the phase, which keeps the phase at O(V·E).
func (st *dinicState) blockingFlow(ctx context.Context, source, sink int) (int64, error) {
	var total int64
	st.path = st.path[:0]
	v := source
	for {
		if v == sink {
			if ctx != nil {
				select {
				case <-ctx.Done():
					return total, ctx.Err()
				default:
				}
			}
			// 1) Push the path bottleneck along the recorded arcs.
			bottle := int64(math.MaxInt64)
			for _, ai := range st.path {
				if c := st.net.arcs[ai].cap; c < bottle {
					bottle = c
				}
			}
			for _, ai := range st.path {
				st.net.arcs[ai].cap -= bottle
				st.net.arcs[ai^1].cap += bottle
			}
			total += bottle
			// 2) Resume from the tail of the first saturated arc.
			for i, ai := range st.path {
				if st.net.arcs[ai].cap == 0 {
					st.path = st.path[:i]
					break
				}
			}
			if len(st.path) == 0 {
				v = source
			} else {
				v = st.net.arcs[st.path[len(st.path)-1]].to
			}
			continue
		}

		// 3) Advance: take the first live arc that descends one level.
		advanced := false
		for st.iter[v] < len(st.net.head[v]) {
			ai := st.net.head[v][st.iter[v]]
			a := st.net.arcs[ai]
			if a.cap > 0 && st.level[a.to] == st.level[v]+1 {
				st.path = append(st.path, ai)
				v = a.to
				advanced = true
				break
			}
			st.iter[v]++
		}
		if advanced {
			continue
		}

		// 4) Retreat: v is exhausted for this phase.
		if v == source {
			return total, nil
		}
		st.level[v] = -1
		last := st.path[len(st.path)-1]
		st.path = st.path[:len(st.path)-1]
		v = st.net.arcs[last^1].to
		st.iter[v]++
	}
}
