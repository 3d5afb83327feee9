// Package flow: Edmonds-Karp maximum flow.
//
// File: edmonds_karp.go
// Role: shortest-augmenting-path max flow, O(V·E²).
// Determinism: BFS scans adjacency in arc insertion order, so the
//              sequence of augmenting paths is fixed for a given graph.
// Concurrency: single goroutine per call; no shared state.
package flow

import "github.com/dkoslav/grath/core"

// ekState carries the per-call search scratch so the BFS allocates once,
// not once per augmentation.
type ekState struct {
	net       *network
	parentArc []int // arc index used to enter v on the current path
	visited   []bool
	queue     []int
}

// EdmondsKarp computes the maximum source→sink flow by repeatedly
// augmenting along a shortest (fewest-arc) residual path.
//
// Works on directed, undirected and mixed graphs; an undirected edge
// offers its full capacity in both directions. Self-loops are ignored
// and parallel arcs are merged by summing capacities.
//
// Errors: ErrGraphNil, ErrSourceOutOfRange, ErrSinkOutOfRange,
// ErrSourceIsSink, *CapacityError, and ctx.Err() under WithContext.
func EdmondsKarp(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	cfg := apply(opts)
	net, err := prepare(g, source, sink)
	if err != nil {
		return nil, err
	}

	st := &ekState{
		net:       net,
		parentArc: make([]int, net.n),
		visited:   make([]bool, net.n),
		queue:     make([]int, 0, net.n),
	}
	res := &Result{source: source, net: net}
	for {
		if err := cfg.cancelled(); err != nil {
			return nil, err
		}
		if !st.shortestPath(source, sink) {
			break
		}
		bottle := net.bottleneck(source, sink, st.parentArc)
		net.augment(source, sink, st.parentArc, bottle)
		res.MaxFlow += bottle
	}
	return res, nil
}

// shortestPath runs a BFS over arcs with residual capacity and records
// the entering arc per vertex. Reports whether the sink was reached.
func (st *ekState) shortestPath(source, sink int) bool {
	for i := range st.visited {
		st.visited[i] = false
		st.parentArc[i] = -1
	}
	st.queue = st.queue[:0]
	st.queue = append(st.queue, source)
	st.visited[source] = true

	for head := 0; head < len(st.queue); head++ {
		u := st.queue[head]
		for _, ai := range st.net.head[u] {
			a := st.net.arcs[ai]
			if a.cap <= 0 || st.visited[a.to] {
				continue
			}
			st.visited[a.to] = true
			st.parentArc[a.to] = ai
			if a.to == sink {
				return true
			}
			st.queue = append(st.queue, a.to)
		}
	}
	return false
}
