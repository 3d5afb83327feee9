// Package flow: Ford-Fulkerson maximum flow.
//
// File: ford_fulkerson.go
// Role: any-augmenting-path max flow via an explicit DFS stack,
//       O(E·maxFlow) in the worst case.
// Determinism: the stack scan follows arc insertion order, so the
//              augmenting sequence is fixed for a given graph.
// Concurrency: single goroutine per call; no shared state.
package flow

import "github.com/dkoslav/grath/core"

// ffState is the per-call search scratch.
type ffState struct {
	net       *network
	parentArc []int
	visited   []bool
	stack     []int
}

// FordFulkerson computes the maximum source→sink flow by augmenting
// along any residual path found by depth-first search. With integral
// capacities every augmentation moves at least one unit, so the method
// terminates; on adversarial capacities Edmonds-Karp or Dinic bound the
// iteration count much tighter.
//
// Same graph handling and error set as EdmondsKarp.
func FordFulkerson(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	cfg := apply(opts)
	net, err := prepare(g, source, sink)
	if err != nil {
		return nil, err
	}

	st := &ffState{
		net:       net,
		parentArc: make([]int, net.n),
		visited:   make([]bool, net.n),
		stack:     make([]int, 0, net.n),
	}
	res := &Result{source: source, net: net}
	for {
		if err := cfg.cancelled(); err != nil {
			return nil, err
		}
		if !st.anyPath(source, sink) {
			break
		}
		bottle := net.bottleneck(source, sink, st.parentArc)
		net.augment(source, sink, st.parentArc, bottle)
		res.MaxFlow += bottle
	}
	return res, nil
}

// anyPath searches depth-first for a residual path and records the
// entering arc per vertex. Reports whether the sink was reached.
func (st *ffState) anyPath(source, sink int) bool {
	for i := range st.visited {
		st.visited[i] = false
		st.parentArc[i] = -1
	}
	st.stack = st.stack[:0]
	st.stack = append(st.stack, source)
	st.visited[source] = true

	for len(st.stack) > 0 {
		u := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]
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
			st.stack = append(st.stack, a.to)
		}
	}
	return false
}
