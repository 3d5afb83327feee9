// Package flow: residual network shared by all three solvers.
//
// File: residual.go
// Role: arc-pair residual representation, validation and construction
//       from a core.Graph, plus the augmentation helpers every solver
//       reuses.
// Determinism: arcs are laid out in first-encounter catalog order and
//              adjacency lists are scanned by ascending arc index, so
//              every solver visits candidates in the same order on
//              every run.
// Concurrency: a network is mutated by its owning solver only; no
//              internal synchronization.
package flow

import "github.com/dkoslav/grath/core"

// arc is one direction of a residual pair. Forward arcs live at even
// indices with orig set to the aggregated input capacity; their reverse
// twins follow at the next odd index with orig zero. The twin of arc i
// is arc i^1.
type arc struct {
	to   int   // head vertex
	cap  int64 // remaining residual capacity
	orig int64 // capacity at build time (0 for reverse arcs)
}

// network is the mutable residual state of one solver run.
type network struct {
	n    int
	arcs []arc
	head [][]int // head[v] lists arc indices leaving v, oldest first
}

// addPair appends a forward arc u→v of capacity c and its reverse twin.
func (nw *network) addPair(u, v int, c int64) {
	nw.head[u] = append(nw.head[u], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: v, cap: c, orig: c})
	nw.head[v] = append(nw.head[v], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: u, cap: 0})
}

// buildNetwork aggregates the graph into residual arc pairs.
//
// Parallel arcs over the same ordered pair are summed into one capacity.
// Self-loops never carry source→sink flow and are dropped. An undirected
// edge contributes an independent pair per direction, which models
// undirected capacity exactly. Pairs that aggregate to zero are dropped.
func buildNetwork(g *core.Graph) (*network, error) {
	// 1) Reject negative capacities, naming the offender from the catalog.
	if g.HasNegativeWeight() {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, &CapacityError{From: e.From, To: e.To, Cap: e.Weight}
			}
		}
	}

	// 2) Sum parallel arcs per ordered pair, keeping first-encounter order.
	type slot struct {
		u, v int
		c    int64
	}
	pos := make(map[[2]int]int)
	var slots []slot
	for _, e := range g.Arcs() {
		if e.From == e.To {
			continue
		}
		key := [2]int{e.From, e.To}
		if i, ok := pos[key]; ok {
			slots[i].c += e.Weight
			continue
		}
		pos[key] = len(slots)
		slots = append(slots, slot{u: e.From, v: e.To, c: e.Weight})
	}

	// 3) Emit arc pairs, skipping slots with no usable capacity.
	nw := &network{n: g.VertexCount(), head: make([][]int, g.VertexCount())}
	for _, s := range slots {
		if s.c == 0 {
			continue
		}
		nw.addPair(s.u, s.v, s.c)
	}
	return nw, nil
}

// prepare validates the call and builds the residual network.
// Shared by EdmondsKarp, Dinic and FordFulkerson so all three agree on
// error order: nil graph, source range, sink range, source==sink,
// negative capacity.
func prepare(g *core.Graph, source, sink int) (*network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}
	return buildNetwork(g)
}

// bottleneck walks parent arcs from sink back to source and returns the
// smallest residual capacity on the path.
func (nw *network) bottleneck(source, sink int, parentArc []int) int64 {
	bottle := nw.arcs[parentArc[sink]].cap
	for v := sink; v != source; {
		ai := parentArc[v]
		if c := nw.arcs[ai].cap; c < bottle {
			bottle = c
		}
		v = nw.arcs[ai^1].to
	}
	return bottle
}

// augment pushes bottle units of flow along the parent-arc path.
func (nw *network) augment(source, sink int, parentArc []int, bottle int64) {
	for v := sink; v != source; {
		ai := parentArc[v]
		nw.arcs[ai].cap -= bottle
		nw.arcs[ai^1].cap += bottle
		v = nw.arcs[ai^1].to
	}
}
