// Package bellman_ford implements the Bellman-Ford single-source
// shortest-path algorithm, the negative-weight-tolerant counterpart to
// dijkstra.
//
// The algorithm relaxes every arc of the graph in a fixed enumeration for
// up to n-1 passes; a pass that changes nothing ends the run early. One
// extra detection pass follows: any further improvement proves a negative
// cycle reachable from the source, and the run fails with ErrNegativeCycle
// instead of returning meaningless distances.
//
// Complexity:
//
//   - Time:  O(V·E) worst case, with early exit on converged passes.
//   - Space: O(V+E) for distances, parents, and the expanded arc list.
package bellman_ford

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

// BellmanFord computes shortest distances from source to every vertex of g,
// tolerating negative arc weights.
//
// On undirected graphs every edge relaxes in both directions, so a single
// negative undirected edge forms the two-arc cycle u→v→u and is reported as
// ErrNegativeCycle. A negative cycle that the source cannot reach leaves
// all distances finite and is not reported.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source must lie inside [0, n) (ErrSourceOutOfRange).
//
// Complexity: O(V·E) time, O(V+E) memory.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Validate source index.
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, n)
	}

	// 3) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Expand the catalog once into the relaxation enumeration: catalog
	// insertion order, with each undirected edge contributing both
	// directions back to back.
	arcs := expandArcs(g)

	// 5) Initialize distances and predecessors.
	res := &Result{
		Dist:   make([]int64, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = Unreachable
		res.Parent[v] = -1
	}
	res.Dist[source] = 0

	// 6) Up to n-1 full passes; stop as soon as one changes nothing.
	for pass := 1; pass < n; pass++ {
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}

		if !relaxAll(arcs, res) {
			break
		}
	}

	// 7) Detection pass: one more improvement proves a reachable negative
	// cycle, and the distance array is withheld.
	for _, e := range arcs {
		du := res.Dist[e.From]
		if du == Unreachable {
			continue
		}
		if du+e.Weight < res.Dist[e.To] {
			return nil, fmt.Errorf("%w: still improvable arc %d→%d", ErrNegativeCycle, e.From, e.To)
		}
	}

	return res, nil
}

// expandArcs flattens the edge catalog into the fixed relaxation order.
func expandArcs(g *core.Graph) []core.Edge {
	catalog := g.Edges()
	arcs := make([]core.Edge, 0, 2*len(catalog))
	for _, e := range catalog {
		arcs = append(arcs, e)
		if !e.Directed && e.From != e.To {
			arcs = append(arcs, core.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return arcs
}

// relaxAll runs one full pass over the arc enumeration and reports whether
// any distance improved. Arcs whose tail is still unreachable are skipped,
// which also keeps +∞ out of the additions.
func relaxAll(arcs []core.Edge, res *Result) bool {
	changed := false
	for _, e := range arcs {
		du := res.Dist[e.From]
		if du == Unreachable {
			continue
		}
		if nd := du + e.Weight; nd < res.Dist[e.To] {
			res.Dist[e.To] = nd
			res.Parent[e.To] = e.From
			changed = true
		}
	}

	return changed
}
