// File: kruskal.go
// Role: global edge-sort spanning forest via union-find.
// Determinism:
//   - Stable sort by weight over the insertion-order catalog, so equal
//     weights keep their build order and repeated runs accept the same edges.
// Concurrency:
//   - None. All state is call-local.

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/dkoslav/grath/core"
	"github.com/dkoslav/grath/unionfind"
)

// Kruskal computes a minimum spanning forest of an undirected weighted
// graph: the minimum spanning tree of every connected component. A
// disconnected input is not an error; the Components count reports how
// many trees were built, and callers wanting a single tree check for 1.
//
// Negative weights are legal: the sort-and-union argument needs no
// non-negativity, only an ordering.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be undirected with no per-edge overrides (ErrDirected).
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Forest, error) {
	// 1) Validate graph pointer and mode.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirected
	}

	// 2) Collect the catalog, dropping self-loops: a loop closes a cycle
	// by itself and can never join two components.
	all := g.Edges()
	candidates := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		candidates = append(candidates, e)
	}

	// 3) Stable sort ascending by weight; ties keep catalog order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 4) Sweep the sorted candidates, accepting every edge that merges two
	// components. n-1 acceptances mean a full spanning tree; stop early.
	n := g.VertexCount()
	limit := n - 1
	if limit < 0 {
		limit = 0
	}
	forest := &Forest{Edges: make([]core.Edge, 0, limit)}

	dsu := unionfind.New(n)
	for _, e := range candidates {
		merged, err := dsu.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: union %d-%d: %w", e.From, e.To, err)
		}
		if !merged {
			// Endpoints already connected; accepting would close a cycle.
			continue
		}

		forest.Edges = append(forest.Edges, e)
		forest.TotalWeight += e.Weight
		if len(forest.Edges) == limit {
			break
		}
	}

	// 5) Whatever sets remain are the trees of the forest.
	forest.Components = dsu.Count()

	return forest, nil
}
