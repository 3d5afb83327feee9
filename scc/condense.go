// File: condense.go
// Role: collapse a digraph to its component DAG.
// Determinism:
//   - Component indices follow Tarjan's emission order; DAG arcs are added
//     in first-encounter order over the arc view.
// Concurrency:
//   - None. All state is call-local.

package scc

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Condense collapses every strongly connected component of g into a single
// vertex and returns the resulting DAG together with the component
// membership and the vertex→component map.
//
// Arcs between distinct components are deduplicated; when several original
// arcs collapse onto one DAG arc, it carries their minimum weight. Arcs
// internal to a component, self-loops included, vanish.
//
// Validation matches Tarjan: ErrGraphNil, ErrUndirected.
//
// Complexity: O(V + E) on top of Tarjan.
func Condense(g *core.Graph) (*Condensation, error) {
	// 1) Partition the graph; this also validates it.
	comps, err := Tarjan(g)
	if err != nil {
		return nil, err
	}

	// 2) Invert the partition into a vertex→component map.
	index := make([]int, g.VertexCount())
	for ci, comp := range comps {
		for _, v := range comp {
			index[v] = ci
		}
	}

	// 3) Collapse arcs. Slots keep first-encounter order so the DAG
	// catalog is reproducible; the map only locates existing slots.
	type slot struct {
		cu, cv int
		w      int64
	}
	pos := make(map[[2]int]int)
	var slots []slot
	for _, e := range g.Arcs() {
		cu, cv := index[e.From], index[e.To]
		if cu == cv {
			continue
		}
		key := [2]int{cu, cv}
		if i, ok := pos[key]; ok {
			if e.Weight < slots[i].w {
				slots[i].w = e.Weight
			}

			continue
		}
		pos[key] = len(slots)
		slots = append(slots, slot{cu: cu, cv: cv, w: e.Weight})
	}

	// 4) Materialize the DAG through the ordinary construction API.
	dag := core.New(len(comps), core.WithDirected(true))
	for _, s := range slots {
		if err := dag.AddEdge(s.cu, s.cv, s.w); err != nil {
			return nil, fmt.Errorf("scc: condensed arc %d→%d: %w", s.cu, s.cv, err)
		}
	}

	return &Condensation{DAG: dag, Components: comps, Index: index}, nil
}
