// File: prim.go
// Role: heap-grown spanning tree of the start vertex's component.
// Determinism:
//   - The frontier heap orders by weight; among equal weights the pop order
//     follows the push sequence, which is fixed by adjacency insertion order,
//     so repeated runs grow the same tree.
// Concurrency:
//   - None. All state is call-local.

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Prim computes the minimum spanning tree of the connected component
// containing start, growing outward one cheapest frontier edge at a time.
// Vertices outside start's component are simply not spanned; on a
// connected graph the result covers everything and its TotalWeight equals
// Kruskal's.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be undirected with no per-edge overrides (ErrDirected).
//  3. start must lie inside [0, n) (ErrStartOutOfRange).
//  4. No edge in g may carry a negative weight (ErrNegativeWeight).
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, start int) (*Tree, error) {
	// 1) Validate graph pointer and mode.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirected
	}

	// 2) Validate start index.
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}

	// 3) Reject negative weights before growing. The probe is O(1); the
	// catalog scan only runs to name the offending edge.
	if g.HasNegativeWeight() {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 4) Grow from start. inTree doubles as the staleness check: popped
	// edges into an already-attached vertex are skipped, which also
	// swallows self-loops.
	inTree := make([]bool, n)
	inTree[start] = true
	tree := &Tree{Edges: make([]core.Edge, 0, n-1)}

	pq := make(edgePQ, 0, n)
	heap.Init(&pq)
	if err := pushFrontier(g, start, inTree, &pq); err != nil {
		return nil, err
	}

	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		e := heap.Pop(&pq).(core.Edge)
		if inTree[e.To] {
			continue
		}

		// Cheapest edge leaving the tree: attach its far endpoint.
		inTree[e.To] = true
		tree.Edges = append(tree.Edges, e)
		tree.TotalWeight += e.Weight

		if err := pushFrontier(g, e.To, inTree, &pq); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// pushFrontier queues every arc from v whose far endpoint is still outside
// the tree. Neighbors guarantees From == v, so To is always the far side.
func pushFrontier(g *core.Graph, v int, inTree []bool, pq *edgePQ) error {
	neighbors, err := g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %d: %w", v, err)
	}
	for _, e := range neighbors {
		if !inTree[e.To] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgePQ is a min-heap of candidate frontier edges ordered by weight
// ascending. Stale entries are ignored on pop via the inTree check.
type edgePQ []core.Edge

// Len returns the number of edges in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller weight → higher priority.
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }

// Swap swaps two elements in the heap.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a core.Edge.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the smallest element from the heap.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
