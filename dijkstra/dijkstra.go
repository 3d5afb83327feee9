// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative edge weights.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices. It processes vertices in order of increasing
// distance using a min-heap priority queue, relaxing arcs and updating
// distances as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V pops from the heap.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case heap size under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Negative weights are rejected up front: an O(1) graph probe catches
//     the condition, and only then an O(E) catalog scan names the first
//     offending edge in the error.
//   - Decrease-key is lazy: improved distances push duplicate heap entries,
//     and stale ones are skipped on pop via the visited check.
//   - With MaxDistance set, the run stops as soon as the closest frontier
//     vertex lies beyond the bound.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source must lie inside [0, n) (ErrSourceOutOfRange).
//  3. Options must be valid (ErrOptionViolation).
//  4. No edge in g may carry a negative weight (ErrNegativeWeight).
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Validate source index.
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, n)
	}

	// 3) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 4) Reject negative weights before any relaxation. The probe is O(1);
	// the catalog scan only runs to name the offending edge.
	if g.HasNegativeWeight() {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 5) Initialize the runner and execute.
	r := &runner{
		g:       g,
		options: cfg,
		visited: make([]bool, n),
		res: &Result{
			Dist:   make([]int64, n),
			Parent: make([]int, n),
		},
		pq: make(nodePQ, 0, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // the input graph; read-only here
	options Options     // configuration (MaxDistance)
	visited []bool      // finalization flags: true once a distance is final
	res     *Result     // distances and predecessors under construction
	pq      nodePQ      // min-heap of nodeItem for lazy priority queue
}

// init sets distances to +∞, predecessors to -1, and seeds the heap with
// the source at distance zero.
func (r *runner) init(source int) {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.Parent[v] = -1
	}
	r.res.Dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{v: source, dist: 0})
}

// process is the core loop: repeatedly finalize the closest frontier vertex
// and relax its outgoing arcs.
//
// Termination:
//   - the heap drains (all reachable vertices finalized), or
//   - the closest frontier vertex lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Skip stale entries of already-finalized vertices.
		if r.visited[item.v] {
			continue
		}

		// 3) Beyond the bound: every later pop is farther still, stop.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u; its distance cannot improve anymore.
		r.visited[item.v] = true

		// 5) Relax all outgoing arcs of u.
		if err := r.relax(item.v); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u through u.
// Every arc returned by Neighbors satisfies From == u, mirrors included,
// so no orientation filtering is needed here.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		newDist := du + e.Weight

		// Respect the exploration bound.
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-cost paths push no duplicates.
		if newDist >= r.res.Dist[e.To] {
			continue
		}

		r.res.Dist[e.To] = newDist
		r.res.Parent[e.To] = u
		heap.Push(&r.pq, nodeItem{v: e.To, dist: newDist})
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	v    int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Improved
// distances push duplicates; stale entries are ignored on pop via the
// runner's visited flags.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
