// Topological ordering of directed graphs, in two flavors:
//
//   - TopologicalSort: reverse DFS post-order with white/gray/black states,
//     run iteratively on an explicit frame stack.
//   - TopologicalKahn: in-degree peeling with a min-heap of ready vertices,
//     so ties always resolve to the lowest index.
//
// Both reject cyclic inputs with ErrCycleDetected and never return a
// partial order.
//
// Complexity:
//
//   - Time:   O(V + E) for the DFS variant, O(V log V + E) for Kahn
//   - Memory: O(V)
package dfs

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// TopoOption configures optional behavior for the topological operations.
type TopoOption func(*topoOptions)

// topoOptions holds settings for topological sorting, currently only
// cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoFrame is one entry of the sorter's explicit stack.
type topoFrame struct {
	v      int
	edges  []core.Edge
	cursor int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	color []byte      // visitation state: White/Gray/Black
	stack []topoFrame // explicit DFS stack
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g via
// iterative DFS: for every arc u→v, u appears before v in the result.
// Roots are tried in ascending index order, so the ordering is deterministic
// for a fixed build sequence.
//
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirected.
// If a cycle is detected (a self-loop included), returns ErrCycleDetected
// naming the back edge; no partial order is returned.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer and orientation.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: topological sort", ErrUndirected)
	}
	// 2. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state.
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		color: make([]byte, n),
		stack: make([]topoFrame, 0, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex, ascending.
	for v := 0; v < n; v++ {
		if sorter.color[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce the topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs one iterative DFS tree from root, marking states and
// detecting back edges.
func (t *topoSorter) visit(root int) error {
	if err := t.push(root); err != nil {
		return err
	}
	for len(t.stack) > 0 {
		// 1. Cancellation check once per step.
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &t.stack[len(t.stack)-1]
		if top.cursor >= len(top.edges) {
			// 2. Finished: record post-order and pop.
			t.color[top.v] = Black
			t.order = append(t.order, top.v)
			t.stack = t.stack[:len(t.stack)-1]

			continue
		}

		e := top.edges[top.cursor]
		top.cursor++

		switch t.color[e.To] {
		case Gray:
			// 3. Back edge: part of a cycle.
			return fmt.Errorf("%w: back edge %d→%d", ErrCycleDetected, e.From, e.To)
		case White:
			if err := t.push(e.To); err != nil {
				return err
			}
		}
	}

	return nil
}

// push marks v Gray and stacks its frame.
func (t *topoSorter) push(v int) error {
	t.color[v] = Gray
	edges, err := t.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
	}
	t.stack = append(t.stack, topoFrame{v: v, edges: edges})

	return nil
}

// TopologicalKahn computes a topological ordering of g by repeatedly peeling
// vertices of in-degree zero. Ready vertices are drawn from a min-heap, so
// among all currently available vertices the lowest index is emitted first;
// the result is the lexicographically smallest topological order.
//
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirected.
// If fewer than n vertices can be peeled, the leftover vertices sit on at
// least one cycle and ErrCycleDetected is returned.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// Complexity: O(V log V + E) time, O(V) memory.
func TopologicalKahn(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer and orientation.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: topological sort", ErrUndirected)
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2. Count in-degrees over the full arc view; parallel arcs count once
	// each, and a self-loop pins its vertex on a cycle.
	n := g.VertexCount()
	indeg := make([]int, n)
	for _, e := range g.Arcs() {
		indeg[e.To]++
	}

	// 3. Seed the ready heap with all in-degree-zero vertices.
	ready := &minIntHeap{}
	heap.Init(ready)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	// 4. Peel until the heap drains.
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		v := heap.Pop(ready).(int)
		order = append(order, v)

		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		for _, e := range edges {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	// 5. Anything left unpeeled sits on a cycle.
	if len(order) < n {
		return nil, fmt.Errorf("%w: %d vertices remain on cycles", ErrCycleDetected, n-len(order))
	}

	return order, nil
}

// FindCycle locates one directed cycle in g and returns it as a vertex
// sequence whose first and last elements coincide, e.g. [2 5 3 2].
// The boolean reports whether a cycle exists; an acyclic graph yields
// (nil, false, nil).
//
// If g is nil, returns ErrGraphNil; if undirected, ErrUndirected.
//
// Complexity: O(V+E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]int, bool, error) {
	// 1. Validate graph pointer and orientation.
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.Directed() {
		return nil, false, fmt.Errorf("%w: cycle search", ErrUndirected)
	}

	n := g.VertexCount()
	color := make([]byte, n)
	stack := make([]topoFrame, 0, n)

	push := func(v int) error {
		color[v] = Gray
		edges, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		stack = append(stack, topoFrame{v: v, edges: edges})

		return nil
	}

	for root := 0; root < n; root++ {
		if color[root] != White {
			continue
		}
		if err := push(root); err != nil {
			return nil, false, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor >= len(top.edges) {
				color[top.v] = Black
				stack = stack[:len(stack)-1]

				continue
			}

			e := top.edges[top.cursor]
			top.cursor++

			switch color[e.To] {
			case Gray:
				// 2. Back edge found: the gray chain from e.To up to the
				// stack top closes the cycle.
				at := len(stack) - 1
				for stack[at].v != e.To {
					at--
				}
				cycle := make([]int, 0, len(stack)-at+1)
				for _, f := range stack[at:] {
					cycle = append(cycle, f.v)
				}
				cycle = append(cycle, e.To)

				return cycle, true, nil
			case White:
				if err := push(e.To); err != nil {
					return nil, false, err
				}
			}
		}
	}

	return nil, false, nil
}

// minIntHeap is a container/heap min-heap of vertex indices.
type minIntHeap []int

func (h minIntHeap) Len() int            { return len(h) }
func (h minIntHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minIntHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minIntHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *minIntHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
