// Package dfs provides depth-first search over a core.Graph with pre- and
// post-order hooks, depth limiting, neighbor filtering, and forest mode.
//
// The walk is fully iterative: an explicit stack of {vertex, cursor} frames
// replaces recursion, so arbitrarily deep or degenerate graphs (long chains,
// adversarial trees) cannot overflow the goroutine stack.
package dfs

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

// frame is one entry of the explicit walk stack: a vertex, its arc list,
// and a cursor marking the next arc to examine.
type frame struct {
	v      int
	edges  []core.Edge
	cursor int
	depth  int
}

// walker encapsulates mutable DFS state for a single run.
type walker struct {
	graph *core.Graph
	opts  Options
	color []byte
	stack []frame
	res   *Result
}

// DFS runs an iterative depth-first walk on g starting from start, applying
// any number of functional Options. With WithFullTraversal the walk restarts
// from every still-white vertex in ascending order after the start tree.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input, the context
// error on cancellation, or any user-supplied hook error.
//
// Complexity: O(V+E) time, O(V) auxiliary memory.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		color: make([]byte, n),
		stack: make([]frame, 0, n),
		res: &Result{
			Order:     make([]int, 0, n),
			PostOrder: make([]int, 0, n),
			Depth:     make([]int, n),
			Parent:    make([]int, n),
			Visited:   make([]bool, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// 1. Walk the start tree.
	if err := w.walk(start); err != nil {
		return nil, err
	}
	// 2. Forest mode: restart from every unvisited vertex, ascending.
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if w.color[v] == White {
				if err := w.walk(v); err != nil {
					return nil, err
				}
			}
		}
	}

	return w.res, nil
}

// walk explores one DFS tree rooted at root.
func (w *walker) walk(root int) error {
	if err := w.discover(root, 0, -1); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.cursor >= len(top.edges) {
			// All arcs examined: finish v in post-order and pop.
			w.color[top.v] = Black
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit error at %d: %w", top.v, err)
				}
			}
			w.res.PostOrder = append(w.res.PostOrder, top.v)
			w.stack = w.stack[:len(w.stack)-1]

			continue
		}

		// Advance the cursor before any push; top may be invalidated by
		// stack growth afterwards.
		e := top.edges[top.cursor]
		top.cursor++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e) {
			w.res.SkippedNeighbors++

			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.color[e.To] == White {
			if err := w.discover(e.To, top.depth+1, top.v); err != nil {
				return err
			}
		}
	}

	return nil
}

// discover marks v Gray, records pre-order bookkeeping, runs OnVisit, and
// pushes v's frame onto the walk stack.
func (w *walker) discover(v, depth, parent int) error {
	w.color[v] = Gray
	w.res.Order = append(w.res.Order, v)
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Visited[v] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
		}
	}

	edges, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, edges: edges, depth: depth})

	return nil
}
