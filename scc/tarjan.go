// File: tarjan.go
// Role: one-pass strongly-connected-component discovery over an explicit
//       frame stack.
// Determinism:
//   - Roots scan ascending and arcs follow insertion order, so discovery
//     indices, component emission order, and member order are reproducible.
// Concurrency:
//   - None. Each call owns its finder.

package scc

import (
	"fmt"
	"sort"

	"github.com/dkoslav/grath/core"
)

// Tarjan returns the strongly connected components of a directed graph,
// each component's members sorted ascending.
//
// Components are emitted in reverse topological order of the
// condensation: if any arc leads from component A to component B, then B
// appears before A in the result. Every vertex lands in exactly one
// component; a single vertex without a self-loop forms a trivial one.
//
// The walk is iterative over an explicit frame stack, so graphs that
// would overflow a recursive implementation (a ring of a few hundred
// thousand vertices, say) are handled in ordinary heap memory.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be directed with no undirected base (ErrUndirected).
//
// Complexity: O(V + E + Σ|C| log |C|) time, O(V + E) memory.
func Tarjan(g *core.Graph) ([][]int, error) {
	// 1) Validate graph pointer and mode.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	// 2) Initialize the finder; -1 discovery index marks "never seen".
	n := g.VertexCount()
	f := &finder{
		g:       g,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
		comps:   make([][]int, 0, n),
	}
	for v := range f.index {
		f.index[v] = -1
	}

	// 3) Ascending roots cover every DFS tree of the forest.
	for root := 0; root < n; root++ {
		if f.index[root] != -1 {
			continue
		}
		if err := f.run(root); err != nil {
			return nil, err
		}
	}

	return f.comps, nil
}

// frame is one suspended visit: the vertex, its arcs, and how many have
// been examined so far.
type frame struct {
	v      int
	edges  []core.Edge
	cursor int
}

// finder holds the mutable state for a single Tarjan execution.
type finder struct {
	g       *core.Graph
	index   []int   // discovery index per vertex; -1 = unvisited
	lowlink []int   // smallest index reachable through the DFS subtree plus one back arc
	onStack []bool  // membership in the component stack
	stack   []int   // component stack: discovered, not yet assigned
	frames  []frame // explicit call stack
	next    int     // next discovery index to hand out
	comps   [][]int
}

// run walks one DFS tree rooted at root, emitting every component that
// completes inside it.
func (f *finder) run(root int) error {
	if err := f.discover(root); err != nil {
		return err
	}

	for len(f.frames) > 0 {
		top := &f.frames[len(f.frames)-1]

		// All arcs examined: the visit of top.v is over.
		if top.cursor == len(top.edges) {
			f.close()

			continue
		}

		e := top.edges[top.cursor]
		// Advance through the pointer before any push; growing f.frames
		// may move the backing array and orphan top.
		top.cursor++

		switch w := e.To; {
		case f.index[w] == -1:
			// Tree arc: suspend here, descend into w.
			if err := f.discover(w); err != nil {
				return err
			}
		case f.onStack[w]:
			// Back arc into the current stack region.
			if f.index[w] < f.lowlink[top.v] {
				f.lowlink[top.v] = f.index[w]
			}
		}
		// Arcs into finished components need nothing.
	}

	return nil
}

// discover assigns v its discovery index, puts it on the component stack,
// and pushes its visit frame.
func (f *finder) discover(v int) error {
	f.index[v] = f.next
	f.lowlink[v] = f.next
	f.next++

	f.stack = append(f.stack, v)
	f.onStack[v] = true

	edges, err := f.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("scc: neighbors of %d: %w", v, err)
	}
	f.frames = append(f.frames, frame{v: v, edges: edges})

	return nil
}

// close pops the finished visit. A vertex whose lowlink still equals its
// own index roots a component: everything above it on the component stack
// belongs to it. Either way the lowlink flows into the parent frame.
func (f *finder) close() {
	v := f.frames[len(f.frames)-1].v
	f.frames = f.frames[:len(f.frames)-1]

	if f.lowlink[v] == f.index[v] {
		var comp []int
		for {
			w := f.stack[len(f.stack)-1]
			f.stack = f.stack[:len(f.stack)-1]
			f.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		sort.Ints(comp)
		f.comps = append(f.comps, comp)
	}

	if len(f.frames) > 0 {
		parent := f.frames[len(f.frames)-1].v
		if f.lowlink[v] < f.lowlink[parent] {
			f.lowlink[parent] = f.lowlink[v]
		}
	}
}
