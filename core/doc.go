// Package core provides a compact, thread-safe in-memory Graph over dense
// integer vertex indices, tuned for the algorithm packages built on top of it.
//
// The Graph G = (V,E) keeps vertices as the contiguous range 0..n-1, so every
// algorithm can use plain slices for distances, parents, colors, and visit
// flags instead of hash maps. It supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Mixed graphs: per-edge one-way arcs on an undirected base (AddDirectedEdge)
//   - int64 weights, negative values included (Dijkstra/Prim reject them themselves)
//   - Parallel edges and self-loops, always permitted
//   - A single sync.RWMutex, so builds and concurrent reads never race
//
// Why use core.Graph?
//
//   - Deterministic iteration: Neighbors(), Edges(), and Arcs() all preserve
//     insertion order, which makes traversal orders, MST edge choices, and
//     tie-breaks reproducible run to run.
//   - Immutability by convention: algorithm packages take a *Graph and only
//     call read accessors; all per-run bookkeeping lives in the algorithm's
//     own call state, so one graph can serve many goroutines at once.
//   - Cheap feature probes: HasDirectedEdges and HasNegativeWeight are O(1),
//     letting algorithms fail fast with a precise sentinel before any work.
//
// Typical usage:
//
//	g := core.New(4)                      // 4 isolated vertices: 0,1,2,3
//	_ = g.AddEdge(0, 1, 5)                // undirected, weight 5
//	_ = g.AddEdge(1, 2, 2)
//	v := g.AddVertex()                    // v == 4
//	_ = g.AddEdge(2, v, 1)
//	ns, _ := g.Neighbors(1)               // arcs {1→0}, {1→2} in insertion order
//
// API summary:
//
//	// Construction
//	New(n, opts...) *Graph               // O(n): n isolated vertices
//	AddVertex() int                      // O(1): next dense index
//	AddEdge(u, v, w) error               // O(1): default orientation
//	AddDirectedEdge(u, v, w) error       // O(1): one-way arc, flips mixed mode
//
//	// Queries
//	Neighbors(v) ([]Edge, error)         // O(deg v): outgoing arcs, From == v
//	OutDegree(v) (int, error)            // O(1)
//	HasEdge(u, v) bool                   // O(deg u)
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1): catalog length
//	Edges() []Edge                       // O(E): catalog in insertion order
//	Arcs() []Edge                        // O(V+E): flattened adjacency view
//	Directed() bool                      // O(1)
//	HasDirectedEdges() bool              // O(1)
//	HasNegativeWeight() bool             // O(1)
//
//	// Cloning
//	Clone() *Graph                       // O(V+E): deep copy, no shared storage
//
// Edge struct fields:
//
//	From     int    // source vertex index (row owner in adjacency views)
//	To       int    // destination vertex index
//	Weight   int64  // cost or capacity
//	Directed bool   // true = one-way arc
//
// Errors:
//
//	ErrVertexOutOfRange - index outside [0, n); surfaced immediately, never clamped
package core
