// File: methods.go
// Role: Graph mutation and queries: AddVertex/AddEdge/AddDirectedEdge,
//       adjacency and catalog accessors, feature probes, Clone.
// Determinism:
//   - Neighbors(v) returns arcs in edge insertion order.
//   - Edges() returns the catalog in insertion order, one entry per Add call.
//   - Arcs() returns rows 0..n-1, each in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock; all returned slices are copies.

package core

import "fmt"

// AddVertex appends one isolated vertex and returns its index. Indices are
// dense: the first call on New(0) returns 0, the next 1, and so on.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge creates an edge u→v with the graph's default orientation.
//
// On an undirected graph the edge is stored once in the catalog and mirrored
// into both adjacency rows; a self-loop (u == v) is stored in its row once.
// Parallel edges are permitted and kept in insertion order.
//
// Returns ErrVertexOutOfRange if either endpoint lies outside [0, n).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addLocked(u, v, weight, g.directed)
}

// AddDirectedEdge creates a one-way edge u→v regardless of the graph's
// default orientation. On an undirected graph this switches the graph into
// mixed mode, which HasDirectedEdges reports and the spanning-tree builders
// reject.
//
// Returns ErrVertexOutOfRange if either endpoint lies outside [0, n).
// Complexity: O(1) amortized.
func (g *Graph) AddDirectedEdge(u, v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.directed {
		g.mixed = true
	}

	return g.addLocked(u, v, weight, true)
}

// addLocked validates endpoints and inserts one edge. Caller holds mu.
func (g *Graph) addLocked(u, v int, weight int64, directed bool) error {
	// 1) Endpoint validation, before any mutation.
	n := len(g.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexOutOfRange, v, n)
	}

	// 2) Track the cheap feature probes.
	if weight < 0 {
		g.negWeight = true
	}

	// 3) Catalog entry, one per Add call.
	e := Edge{From: u, To: v, Weight: weight, Directed: directed}
	g.edges = append(g.edges, e)

	// 4) Adjacency row(s). The mirror keeps From == row owner.
	g.adj[u] = append(g.adj[u], e)
	if !directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: weight, Directed: false})
	}

	return nil
}

// Neighbors returns a copy of the outgoing arcs of v in insertion order.
// For undirected edges the mirrored arc appears in both endpoint rows, so
// every returned Edge satisfies From == v.
//
// Returns ErrVertexOutOfRange if v lies outside [0, n).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, len(g.adj))
	}

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// OutDegree returns the number of outgoing arcs of v. Mirrored undirected
// arcs count once per endpoint; an undirected self-loop counts once.
//
// Returns ErrVertexOutOfRange if v lies outside [0, n).
// Complexity: O(1).
func (g *Graph) OutDegree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, len(g.adj))
	}

	return len(g.adj[v]), nil
}

// HasEdge reports whether at least one arc u→v exists. Out-of-range
// endpoints report false; HasEdge is a probe, not a mutation.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return false
	}
	for _, e := range g.adj[u] {
		if e.To == v {
			return true
		}
	}

	return false
}

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of edges added, counting an undirected edge
// once even though it occupies two adjacency rows.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge catalog in insertion order, one entry per
// Add call. Undirected edges appear once, oriented as they were added.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Arcs returns a copy of the full adjacency view flattened row by row:
// all arcs of vertex 0 in insertion order, then vertex 1, and so on.
// Undirected edges contribute an arc in each direction (a self-loop one),
// so len(Arcs()) may exceed EdgeCount().
// Complexity: O(V+E).
func (g *Graph) Arcs() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, row := range g.adj {
		total += len(row)
	}
	out := make([]Edge, 0, total)
	for _, row := range g.adj {
		out = append(out, row...)
	}

	return out
}

// Directed reports the graph's default orientation.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasDirectedEdges reports whether any arc in the graph is one-way: true for
// digraphs and for undirected graphs that used AddDirectedEdge.
// Complexity: O(1).
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed || g.mixed
}

// HasNegativeWeight reports whether any edge with Weight < 0 was added.
// Dijkstra and Prim use it to fail fast before touching the adjacency.
// Complexity: O(1).
func (g *Graph) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.negWeight
}

// Clone returns a deep copy of the graph: flags, catalog, and adjacency.
// The copy shares no storage with the original, so either side can keep
// mutating without affecting the other.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:  g.directed,
		mixed:     g.mixed,
		negWeight: g.negWeight,
		adj:       make([][]Edge, len(g.adj)),
		edges:     append([]Edge(nil), g.edges...),
	}
	for u, row := range g.adj {
		if len(row) == 0 {
			continue
		}
		c.adj[u] = append([]Edge(nil), row...)
	}

	return c
}
