// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building, querying, and cloning graphs over
// dense integer vertex indices 0..n-1.
//
// A single sync.RWMutex guards all storage, so graphs can be built from one
// goroutine and read from many. Algorithm packages only ever read.
//
// This file declares Edge, Graph, Option, the sentinel errors, and the New
// constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex index outside [0, n) was passed to an operation.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex index
	// outside [0, VertexCount()). It is never silently clamped; every
	// operation that receives an index validates it first.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge represents a connection between two vertices.
//
// From and To are dense vertex indices. In adjacency rows the invariant
// From == row owner always holds, so the mirrored copy of an undirected
// edge (u,v) appears in row v as {From: v, To: u}.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost or capacity of the edge. Negative weights are
	// accepted by the store; individual algorithms reject them as needed.
	Weight int64

	// Directed reports whether this edge is one-way (true) or bidirectional
	// (false). On graphs built with WithDirected(true) every edge is
	// directed; on undirected graphs AddDirectedEdge sets it per edge.
	Directed bool
}

// Option configures behavior of a Graph before creation.
type Option func(g *Graph)

// WithDirected sets the default orientation for edges added via AddEdge
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// Vertices are dense integers 0..n-1; adding a vertex extends the range by
// one. Parallel edges and self-loops are always permitted. Edge insertion
// order is preserved both per adjacency row and in the global edge catalog,
// which keeps every algorithm that iterates the graph deterministic.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// Configuration flags
	directed bool // default orientation for AddEdge
	mixed    bool // set once AddDirectedEdge is used on an undirected graph

	negWeight bool // set once any edge with Weight < 0 is added

	// Storage
	adj   [][]Edge // adj[u] = outgoing arcs of u, in insertion order
	edges []Edge   // catalog of edges as added, one entry per Add call
}

// New creates a Graph with n isolated vertices indexed 0..n-1.
// A negative n is treated as zero. By default the graph is undirected;
// pass WithDirected(true) for a digraph.
// Complexity: O(n)
func New(n int, opts ...Option) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adj: make([][]Edge, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
