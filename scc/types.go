// Package scc defines result types and error definitions for strongly
// connected component discovery.
package scc

import (
	"errors"

	"github.com/dkoslav/grath/core"
)

// Sentinel errors for component discovery.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrUndirected is returned for undirected or mixed graphs. Strong
	// connectivity is a directed notion; in arc form every undirected edge
	// would be a two-cycle gluing its endpoints together.
	ErrUndirected = errors.New("scc: strongly connected components require a directed graph")
)

// Condensation is the component-level view of a digraph: every strongly
// connected component collapsed to one vertex.
type Condensation struct {
	// DAG has one vertex per component, indexed like Components, with
	// deduplicated directed arcs between distinct components. Component
	// order is reverse topological, so every arc points from a
	// higher-indexed vertex to a lower-indexed one.
	DAG *core.Graph

	// Components lists each component's members ascending, in the order
	// Tarjan emitted them.
	Components [][]int

	// Index maps every original vertex to its component's index.
	Index []int
}
