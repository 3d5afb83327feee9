// Package scc finds the strongly connected components of a directed graph
// in one pass, and condenses the graph to its component DAG.
//
// What
//
//   - Tarjan(g) returns the components as [][]int: each component's
//     members ascending, components in reverse topological order of the
//     condensation. Every vertex appears in exactly one component.
//   - Condense(g) collapses each component to a vertex and returns a
//     Condensation: the component DAG (deduplicated arcs, minimum weight
//     per collapsed arc), the membership lists, and the vertex→component
//     index map.
//
// Why
//
// Strong connectivity answers "which vertices can reach each other both
// ways", the backbone question behind dependency clustering, deadlock
// candidates, and 2-SAT. Tarjan's low-link pass gets the full partition
// from a single DFS, no reversed graph and no second sweep, and its
// emission order is already a valid processing order: by the time a
// component appears, everything it depends on has appeared before it.
//
// The walk keeps its own frame stack instead of recursing, so a
// degenerate million-vertex path costs heap memory, not goroutine stack.
// Component members are sorted before emission purely for presentation;
// the partition itself does not depend on it.
//
// Determinism
//
// Discovery follows ascending roots and insertion-order arcs, making
// discovery indices, emission order, and the condensed DAG identical
// between runs on the same build sequence.
//
// Complexity: O(V + E) time plus member sorting, O(V + E) memory.
//
// Errors:
//
//	ErrGraphNil   - nil graph pointer
//	ErrUndirected - undirected or mixed graph
package scc
