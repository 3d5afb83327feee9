// Package prim_kruskal builds minimum spanning trees of undirected
// weighted graphs with two classic algorithms, plus a method dispatcher.
//
// What
//
//   - Kruskal(g) returns a Forest: the minimum spanning tree of every
//     connected component, with Edges (acceptance order), TotalWeight,
//     and the Components count. Disconnected input is answered, not
//     rejected; Components == 1 certifies a single spanning tree.
//   - Prim(g, start) returns a Tree spanning start's component, with
//     Edges in growth order and TotalWeight.
//   - Compute(g, WithMethod(...), WithStart(...)) picks the algorithm at
//     run time and unifies both outcomes as a Forest.
//
// Why
//
// The two algorithms trade differently. Kruskal pays one global sort,
// then union-find makes every accept/reject decision near-constant; it
// handles disconnected graphs for free and never looks at adjacency.
// Prim never sorts: it grows a single tree through a frontier heap, which
// wins when one component around a known root is all that matters. On a
// connected graph both produce the same TotalWeight, possibly through
// different edges when weights tie.
//
// Kruskal accepts negative weights, since ordering is all it needs. Prim
// rejects them up front with ErrNegativeWeight, keeping its frontier
// invariant honest. Both demand a purely undirected graph and skip
// self-loops, which can never join two components.
//
// Determinism
//
// Kruskal stable-sorts the insertion-order catalog, so equal weights keep
// their build order. Prim's heap breaks weight ties by push sequence,
// itself fixed by adjacency order. Repeated runs return identical trees.
//
// Complexity: Kruskal O(E log E + E·α(V)), Prim O(E log E); both O(V+E)
// memory.
//
// Errors:
//
//	ErrGraphNil        - nil graph pointer
//	ErrDirected        - directed graph or per-edge directed overrides
//	ErrStartOutOfRange - Prim start outside [0, n); wraps core.ErrVertexOutOfRange
//	ErrNegativeWeight  - Prim found a negative edge weight
//	ErrUnknownMethod   - Compute got a Method it does not know
package prim_kruskal
