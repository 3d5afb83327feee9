// Package dfs provides iterative depth-first search over a core.Graph,
// plus topological ordering and directed-cycle detection built on it.
//
// What
//
//   - DFS(g, start, opts...) walks one tree (or the whole forest with
//     WithFullTraversal) and returns a Result containing:
//   - Order: discovery (pre-order) sequence
//   - PostOrder: finish sequence
//   - Depth: per-vertex distance in arcs from its tree root, -1 unreached
//   - Parent: per-vertex discovery predecessor, -1 for roots/unreached
//   - Visited: reach flags
//   - TopologicalSort(g) orders a DAG by reverse DFS post-order.
//   - TopologicalKahn(g) orders a DAG by in-degree peeling; ties go to the
//     lowest vertex index, giving the lexicographically smallest order.
//   - FindCycle(g) returns one directed cycle as a closed vertex sequence.
//   - Hooks: OnVisit (pre-order, may abort), OnExit (post-order, may abort),
//     WithFilterNeighbor for skipping arcs, WithMaxDepth for bounded walks,
//     WithContext / WithCancelContext for cancellation.
//
// Why
//
// Depth-first order underlies dependency resolution, dead-code sweeps, and
// cycle diagnosis. The walk here never recurses: an explicit stack of
// {vertex, arc cursor} frames carries the state, so a million-vertex chain
// is as safe as a balanced tree.
//
// Determinism
//
// Arcs are examined in edge insertion order and forest roots in ascending
// index order, so every output sequence is reproducible for a fixed build
// sequence.
//
// Complexity: O(V+E) time for DFS/TopologicalSort/FindCycle,
// O(V log V + E) for TopologicalKahn; O(V) auxiliary memory for all.
//
// Errors:
//
//	ErrGraphNil        - nil graph pointer
//	ErrStartOutOfRange - start outside [0, n); wraps core.ErrVertexOutOfRange
//	ErrUndirected      - topological operation on an undirected graph
//	ErrCycleDetected   - cycle hit during TopologicalSort/TopologicalKahn
package dfs
