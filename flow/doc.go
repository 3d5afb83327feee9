// Package flow computes maximum source→sink flow and the matching
// minimum cut under three interchangeable solvers.
//
// What
//
//   - EdmondsKarp(g, s, t) augments along shortest residual paths,
//     O(V·E²). The safe default.
//   - Dinic(g, s, t) saturates BFS level graphs with blocking flows,
//     O(V²·E) in general and O(E·√V) on unit capacities. Prefer it on
//     dense or high-capacity networks.
//   - FordFulkerson(g, s, t) augments along any DFS path, O(E·F) for
//     total flow F. The simplest, and the baseline the other two are
//     checked against.
//
// All three return a Result holding the final residual network:
// Result.MinCut recovers the certified minimum cut (source-side vertex
// set plus the saturated crossing arcs) and Result.FlowOn reports the
// flow routed over any single vertex pair, both without re-solving.
//
// Why
//
// Edge weights are read as integral capacities, so flow conservation is
// exact: no epsilon tuning, and max-flow equals min-cut to the unit.
// Parallel arcs aggregate by summing, self-loops are dropped, and an
// undirected edge offers full capacity in both directions. The residual
// network stores each capacity as an arc pair (forward at even index,
// reverse twin one above), so pushing and undoing flow is index
// arithmetic instead of map lookups.
//
// Determinism
//
// Residual arcs are laid out in catalog first-encounter order and every
// search scans them ascending, so augmenting paths, the final MaxFlow
// breakdown and the MinCut certificate replay identically on the same
// build sequence.
//
// Complexity: per solver as listed above; memory O(V + E).
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer
//	ErrSourceOutOfRange - source outside [0, VertexCount)
//	ErrSinkOutOfRange   - sink outside [0, VertexCount)
//	ErrSourceIsSink     - source == sink
//	*CapacityError      - negative edge weight (errors.As)
package flow
