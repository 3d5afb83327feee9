// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start
//     vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: per-vertex distance in arcs from start, -1 when unreached
//   - Parent: per-vertex predecessor in the BFS tree, -1 for root/unreached
//   - Result.PathTo(dest) reconstructs the start→dest path from Parent.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex joins the queue)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping individual arcs via WithFilterNeighbor.
//   - Honors a depth limit (WithMaxDepth) and context cancellation
//     (WithContext).
//   - Works on directed, undirected, and mixed graphs; weights are ignored.
//
// Why
//
// BFS is the layer-by-layer workhorse: unweighted shortest paths,
// reachability, connected components, and the augmenting-path search inside
// Edmonds-Karp all reduce to it. Keeping distances and parents in dense
// slices makes a run allocation-light and the output directly indexable.
//
// Determinism
//
// Neighbors are expanded in edge insertion order, so Order, Dist, and
// Parent are identical run to run for the same build sequence.
//
// Complexity: O(V+E) time, O(V) auxiliary memory.
//
// Errors:
//
//	ErrGraphNil        - nil graph pointer
//	ErrStartOutOfRange - start outside [0, n); wraps core.ErrVertexOutOfRange
//	ErrOptionViolation - invalid option value (negative MaxDepth)
//	ErrNoPath          - Result.PathTo target was never reached
package bfs
