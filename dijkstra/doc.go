// Package dijkstra computes single-source shortest paths on graphs whose
// edge weights are all non-negative.
//
// What
//
//   - Dijkstra(g, source, opts...) returns a Result with:
//   - Dist: minimum cost per vertex, Unreachable (MaxInt64) when no path
//   - Parent: predecessor on one shortest path, -1 for source/unreached
//   - Result.PathTo(dest) reconstructs one cheapest start→dest route.
//   - WithMaxDistance(x) prunes everything farther than x from the source,
//     turning the run into a cost-bounded neighborhood query.
//
// Why
//
// For non-negative weights, greedy finalization by increasing distance is
// both correct and fast: O((V+E) log V) beats Bellman-Ford's O(V·E) by
// orders of magnitude on sparse graphs. When weights can be negative, use
// the bellman_ford package instead; this one refuses such inputs up front
// with ErrNegativeWeight rather than silently producing wrong distances.
//
// The priority queue is a container/heap min-heap with lazy decrease-key:
// a better distance pushes a duplicate entry, and stale entries are skipped
// on pop. This trades a slightly larger heap for the simplicity of never
// reaching into the heap's middle.
//
// Determinism
//
// Arcs relax in edge insertion order and only strict improvements update
// state, so Dist and Parent are reproducible for a fixed build sequence.
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer
//	ErrSourceOutOfRange - source outside [0, n); wraps core.ErrVertexOutOfRange
//	ErrNegativeWeight   - some edge weight < 0 anywhere in the graph
//	ErrOptionViolation  - invalid option value (negative MaxDistance)
//	ErrNoPath           - Result.PathTo target was never reached
package dijkstra
