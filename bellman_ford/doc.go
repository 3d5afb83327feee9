// Package bellman_ford computes single-source shortest paths on graphs
// that may carry negative edge weights, and detects negative cycles.
//
// What
//
//   - BellmanFord(g, source, opts...) returns a Result with:
//   - Dist: minimum cost per vertex, Unreachable (MaxInt64) when no path
//   - Parent: predecessor on one shortest path, -1 for source/unreached
//   - Result.PathTo(dest) reconstructs one cheapest source→dest route.
//   - A negative-total-weight cycle reachable from the source aborts the
//     run with ErrNegativeCycle; no distance array is returned, because
//     none exists.
//   - WithContext(ctx) cancels between relaxation passes.
//
// Why
//
// Dijkstra's greedy finalization breaks the moment one weight is negative.
// Bellman-Ford trades speed for generality: n-1 rounds of full-catalog
// relaxation provably converge for any weights, and a final detection round
// turns "it still improves" into a precise negative-cycle verdict. Use it
// for currency-arbitrage style graphs, or as the ground truth oracle when
// validating faster algorithms on non-negative inputs.
//
// On undirected graphs each edge relaxes in both directions, so any
// negative undirected edge is itself the cycle u→v→u and is rejected.
// A negative cycle the source cannot reach does not influence any distance
// and is deliberately not reported.
//
// Determinism
//
// Arcs relax in catalog insertion order (undirected edges both ways, back
// to back), each pass identical, so Dist and Parent are reproducible for a
// fixed build sequence.
//
// Complexity: O(V·E) time with early exit, O(V+E) memory.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer
//	ErrSourceOutOfRange - source outside [0, n); wraps core.ErrVertexOutOfRange
//	ErrNegativeCycle    - negative cycle reachable from the source
//	ErrNoPath           - Result.PathTo target was never reached
package bellman_ford
