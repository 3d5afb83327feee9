// Package floyd_warshall computes shortest paths between every ordered
// pair of vertices in one pass, and detects negative cycles anywhere in
// the graph.
//
// What
//
//   - FloydWarshall(g, opts...) returns a Result holding two flat
//     row-major n×n tables:
//   - distance: minimum cost per pair, Unreachable (MaxInt64) when no path
//   - successor: next hop per pair, for path recovery
//   - Result.At(i, j) reads one distance; Result.Dist() exposes the matrix
//     as row slices; Result.Order() reports n.
//   - Result.Path(i, j) reconstructs one cheapest i→j route by successor
//     hops, endpoints inclusive.
//   - Any negative-total-weight cycle aborts the run with ErrNegativeCycle;
//     no matrix is returned, because its entries would mean nothing.
//   - WithContext(ctx) cancels between intermediate-vertex layers.
//
// Why
//
// When every pair matters, n single-source runs pay the priority-queue tax
// n times over. Floyd-Warshall closes a dense matrix with three tight
// loops over one flat int64 buffer instead: no heap, no adjacency
// chasing, and negative weights are fine as long as no cycle goes
// negative. Use it for metric closures, transitive reachability with
// costs, or as the all-pairs oracle when validating single-source runs.
//
// Every cycle is inspected, reachable from anywhere or not: a negative
// cycle through vertex v leaves dist[v][v] below the zero seed, and the
// final diagonal scan turns that into a verdict. On undirected graphs each
// negative edge is the two-arc cycle u→v→u and is rejected the same way.
//
// Determinism
//
// The closure order is fixed (k → i → j) and initialization collapses
// parallel edges by minimum weight in catalog order, so both tables are
// reproducible for a fixed build sequence.
//
// Complexity: O(V³) time, O(V²) memory.
//
// Errors:
//
//	ErrGraphNil      - nil graph pointer
//	ErrNegativeCycle - some cycle has negative total weight
//	ErrNoPath        - Result.Path pair is disconnected
//	core.ErrVertexOutOfRange - wrapped by At/Path for invalid indices
package floyd_warshall
