// Package builder generates the standard graph families as ready-to-use
// core graphs, deterministically.
//
// What
//
//   - Path(n), Cycle(n), Complete(n), Star(n): the textbook topologies
//     over dense indices 0..n-1.
//   - Grid(rows, cols): the orthogonal 4-neighborhood grid, cell (r, c)
//     at vertex r*cols + c.
//   - RandomSparse(n, m, seed): a connected seeded fixture, chain
//     backbone plus m distinct extra edges.
//
// Every generator accepts WithDirected and WithWeightFn; weights default
// to 1 via UnitWeight, and SeededWeights(seed, lo, hi) derives a pure
// per-edge weight from the endpoints alone.
//
// Why
//
// Tests, benchmarks and examples keep rebuilding the same families by
// hand; one generator per family removes the copy-paste and pins the
// exact vertex numbering and edge order in a single documented place.
// Emission order is part of the contract: identical inputs produce
// byte-identical graphs, so anything derived from builder output (walk
// orders, heap behavior, sampled weights) replays exactly.
//
// Determinism
//
// Path and Cycle emit ascending edges; Complete emits lexicographic
// pairs; Star emits spokes by leaf index; Grid scans row-major linking
// right then down; RandomSparse consumes a caller-seeded rand.Rand in a
// fixed sampling order. Directed Complete, Star and Grid mirror each
// adjacency into both arcs with one shared weight; directed Path and
// Cycle stay one-way.
//
// Errors:
//
//	ErrTooFewVertices      - size below the family minimum
//	ErrEdgeCountOutOfRange - RandomSparse m negative or past capacity
package builder
