// Package unionfind provides a disjoint-set (union-find) structure over the
// dense element range 0..n-1.
//
// What
//
//   - New(n) starts from n singleton sets.
//   - Find(x) returns the canonical representative of x's set.
//   - Union(x, y) merges two sets and reports whether anything changed.
//   - Connected(x, y) tests membership in one call.
//   - SetSize(x) returns how many elements share x's set.
//   - Count() tracks how many sets remain; with graph vertices as elements
//     this equals the number of connected components after all edges are
//     unioned.
//
// Why
//
// Kruskal's spanning-forest construction needs an "are these endpoints
// already connected" test that stays near O(1) across E queries. Union by
// rank bounds tree height while path halving flattens the trees on every
// Find, giving the classic O(α(n)) amortized cost per operation, where α is
// the inverse Ackermann function (≤ 4 for any feasible n).
//
// The structure is deliberately lock-free: instances are created per
// computation and never shared, matching how every algorithm package here
// keeps its auxiliary state.
//
// Determinism
//
// Union applies a fixed tie rule (equal ranks: second root under first), so
// identical call sequences always produce identical forests and identical
// representatives.
//
// Complexity: Find/Union/Connected/SetSize O(α(n)) amortized; Count/Len
// O(1). Memory: O(n).
//
// Errors:
//
//	ErrIndexOutOfRange - index outside [0, n); surfaced immediately, never clamped
package unionfind
