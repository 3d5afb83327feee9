// Package builder: edge weight policies.
//
// File: weight_fn.go
// Role: the WeightFn contract plus the stock unit and seeded policies.
// Determinism: SeededWeights hashes (seed, u, v), so a weight depends
//              only on the endpoints, never on emission order.
// Concurrency: weight functions are pure; safe to share.
package builder

// WeightFn assigns the weight of the edge u-v (or arc u→v) at emission
// time. Implementations must be pure: the same endpoints always yield
// the same weight.
type WeightFn func(u, v int) int64

// UnitWeight assigns weight 1 to every edge. The default policy, which
// makes hop counts and weighted distances coincide.
func UnitWeight(_, _ int) int64 { return 1 }

// SeededWeights returns a pure WeightFn drawing from [lo, hi] by mixing
// the seed with both endpoints. If hi < lo the range collapses to lo.
// Mirrored arcs reuse the forward weight, so SeededWeights is safe for
// the symmetric generators too.
func SeededWeights(seed, lo, hi int64) WeightFn {
	if hi < lo {
		hi = lo
	}
	span := uint64(hi-lo) + 1
	return func(u, v int) int64 {
		// splitmix64 finalizer over a seed/endpoint blend
		x := uint64(seed) ^ (uint64(u)*0x9E3779B97F4A7C15 + uint64(v))
		x ^= x >> 30
		x *= 0xBF58476D1CE4E5B9
		x ^= x >> 27
		x *= 0x94D049BB133111EB
		x ^= x >> 31
		return lo + int64(x%span)
	}
}
