// Package builder: seeded sparse graph generator.
//
// File: random_sparse.go
// Role: connected pseudo-random fixture graphs.
// Determinism: one rand.Rand per call seeded by the caller; fixed
//              backbone order then fixed sampling order.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/dkoslav/grath/core"
)

const minSparseVertices = 1

// RandomSparse returns a connected pseudo-random graph on n vertices:
// the chain backbone 0-1-…-n-1 guarantees connectivity, then m extra
// distinct edges are sampled with the seeded generator. Self-loops and
// duplicates are never emitted. Directed builds orient the backbone
// forward and sample ordered pairs, so reverse arcs count as distinct.
//
// m must lie within the remaining simple-graph capacity, otherwise
// ErrEdgeCountOutOfRange. Sampling rejects collisions, so the generator
// is meant for sparse fixtures; cost grows as m approaches capacity.
func RandomSparse(n, m int, seed int64, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if n < minSparseVertices {
		return nil, fmt.Errorf("builder: random sparse: n=%d (min %d): %w",
			n, minSparseVertices, ErrTooFewVertices)
	}
	free := pairCapacity(n, cfg.Directed) - (n - 1)
	if m < 0 || m > free {
		return nil, fmt.Errorf("builder: random sparse: m=%d (capacity %d): %w",
			m, free, ErrEdgeCountOutOfRange)
	}

	// 1) Backbone in index order; its pairs seed the dedup set.
	g := core.New(n, core.WithDirected(cfg.Directed))
	used := make(map[int]bool, n-1+m)
	for v := 0; v+1 < n; v++ {
		used[v*n+v+1] = true
		if err := g.AddEdge(v, v+1, cfg.Weight(v, v+1)); err != nil {
			return nil, fmt.Errorf("builder: random sparse: edge %d-%d: %w", v, v+1, err)
		}
	}

	// 2) Rejection-sample the extras; undirected pairs normalize u < v.
	rng := rand.New(rand.NewSource(seed))
	for added := 0; added < m; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if !cfg.Directed && u > v {
			u, v = v, u
		}
		key := u*n + v
		if used[key] {
			continue
		}
		used[key] = true
		if err := g.AddEdge(u, v, cfg.Weight(u, v)); err != nil {
			return nil, fmt.Errorf("builder: random sparse: edge %d-%d: %w", u, v, err)
		}
		added++
	}
	return g, nil
}

// pairCapacity counts the distinct non-loop vertex pairs an n-vertex
// simple graph can hold.
func pairCapacity(n int, directed bool) int {
	if directed {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}
