// Package builder: cycle generator.
//
// File: cycle.go
// Role: the cycle graph C_n.
// Determinism: edges emitted ascending, closing edge n-1→0 last.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

const minCycleVertices = 3

// Cycle returns the cycle graph C_n: vertices 0..n-1 in a ring.
// Directed builds orient the ring one way, 0→1→…→n-1→0, giving a single
// strongly connected component with exactly one cycle.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if n < minCycleVertices {
		return nil, fmt.Errorf("builder: cycle: n=%d (min %d): %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g := core.New(n, core.WithDirected(cfg.Directed))
	for v := 0; v < n; v++ {
		next := (v + 1) % n
		if err := g.AddEdge(v, next, cfg.Weight(v, next)); err != nil {
			return nil, fmt.Errorf("builder: cycle: edge %d-%d: %w", v, next, err)
		}
	}
	return g, nil
}
