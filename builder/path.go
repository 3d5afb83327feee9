// Package builder: path generator.
//
// File: path.go
// Role: the path graph P_n.
// Determinism: edges emitted ascending, 0-1 first.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

const minPathVertices = 2

// Path returns the path graph P_n: vertices 0..n-1 chained by n-1 edges.
// Directed builds orient every edge forward, 0→1→…→n-1, which makes the
// result a ready-made DAG for ordering tests.
func Path(n int, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if n < minPathVertices {
		return nil, fmt.Errorf("builder: path: n=%d (min %d): %w", n, minPathVertices, ErrTooFewVertices)
	}

	g := core.New(n, core.WithDirected(cfg.Directed))
	for v := 0; v+1 < n; v++ {
		if err := g.AddEdge(v, v+1, cfg.Weight(v, v+1)); err != nil {
			return nil, fmt.Errorf("builder: path: edge %d-%d: %w", v, v+1, err)
		}
	}
	return g, nil
}
