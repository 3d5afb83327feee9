// Package builder: complete graph generator.
//
// File: complete.go
// Role: the complete graph K_n.
// Determinism: unordered pairs emitted in lexicographic order, i < j.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

const minCompleteVertices = 1

// Complete returns the complete graph K_n: every unordered pair joined.
// Directed builds mirror each pair into both arcs with the same weight,
// keeping the neighborhood symmetric.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if n < minCompleteVertices {
		return nil, fmt.Errorf("builder: complete: n=%d (min %d): %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	g := core.New(n, core.WithDirected(cfg.Directed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := cfg.Weight(i, j)
			if err := g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("builder: complete: edge %d-%d: %w", i, j, err)
			}
			if cfg.Directed {
				if err := g.AddEdge(j, i, w); err != nil {
					return nil, fmt.Errorf("builder: complete: edge %d-%d: %w", j, i, err)
				}
			}
		}
	}
	return g, nil
}
