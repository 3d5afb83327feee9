// Package builder: star generator.
//
// File: star.go
// Role: the star graph S_n with hub 0.
// Determinism: spokes emitted by ascending leaf index.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

const minStarVertices = 2

// Star returns the star graph on n vertices: hub 0 joined to every leaf
// 1..n-1. Directed builds mirror each spoke into both arcs with the same
// weight, so the hub both feeds and drains the leaves.
func Star(n int, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if n < minStarVertices {
		return nil, fmt.Errorf("builder: star: n=%d (min %d): %w", n, minStarVertices, ErrTooFewVertices)
	}

	g := core.New(n, core.WithDirected(cfg.Directed))
	for leaf := 1; leaf < n; leaf++ {
		w := cfg.Weight(0, leaf)
		if err := g.AddEdge(0, leaf, w); err != nil {
			return nil, fmt.Errorf("builder: star: edge 0-%d: %w", leaf, err)
		}
		if cfg.Directed {
			if err := g.AddEdge(leaf, 0, w); err != nil {
				return nil, fmt.Errorf("builder: star: edge %d-0: %w", leaf, err)
			}
		}
	}
	return g, nil
}
