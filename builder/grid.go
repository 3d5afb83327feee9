// Package builder: grid generator.
//
// File: grid.go
// Role: the rows×cols orthogonal grid with 4-neighborhood.
// Determinism: cells scanned row-major; each cell links right then down.
// Concurrency: builds a fresh graph per call.
package builder

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

const minGridDim = 1

// Grid returns the rows×cols orthogonal grid. Cell (r, c) maps to vertex
// r*cols + c; each cell connects to its right and bottom neighbors where
// they exist, giving the 4-neighborhood. Directed builds mirror every
// adjacency into both arcs with the same weight, so grid walks behave
// identically in either mode.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	cfg := apply(opts)
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("builder: grid: rows=%d, cols=%d (min %d each): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}

	g := core.New(rows*cols, core.WithDirected(cfg.Directed))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err := link(g, cfg, u, u+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(g, cfg, u, u+cols); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// link emits u-v, plus the mirror arc on directed builds.
func link(g *core.Graph, cfg Options, u, v int) error {
	w := cfg.Weight(u, v)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("builder: grid: edge %d-%d: %w", u, v, err)
	}
	if cfg.Directed {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("builder: grid: edge %d-%d: %w", v, u, err)
		}
	}
	return nil
}
