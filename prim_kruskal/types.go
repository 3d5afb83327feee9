// Package prim_kruskal defines result types, configuration options, and
// error definitions for minimum-spanning-tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/dkoslav/grath/core"
)

// Sentinel errors for spanning-tree construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrDirected is returned when the graph is directed or carries
	// per-edge directed overrides; spanning trees are defined on
	// undirected graphs only.
	ErrDirected = errors.New("prim_kruskal: spanning trees require an undirected graph")

	// ErrStartOutOfRange is returned by Prim when the start index lies
	// outside [0, n). It wraps core.ErrVertexOutOfRange.
	ErrStartOutOfRange = fmt.Errorf("prim_kruskal: start vertex %w", core.ErrVertexOutOfRange)

	// ErrNegativeWeight is returned by Prim when any edge carries a
	// negative weight. Kruskal has no such restriction.
	ErrNegativeWeight = errors.New("prim_kruskal: negative edge weight")

	// ErrUnknownMethod is returned by Compute for a Method outside
	// {MethodKruskal, MethodPrim}.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a start vertex, min-heap).
const MethodPrim = "prim"

// Forest is the outcome of Kruskal's algorithm: one minimum spanning tree
// per connected component.
type Forest struct {
	// Edges holds the accepted edges in acceptance order (ascending
	// weight, insertion order among equal weights).
	Edges []core.Edge

	// TotalWeight is the sum of all accepted edge weights.
	TotalWeight int64

	// Components counts the trees in the forest; 1 means the input was
	// connected and the forest is a single spanning tree.
	Components int
}

// Tree is the outcome of Prim's algorithm: the minimum spanning tree of
// the start vertex's connected component.
type Tree struct {
	// Edges holds the accepted edges in growth order, each oriented from
	// the tree side to the newly attached vertex.
	Edges []core.Edge

	// TotalWeight is the sum of all accepted edge weights.
	TotalWeight int64
}

// MSTOptions selects which algorithm Compute dispatches to, and for Prim,
// which vertex to grow from. Use DefaultOptions() for the Kruskal setup.
type MSTOptions struct {
	// Method is one of MethodKruskal or MethodPrim.
	Method string

	// Start is the growth vertex for Prim; ignored by Kruskal.
	Start int
}

// Option configures MSTOptions via functional arguments.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Compute runs.
func WithMethod(m string) Option {
	return func(o *MSTOptions) {
		o.Method = m
	}
}

// WithStart sets Prim's growth vertex. Kruskal ignores it.
func WithStart(start int) Option {
	return func(o *MSTOptions) {
		o.Start = start
	}
}

// DefaultOptions returns MSTOptions running Kruskal; Start is 0 so that
// switching to MethodPrim alone still names a valid vertex on any
// non-empty graph.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Start:  0,
	}
}

// Compute dispatches to Kruskal or Prim by MSTOptions.Method and unifies
// both outcomes as a Forest. A Prim tree comes back with Components == 1.
// Direct calls to Kruskal or Prim remain the primary API; Compute exists
// for callers that pick the algorithm at run time.
func Compute(g *core.Graph, opts ...Option) (*Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		tree, err := Prim(g, cfg.Start)
		if err != nil {
			return nil, err
		}

		return &Forest{Edges: tree.Edges, TotalWeight: tree.TotalWeight, Components: 1}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
