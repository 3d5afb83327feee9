// Package floyd_warshall implements the Floyd-Warshall all-pairs
// shortest-path algorithm on dense distance matrices.
//
// FloydWarshall computes the minimum cost between every ordered pair of
// vertices in one run. It closes a flat row-major n×n matrix over every
// intermediate vertex k in a fixed k→i→j loop order, relaxing each pair
// through k, and records a successor table alongside for path recovery.
//
// Complexity:
//
//   - Time:  O(V³) for the closure, O(V² + E) for initialization.
//   - Space: O(V²) for the distance and successor tables.
//
// Notes on implementation choices:
//
//   - Distances are int64 with Unreachable (MaxInt64) as the "no path"
//     value; relaxation skips any pair with an Unreachable operand, so the
//     sentinel never enters an addition.
//   - Parallel edges collapse to their minimum weight during
//     initialization; a self-loop can only lower the zero diagonal seed,
//     so a negative self-loop is caught as a negative cycle.
//   - Negative cycles surface as negative diagonal entries after the
//     closure. The run then fails with ErrNegativeCycle instead of
//     returning a matrix whose values mean nothing. Unlike a single-source
//     scan, every negative cycle in the graph is found, reachable or not.
package floyd_warshall

import (
	"fmt"

	"github.com/dkoslav/grath/core"
)

// FloydWarshall computes shortest distances between all vertex pairs of g.
//
// Directionality follows the graph: undirected edges contribute mirrored
// arcs, so the closed matrix of an undirected graph is symmetric. Any
// negative edge of an undirected graph forms the two-arc cycle u→v→u and
// is therefore reported as a negative cycle.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. After the closure, the diagonal must be non-negative
//     (ErrNegativeCycle otherwise).
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Seed the distance and successor tables from the arc catalog.
	res := initTables(g)

	// 4) Close the matrix over every intermediate vertex.
	if err := closure(cfg, res); err != nil {
		return nil, err
	}

	// 5) A negative diagonal entry proves a cycle whose total weight is
	// negative through that vertex; the matrix is withheld.
	n := res.n
	for v := 0; v < n; v++ {
		if d := res.dist[v*n+v]; d < 0 {
			return nil, fmt.Errorf("%w: vertex %d closes a cycle of weight %d", ErrNegativeCycle, v, d)
		}
	}

	return res, nil
}

// initTables allocates the n×n tables and seeds them: Unreachable/-1
// everywhere, zero/self on the diagonal, then one pass over the flattened
// arc view keeping the minimum weight per ordered pair.
func initTables(g *core.Graph) *Result {
	n := g.VertexCount()
	res := &Result{
		n:    n,
		dist: make([]int64, n*n),
		next: make([]int, n*n),
	}

	for i := range res.dist {
		res.dist[i] = Unreachable
		res.next[i] = -1
	}
	for v := 0; v < n; v++ {
		res.dist[v*n+v] = 0
		res.next[v*n+v] = v
	}

	// Arcs lists both directions of every undirected edge, so one pass
	// covers the whole adjacency. Self-loop arcs compete against the zero
	// diagonal and win only when negative.
	var idx int
	for _, e := range g.Arcs() {
		idx = e.From*n + e.To
		if e.Weight < res.dist[idx] {
			res.dist[idx] = e.Weight
			res.next[idx] = e.To
		}
	}

	return res
}

// closure runs the triple relaxation loop in place on the Result tables.
// Loop order is fixed (k → i → j) so repeated runs accumulate identically.
// The context is consulted once per k, between O(n²) layers.
func closure(cfg Options, res *Result) error {
	n := res.n

	// Hoist loop state; the hot loops allocate nothing.
	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row offsets of k and i in the flat buffers
		ik, kj, cand int64 // dist[i,k], dist[k,j], and their sum
	)

	dist, next := res.dist, res.next
	for k = 0; k < n; k++ {
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		baseK = k * n
		for i = 0; i < n; i++ {
			ik = dist[i*n+k]
			if ik == Unreachable {
				// i cannot reach k, so no pair improves via k.
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}

	return nil
}
