// Package floyd_warshall_test verifies all-pairs distances, successor-table
// path recovery, negative-cycle detection, and agreement with dijkstra on
// shared inputs.
package floyd_warshall_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoslav/grath/core"
	"github.com/dkoslav/grath/dijkstra"
	"github.com/dkoslav/grath/floyd_warshall"
)

const inf = floyd_warshall.Unreachable

// buildChainWithShortcut returns a 4-vertex digraph where the direct arc
// 0→3 (weight 10) loses to the chain 0→1→2→3 (weight 9).
func buildChainWithShortcut(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(4, core.WithDirected(true))
	for _, a := range []struct {
		u, v int
		w    int64
	}{
		{0, 1, 5}, {0, 3, 10}, {1, 2, 3}, {2, 3, 1},
	} {
		require.NoError(t, g.AddEdge(a.u, a.v, a.w))
	}

	return g
}

func TestFloydWarshall_DirectedClosure(t *testing.T) {
	g := buildChainWithShortcut(t)

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)
	require.Equal(t, 4, res.Order())

	want := [][]int64{
		{0, 5, 8, 9},
		{inf, 0, 3, 4},
		{inf, inf, 0, 1},
		{inf, inf, inf, 0},
	}
	require.Equal(t, want, res.Dist())

	// The chain beats the direct arc, and the successor table knows it.
	path, err := res.Path(0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestFloydWarshall_UndirectedIsSymmetric(t *testing.T) {
	// Triangle where the direct 0-2 edge (7) loses to the detour via 1 (5).
	g := core.New(3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(0, 2, 7))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	want := [][]int64{
		{0, 2, 5},
		{2, 0, 3},
		{5, 3, 0},
	}
	require.Equal(t, want, res.Dist())

	path, err := res.Path(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)

	back, err := res.Path(2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, back)
}

func TestFloydWarshall_NegativeWeightsWithoutCycle(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, -2))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	d, err := res.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), d)

	path, err := res.Path(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestFloydWarshall_NegativeTriangleDetected(t *testing.T) {
	// 0→1→2→0 with total weight -1.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, -3))

	res, err := floyd_warshall.FloydWarshall(g)
	require.ErrorIs(t, err, floyd_warshall.ErrNegativeCycle)
	require.Nil(t, res)
}

func TestFloydWarshall_DetectsCycleAnywhere(t *testing.T) {
	// Unlike a single-source scan, the island cycle 2→3→4→2 is found even
	// though nothing connects it to vertices 0 and 1.
	g := core.New(5, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(2, 3, -2))
	require.NoError(t, g.AddEdge(3, 4, -2))
	require.NoError(t, g.AddEdge(4, 2, -2))

	_, err := floyd_warshall.FloydWarshall(g)
	require.ErrorIs(t, err, floyd_warshall.ErrNegativeCycle)
}

func TestFloydWarshall_UndirectedNegativeEdgeIsACycle(t *testing.T) {
	g := core.New(2)
	require.NoError(t, g.AddEdge(0, 1, -5))

	_, err := floyd_warshall.FloydWarshall(g)
	require.ErrorIs(t, err, floyd_warshall.ErrNegativeCycle)
}

func TestFloydWarshall_NegativeSelfLoopDetected(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 1, -4))

	_, err := floyd_warshall.FloydWarshall(g)
	require.ErrorIs(t, err, floyd_warshall.ErrNegativeCycle)
}

func TestFloydWarshall_PositiveSelfLoopIgnored(t *testing.T) {
	g := core.New(2, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 0, 9))
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	d, err := res.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), d)
}

func TestFloydWarshall_ParallelEdgesCollapseToMinimum(t *testing.T) {
	g := core.New(2, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 1, 7))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	d, err := res.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), d)
}

func TestFloydWarshall_MixedModeRespectsOrientation(t *testing.T) {
	// Undirected 0-1 plus a one-way 1→2: vertex 2 reaches nobody.
	g := core.New(3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddDirectedEdge(1, 2, 3))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	want := [][]int64{
		{0, 2, 5},
		{2, 0, 3},
		{inf, inf, 0},
	}
	require.Equal(t, want, res.Dist())
}

func TestFloydWarshall_DisconnectedPairs(t *testing.T) {
	g := core.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	d, err := res.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, inf, d)

	_, err = res.Path(0, 2)
	require.ErrorIs(t, err, floyd_warshall.ErrNoPath)

	// A vertex always reaches itself by the empty path.
	self, err := res.Path(2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, self)
}

func TestFloydWarshall_TrivialOrders(t *testing.T) {
	empty, err := floyd_warshall.FloydWarshall(core.New(0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.Order())
	require.Empty(t, empty.Dist())

	single, err := floyd_warshall.FloydWarshall(core.New(1))
	require.NoError(t, err)

	d, err := single.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, d)

	path, err := single.Path(0, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, err := floyd_warshall.FloydWarshall(nil)
	require.ErrorIs(t, err, floyd_warshall.ErrGraphNil)
}

func TestFloydWarshall_IndexValidation(t *testing.T) {
	res, err := floyd_warshall.FloydWarshall(core.New(2))
	require.NoError(t, err)

	_, err = res.At(-1, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = res.At(0, 2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = res.Path(2, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = res.Path(0, -1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestFloydWarshall_ContextCancellation(t *testing.T) {
	g := buildChainWithShortcut(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := floyd_warshall.FloydWarshall(g, floyd_warshall.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestFloydWarshall_AgreesWithDijkstra cross-checks every pair of the
// closed matrix against per-source dijkstra runs on random non-negative
// graphs, and re-runs the closure to confirm reproducibility.
func TestFloydWarshall_AgreesWithDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 5; trial++ {
		n := 12 + rng.Intn(8)
		directed := trial%2 == 0
		g := core.New(n, core.WithDirected(directed))
		for e := 0; e < 3*n; e++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			require.NoError(t, g.AddEdge(u, v, int64(rng.Intn(50))))
		}

		res, err := floyd_warshall.FloydWarshall(g)
		require.NoError(t, err)

		for src := 0; src < n; src++ {
			single, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			for dst := 0; dst < n; dst++ {
				d, err := res.At(src, dst)
				require.NoError(t, err)
				assert.Equal(t, single.Dist[dst], d,
					"trial=%d src=%d dst=%d", trial, src, dst)
			}
		}

		again, err := floyd_warshall.FloydWarshall(g)
		require.NoError(t, err)
		require.Equal(t, res.Dist(), again.Dist())
	}
}

// TestFloydWarshall_PathCostsMatchMatrix replays every recovered path edge
// by edge and confirms its total weight equals the matrix entry.
func TestFloydWarshall_PathCostsMatchMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 10
	g := core.New(n, core.WithDirected(true))
	for e := 0; e < 4*n; e++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, int64(1+rng.Intn(20))))
	}

	res, err := floyd_warshall.FloydWarshall(g)
	require.NoError(t, err)

	// Cheapest arc per ordered pair, for replaying path hops.
	cheapest := make(map[[2]int]int64)
	for _, e := range g.Arcs() {
		key := [2]int{e.From, e.To}
		w, ok := cheapest[key]
		if !ok || e.Weight < w {
			cheapest[key] = e.Weight
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, err := res.At(i, j)
			require.NoError(t, err)
			if d == inf {
				_, err := res.Path(i, j)
				require.ErrorIs(t, err, floyd_warshall.ErrNoPath)

				continue
			}

			path, err := res.Path(i, j)
			require.NoError(t, err)
			require.Equal(t, i, path[0])
			require.Equal(t, j, path[len(path)-1])

			var total int64
			for h := 0; h+1 < len(path); h++ {
				w, ok := cheapest[[2]int{path[h], path[h+1]}]
				require.True(t, ok, "path hop %d→%d is not an arc", path[h], path[h+1])
				total += w
			}
			assert.Equal(t, d, total, "pair %d→%d", i, j)
		}
	}
}
