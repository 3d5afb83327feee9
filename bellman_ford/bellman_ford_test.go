// Package bellman_ford_test verifies negative-weight shortest paths,
// negative-cycle detection, and agreement with dijkstra on shared inputs.
package bellman_ford_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoslav/grath/bellman_ford"
	"github.com/dkoslav/grath/core"
	"github.com/dkoslav/grath/dijkstra"
)

// buildTextbook returns the classic 5-vertex negative-weight example whose
// distances from 0 are [0 2 7 4 -2].
func buildTextbook(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(5, core.WithDirected(true))
	for _, a := range []struct {
		u, v int
		w    int64
	}{
		{0, 1, 6}, {0, 2, 7}, {1, 2, 8}, {1, 3, 5}, {1, 4, -4},
		{2, 3, -3}, {2, 4, 9}, {3, 1, -2}, {4, 0, 2}, {4, 3, 7},
	} {
		require.NoError(t, g.AddEdge(a.u, a.v, a.w))
	}

	return g
}

func TestBellmanFord_TextbookNegativeWeights(t *testing.T) {
	g := buildTextbook(t)

	res, err := bellman_ford.BellmanFord(g, 0)
	require.NoError(t, err)

	require.Equal(t, []int64{0, 2, 7, 4, -2}, res.Dist)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 1, 4}, path)
}

func TestBellmanFord_NegativeTriangleDetected(t *testing.T) {
	// 0→1→2→0 with total weight -1.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(2, 0, 1))

	_, err := bellman_ford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellman_ford.ErrNegativeCycle)
}

func TestBellmanFord_UndirectedNegativeEdgeIsACycle(t *testing.T) {
	// The mirror arcs u→v→u bounce forever on any negative undirected edge.
	g := core.New(2)
	require.NoError(t, g.AddEdge(0, 1, -5))

	_, err := bellman_ford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellman_ford.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	g := core.New(5, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 3))
	// Negative cycle 2→3→4→2 lives in an island the source never reaches.
	require.NoError(t, g.AddEdge(2, 3, -2))
	require.NoError(t, g.AddEdge(3, 4, -2))
	require.NoError(t, g.AddEdge(4, 2, -2))

	res, err := bellman_ford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 3,
		bellman_ford.Unreachable, bellman_ford.Unreachable, bellman_ford.Unreachable}, res.Dist)
}

func TestBellmanFord_InvalidInput(t *testing.T) {
	_, err := bellman_ford.BellmanFord(nil, 0)
	require.ErrorIs(t, err, bellman_ford.ErrGraphNil)

	g := core.New(2)
	_, err = bellman_ford.BellmanFord(g, 5)
	require.ErrorIs(t, err, bellman_ford.ErrSourceOutOfRange)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = bellman_ford.BellmanFord(g, -1)
	require.ErrorIs(t, err, bellman_ford.ErrSourceOutOfRange)
}

func TestBellmanFord_Cancellation(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bellman_ford.BellmanFord(g, 0, bellman_ford.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBellmanFord_ZeroWeightCycleIsFine(t *testing.T) {
	// A zero-total cycle never improves anything; it must not be flagged.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, -2))
	require.NoError(t, g.AddEdge(2, 0, 0))

	res, err := bellman_ford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 0}, res.Dist)
}

func TestBellmanFord_MatchesDijkstraOnNonNegative(t *testing.T) {
	// On non-negative weights the two engines must agree exactly on every
	// distance, for several random sparse graphs.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		const n = 60

		g := core.New(n, core.WithDirected(trial%2 == 0))
		for i := 0; i < 3*n; i++ {
			require.NoError(t, g.AddEdge(rng.Intn(n), rng.Intn(n), int64(rng.Intn(50))))
		}

		slow, err := bellman_ford.BellmanFord(g, 0)
		require.NoError(t, err)
		fast, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)

		for v := 0; v < n; v++ {
			if slow.Dist[v] == bellman_ford.Unreachable {
				assert.Equal(t, dijkstra.Unreachable, fast.Dist[v], "vertex %d reachability", v)

				continue
			}
			assert.Equal(t, slow.Dist[v], fast.Dist[v], "vertex %d distance, trial %d", v, trial)
		}
	}
}

func TestBellmanFord_SelfLoops(t *testing.T) {
	g := core.New(2, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 0, 5)) // positive self-loop: harmless
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := bellman_ford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, res.Dist)

	// A negative self-loop is a one-arc negative cycle.
	require.NoError(t, g.AddEdge(1, 1, -1))
	_, err = bellman_ford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellman_ford.ErrNegativeCycle)
}
