package floyd_warshall_test

import (
	"math/rand"
	"testing"

	"github.com/dkoslav/grath/core"
	"github.com/dkoslav/grath/floyd_warshall"
)

// BenchmarkFloydWarshall_Dense measures the cubic closure on a complete
// digraph, the layout the flat-buffer loops are tuned for.
func BenchmarkFloydWarshall_Dense(b *testing.B) {
	const n = 96

	rng := rand.New(rand.NewSource(17))
	g := core.New(n, core.WithDirected(true))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			_ = g.AddEdge(u, v, int64(rng.Intn(1000)))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floyd_warshall.FloydWarshall(g)
	}
}

// BenchmarkFloydWarshall_PathRecovery measures successor-table walking on
// the longest possible recovered route, a full-length chain.
func BenchmarkFloydWarshall_PathRecovery(b *testing.B) {
	const n = 512

	g := core.New(n, core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	res, err := floyd_warshall.FloydWarshall(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = res.Path(0, n-1)
	}
}
