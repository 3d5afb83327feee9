package unionfind_test

import (
	"testing"

	"github.com/dkoslav/grath/unionfind"
)

// BenchmarkUnionFind_ChainedUnions measures n-1 unions over n elements,
// the exact access pattern of a Kruskal run on a connected graph.
func BenchmarkUnionFind_ChainedUnions(b *testing.B) {
	const n = 100000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := unionfind.New(n)
		for v := 0; v < n-1; v++ {
			_, _ = d.Union(v, v+1)
		}
	}
}

// BenchmarkUnionFind_FindAfterCompression measures Find on fully flattened
// trees.
func BenchmarkUnionFind_FindAfterCompression(b *testing.B) {
	const n = 100000

	d := unionfind.New(n)
	for v := 0; v < n-1; v++ {
		_, _ = d.Union(v, v+1)
	}
	// One full sweep to let path halving settle.
	for v := 0; v < n; v++ {
		_, _ = d.Find(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Find(i % n)
	}
}
