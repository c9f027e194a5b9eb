package bfs_test

import (
	"testing"

	"github.com/katalvlaran/tubepath/bfs"
	"github.com/katalvlaran/tubepath/internal/gen"
)

// BenchmarkBFS_Path measures BFS on a long chain.
func BenchmarkBFS_Path(b *testing.B) {
	g, err := gen.Path(10000)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS_Grid measures BFS on a 64×64 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := gen.Grid(64, 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, i%g.VertexCount()); err != nil {
			b.Fatal(err)
		}
	}
}
