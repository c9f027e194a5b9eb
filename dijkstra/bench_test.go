package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/tubepath/dijkstra"
	"github.com/katalvlaran/tubepath/internal/gen"
)

// BenchmarkDijkstra_Grid measures a single-source run on a 32×32 grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	g, err := gen.Grid(32, 32, gen.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dijkstra.Dijkstra(g, i%g.VertexCount()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_RandomSparse measures a run on a sparse random network.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	g, err := gen.RandomSparse(1000, 0.005, gen.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
