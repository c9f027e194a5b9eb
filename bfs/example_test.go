package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tubepath/bfs"
	"github.com/katalvlaran/tubepath/core"
)

// ExampleShortestPath counts stops on a small line.
func ExampleShortestPath() {
	g, _ := core.NewGraph(4)
	_ = g.InsertEdge(0, 1, 0)
	_ = g.InsertEdge(1, 2, 0)
	_ = g.InsertEdge(2, 3, 0)

	q, _ := bfs.ShortestPath(g, 0, 3)
	fmt.Println(q.Path, q.Distance)
	// Output: [0 1 2 3] 3
}
