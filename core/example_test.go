// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/tubepath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, weighted graph with three stations:
	g, _ := core.NewGraph(3, core.WithWeighted())

	// 2) Add track segments (travel minutes):
	_ = g.InsertEdge(0, 1, 2)
	_ = g.InsertEdge(1, 2, 3)

	// 3) Undirected edges are visible from both ends:
	fmt.Println("1→0 exists?", g.HasEdge(1, 0))
	nbs, _ := g.Neighbors(1)
	fmt.Println("neighbors of 1:", nbs)

	// 4) Close a segment; closing it again is harmless:
	_ = g.DeleteEdge(0, 1, true)
	_ = g.DeleteEdge(0, 1, true)
	fmt.Println("0→1 exists?", g.HasEdge(0, 1), "edges:", g.EdgeCount())

	// Output:
	// 1→0 exists? true
	// neighbors of 1: [{0 2} {2 3}]
	// 0→1 exists? false edges: 1
}

// ExampleGraph_Clone shows the pre/post closure snapshot pattern.
func ExampleGraph_Clone() {
	g, _ := core.NewGraph(2, core.WithDirected(true))
	_ = g.InsertEdge(0, 1, 0)

	post := g.Clone()
	_ = post.DeleteEdge(0, 1, false)

	fmt.Println(g.HasEdge(0, 1), post.HasEdge(0, 1))
	// Output: true false
}
