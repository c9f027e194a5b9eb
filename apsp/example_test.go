// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/core"
)

// ExampleCompute prints the distance row of every station on a short line.
func ExampleCompute() {
	g, _ := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, core.WithWeighted())

	t, _ := apsp.Compute(context.Background(), g, apsp.WithWorkers(1))
	for s := 0; s < t.Len(); s++ {
		row, _ := t.Row(s)
		fmt.Println(s, row)
	}
	// Output:
	// 0 [0 2 5]
	// 1 [2 0 3]
	// 2 [5 3 0]
}

// ExampleSimulateClosure shows a pair disconnected by a closure.
func ExampleSimulateClosure() {
	g, _ := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, core.WithWeighted())

	r, _ := apsp.SimulateClosure(context.Background(), g, apsp.Closure{
		Pairs:      []core.Pair{{From: 1, To: 2}},
		Undirected: true,
	})
	fmt.Println("affected:", r.AffectedSources)
	fmt.Println("disconnected:", r.Disconnected)
	// Output:
	// affected: [0 1 2]
	// disconnected: 4
}
