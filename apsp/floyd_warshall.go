// SPDX-License-Identifier: MIT
// Purpose:
//   - Dense APSP (Floyd–Warshall) over a core.Graph with deterministic loop order.
//   - Used as an independent cross-check of the per-source solvers.
//
// Contract:
//   - +Inf means "no path"; the diagonal starts at 0.
//   - Parallel arcs keep the cheapest weight; a negative self-loop seeds a
//     negative diagonal entry.
//   - Sources that reach a vertex on a negative cycle are invalid (NaN row),
//     matching the Bellman-Ford notion of "reachable negative cycle".

package apsp

import (
	"math"

	"github.com/katalvlaran/tubepath/core"
)

// FloydWarshall computes the all-pairs table in O(V³) time and O(V²) memory.
func FloydWarshall(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	t := newTable(n, SolverFloydWarshall)
	initDistances(t, g)
	floydWarshallInPlace(t.dist, n)
	markNegativeCycles(t)

	return t, nil
}

// initDistances fills diag = 0, arcs = min weight, everything else = +Inf.
func initDistances(t *Table, g *core.Graph) {
	n := t.n
	inf := math.Inf(1)
	for i := range t.dist {
		t.dist[i] = inf
	}
	for i := 0; i < n; i++ {
		t.dist[i*n+i] = 0
	}
	var idx int
	for _, e := range g.Edges() {
		idx = e.From*n + e.To
		if e.Weight < t.dist[idx] {
			t.dist[idx] = e.Weight
		}
	}
}

// floydWarshallInPlace relaxes d through every intermediate k, in k → i → j
// order, with strict improvement only.
func floydWarshallInPlace(data []float64, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// markNegativeCycles invalidates every source that reaches a vertex k with
// dist(k, k) < 0.
func markNegativeCycles(t *Table) {
	n := t.n
	var onCycle []int
	for k := 0; k < n; k++ {
		if t.dist[k*n+k] < 0 {
			onCycle = append(onCycle, k)
		}
	}
	if len(onCycle) == 0 {
		return
	}
	bad := make([]bool, n)
	for s := 0; s < n; s++ {
		for _, k := range onCycle {
			if !math.IsInf(t.dist[s*n+k], 1) {
				bad[s] = true
				break
			}
		}
	}
	for s := range bad {
		if bad[s] {
			t.markInvalid(s)
		}
	}
}
