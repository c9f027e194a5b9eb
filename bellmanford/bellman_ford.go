// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/shortest"
)

// BellmanFord computes shortest distances and predecessors from source,
// tolerating negative weights and detecting negative cycles reachable from
// source.
//
// Returns:
//
//   - res.Valid == true:  Dist and Prev are exact shortest-path data.
//   - res.Valid == false: a negative cycle is reachable from source; Dist and
//     Prev only say that some walk exists. res.Cycle holds one such cycle and
//     res.Err() returns ErrNegativeCycle. The error return stays nil so batch
//     callers can flag this source and move on.
//
// Errors: ErrNilGraph, ErrVertexOutOfRange.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; O(k·E) with EarlyExit after k productive passes.
//   - Space: O(V + E) for the arc snapshot and result slices.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, source)
	}

	// 3) Snapshot arcs once; undirected edges appear in both directions.
	n := g.VertexCount()
	edges := g.Edges()
	res := shortest.NewResult(source, n)

	// 4) V−1 relaxation passes.
	for pass := 1; pass < n; pass++ {
		if !relaxAll(edges, res) && cfg.EarlyExit {
			break
		}
	}

	// 5) One extra pass: anything still relaxable proves a negative cycle.
	var e core.Edge
	for _, e = range edges {
		if !canRelax(res.Dist, e) {
			continue
		}
		res.Valid = false
		if cfg.FindCycle {
			res.Prev[e.To] = e.From
			res.Cycle = extractCycle(res.Prev, e.To)
		}
		break
	}

	return res, nil
}

// ShortestPath answers shortest_path(source, target). Unlike BellmanFord, a
// negative cycle is returned as ErrNegativeCycle: a single query has no
// meaningful answer in that case.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (shortest.Query, error) {
	if g != nil && !g.HasVertex(target) {
		return shortest.Query{}, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, target)
	}
	res, err := BellmanFord(g, source, opts...)
	if err != nil {
		return shortest.Query{}, err
	}
	if err = res.Err(); err != nil {
		return shortest.Query{}, err
	}

	return shortest.QueryOf(res, target)
}

// relaxAll runs one pass over every arc and reports whether anything changed.
func relaxAll(edges []core.Edge, res *shortest.Result) bool {
	changed := false
	var e core.Edge
	for _, e = range edges {
		if !canRelax(res.Dist, e) {
			continue
		}
		res.Dist[e.To] = res.Dist[e.From] + e.Weight
		res.Prev[e.To] = e.From
		changed = true
	}

	return changed
}

// canRelax reports whether dist[from] is finite and dist[from]+w < dist[to].
func canRelax(dist []float64, e core.Edge) bool {
	du := dist[e.From]
	if math.IsInf(du, 1) {
		return false
	}

	return du+e.Weight < dist[e.To]
}

// extractCycle walks V predecessors back from v, which is guaranteed to land
// on the negative cycle, then follows the cycle once. The cycle is returned in
// travel order as a closed walk (first == last). nil if the table is broken.
func extractCycle(prev []int, v int) []int {
	n := len(prev)
	x := v
	for i := 0; i < n; i++ {
		x = prev[x]
		if x == shortest.None {
			return nil
		}
	}

	cycle := []int{x}
	for y := prev[x]; y != x; y = prev[y] {
		if y == shortest.None || len(cycle) > n {
			return nil
		}
		cycle = append(cycle, y)
	}
	cycle = append(cycle, x)
	slices.Reverse(cycle)

	return cycle
}
