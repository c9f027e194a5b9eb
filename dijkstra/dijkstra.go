// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on
// integer-indexed core graphs with non-negative edge weights.
//
// Notes on implementation choices:
//
//   - The priority queue is an indexed binary heap (yagh): one entry per
//     vertex, relaxations are insert-or-decrease-key, so there are no stale
//     entries to skip.
//   - The adjacency is snapshotted once per run; Neighbors order (insertion
//     order) drives relaxation order, so ties resolve identically on every run.
//   - Negative weights are detected on the edges actually relaxed: a negative
//     edge that is unreachable from the source does not fail the run.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Arcs that would lead beyond MaxDistance are never relaxed.
package dijkstra

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/shortest"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g.
//
// Returns:
//
//   - res.Dist[v]: minimum distance, shortest.Infinity if unreachable.
//   - res.Prev[v]: predecessor of v on one shortest path, shortest.None for the
//     source and unreachable vertices.
//   - res.Valid:   always true (Dijkstra does not detect negative cycles).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a vertex of g (ErrVertexOutOfRange).
//  3. No edge reachable from source may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
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

	// 3) Initialize runner state and run the main loop.
	n := g.VertexCount()
	r := &runner{
		adj:     g.Adjacency(),
		options: cfg,
		res:     shortest.NewResult(source, n),
		pq:      yagh.New[float64](n),
	}
	r.pq.Put(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath answers shortest_path(source, target): the vertex sequence and
// its cost, or a Query with a nil Path and infinite Distance when target is
// unreachable.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (shortest.Query, error) {
	if g != nil && !g.HasVertex(target) {
		return shortest.Query{}, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, target)
	}
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return shortest.Query{}, err
	}

	return shortest.QueryOf(res, target)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]core.Neighbor     // adjacency snapshot; read-only
	options Options               // MaxDistance / InfEdgeThreshold
	res     *shortest.Result      // distances and predecessors being built
	pq      *yagh.IntMap[float64] // indexed min-heap keyed by vertex id
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum tentative distance and relaxes its outgoing arcs.
// The loop ends when the heap is empty; arcs leading beyond MaxDistance are
// never pushed, so every popped vertex is within the cap.
func (r *runner) process() error {
	for r.pq.Size() > 0 {
		// Pop the smallest-distance vertex; its distance is now final.
		u := r.pq.Pop().Elem
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc u→v and improves dist[v] when going through u is
// strictly shorter. Strict "<" keeps the first-found predecessor on ties.
func (r *runner) relax(u int) error {
	var (
		nb      core.Neighbor
		newDist float64
	)
	du := r.res.Dist[u]
	for _, nb = range r.adj[u] {
		// Closed segments are skipped entirely.
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, nb.To, nb.Weight)
		}

		newDist = du + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.res.Dist[nb.To] {
			continue
		}

		// Strictly shorter path to v: record it and update the heap entry.
		r.res.Dist[nb.To] = newDist
		r.res.Prev[nb.To] = u
		r.pq.Put(nb.To, newDist)
	}

	return nil
}
