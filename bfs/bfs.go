// SPDX-License-Identifier: MIT
// Package bfs computes hop counts (number of stops) from a source vertex of
// a core.Graph. Edge weights are ignored: every arc costs one hop.
package bfs

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/shortest"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj     [][]core.Neighbor
	opts    Options
	queue   []int
	visited *sparsesets.Set
	res     *shortest.Result
}

// BFS runs breadth-first search on g from source.
//
// The result is a shortest.Result whose Dist holds hop counts
// (shortest.Infinity when unreached) and whose Prev encodes the BFS tree.
// Parents are assigned the first time a vertex is discovered, so ties follow
// adjacency insertion order.
//
// Errors: ErrGraphNil, ErrVertexOutOfRange, ErrOptionViolation, ctx.Err() on
// cancellation, or a wrapped error from OnVisit.
//
// Complexity: O(V + E) time, O(V) extra space.
func BFS(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, source)
	}

	n := g.VertexCount()
	w := &walker{
		adj:     g.Adjacency(),
		opts:    o,
		queue:   make([]int, 0, n),
		visited: sparsesets.New(n),
		res:     shortest.NewResult(source, n),
	}
	w.visited.Insert(source)
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// ShortestPath returns the fewest-hop path between source and target, with
// the hop count as Distance.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (shortest.Query, error) {
	if g != nil && !g.HasVertex(target) {
		return shortest.Query{}, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, target)
	}
	res, err := BFS(g, source, opts...)
	if err != nil {
		return shortest.Query{}, err
	}

	return shortest.QueryOf(res, target)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	ctx := w.opts.Ctx
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u := w.queue[head]
		depth := int(w.res.Dist[u])
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		w.enqueueNeighbors(u, depth+1)
	}

	return nil
}

// enqueueNeighbors discovers every unseen, allowed neighbor of u.
func (w *walker) enqueueNeighbors(u, next int) {
	for _, nb := range w.adj[u] {
		if w.visited.Contains(nb.To) || !w.opts.FilterNeighbor(u, nb.To) {
			continue
		}
		w.visited.Insert(nb.To)
		w.res.Dist[nb.To] = float64(next)
		w.res.Prev[nb.To] = u
		w.queue = append(w.queue, nb.To)
	}
}
