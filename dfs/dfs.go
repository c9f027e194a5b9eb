// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, plus connected-component labelling.
//
// Key features:
//   - DFS(g, source, opts...): traverse from a root, or the whole forest via
//     WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor with a SkippedNeighbors count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrVertexOutOfRange       if source is not a vertex (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/tubepath/core"
)

// walker encapsulates state during DFS.
type walker struct {
	adj     [][]core.Neighbor // adjacency snapshot
	opts    Options
	res     *Result
	skipped int
}

// DFS performs depth-first search on g from source, or over every vertex
// when WithFullTraversal is set (source is then ignored). Neighbors are
// explored in insertion order, so results are deterministic.
func DFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify source
	if !o.FullTraversal && !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, source)
	}

	w := newWalker(g.Adjacency(), o)
	var err error
	if o.FullTraversal {
		err = w.forest()
	} else {
		err = w.traverse(source, 0)
	}
	w.res.SkippedNeighbors = w.skipped

	return w.res, err
}

func newWalker(adj [][]core.Neighbor, o Options) *walker {
	n := len(adj)
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	return &walker{adj: adj, opts: o, res: res}
}

// forest restarts traversal from every unvisited vertex.
func (w *walker) forest() error {
	for v := range w.adj {
		if w.res.Depth[v] >= 0 {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return err
		}
	}

	return nil
}

// traverse visits u at depth, recursing to unvisited neighbors.
func (w *walker) traverse(u, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and pre-order hook
	w.res.Depth[u] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
		}
	}

	// 3. Explore each neighbor within the depth limit
	for _, nb := range w.adj[u] {
		if nb.To == u {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, nb.To) {
			w.skipped++
			continue
		}
		if w.res.Depth[nb.To] >= 0 || w.beyond(depth+1) {
			continue
		}
		w.res.Parent[nb.To] = u
		if err := w.traverse(nb.To, depth+1); err != nil {
			return err
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(u); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", u, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, u)

	return nil
}

// beyond reports whether depth exceeds MaxDepth.
func (w *walker) beyond(depth int) bool {
	return w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth
}
