// Package dfs defines types and options for depth-first traversal over a
// core.Graph: cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// ConnectedComponents.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates that the start vertex is not in the graph.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each arc u→v before recursing.
	FilterNeighbor func(u, v int) bool

	// FullTraversal restarts from every unvisited vertex in ascending id
	// order, covering disconnected parts of the graph.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips arcs u→v for which fn returns false. Skipped arcs
// are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth of each vertex, -1 when not visited.
	Depth []int

	// Parent is the vertex each one was discovered from, -1 for roots and
	// unvisited vertices.
	Parent []int

	// SkippedNeighbors counts arcs rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
