// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on non-negatively weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains an indexed priority queue of tentative distances and
// settles vertices in increasing order of distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |arcs|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each relaxation is an insert-or-decrease-key on the indexed heap (up to E updates).
//	– Space: O(V + E)
//	   • O(V) for distance/predecessor slices and the heap index.
//	   • O(E) for the adjacency snapshot.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexOutOfRange if the source (or target) is not in [0, V).
//	– ErrNegativeWeight   if a negative weight is met on an edge reachable from the source.
//	– ErrBadMaxDistance   if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates that the source or target id is not a vertex.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was met during relaxation.
	// Graphs with negative weights must be solved with bellmanford instead.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this cap are not explored
//
//	and keep an infinite distance. Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as closed.
//
//	Must be > 0. Default is +Inf (no closed edges).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is a programming error: fail at construction.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered closed. This models a suspended segment without deleting it.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
