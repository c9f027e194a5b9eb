// Package bellmanford defines configuration options and sentinel errors for
// the Bellman-Ford single-source shortest-path solver.
package bellmanford

import (
	"errors"

	"github.com/katalvlaran/tubepath/shortest"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexOutOfRange indicates that the source or target id is not a vertex.
	ErrVertexOutOfRange = errors.New("bellmanford: vertex out of range")

	// ErrNegativeCycle is the structural network error reported when a negative
	// cycle is reachable from the source. BellmanFord itself never returns it
	// as an error; it surfaces through Result.Err and ShortestPath.
	ErrNegativeCycle = shortest.ErrNegativeCycle
)

// Options configures the behavior of the Bellman-Ford algorithm.
//
// EarlyExit – stop the V−1 relaxation passes as soon as one pass changes
//
//	nothing. The outcome is identical to running every pass; only the
//	running time differs. Default is true.
//
// FindCycle – when a negative cycle is detected, extract one into
//
//	Result.Cycle. Default is true.
type Options struct {
	EarlyExit bool
	FindCycle bool
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithEarlyExit toggles stopping after a pass without relaxation.
func WithEarlyExit(enabled bool) Option {
	return func(o *Options) { o.EarlyExit = enabled }
}

// WithFindCycle toggles negative-cycle extraction.
func WithFindCycle(enabled bool) Option {
	return func(o *Options) { o.FindCycle = enabled }
}

// DefaultOptions returns the defaults: EarlyExit and FindCycle enabled.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
		FindCycle: true,
	}
}
