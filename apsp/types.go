// SPDX-License-Identifier: MIT
// Package apsp defines the solver selection, options and sentinel errors of
// the all-pairs orchestrator.
package apsp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the all-pairs orchestrator.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrUnknownSolver indicates an unrecognized solver name or value.
	ErrUnknownSolver = errors.New("apsp: unknown solver")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("apsp: workers must be non-negative")

	// ErrVertexOutOfRange indicates a table lookup outside [0, V).
	ErrVertexOutOfRange = errors.New("apsp: vertex out of range")
)

// Solver selects the single-source algorithm run once per source vertex.
type Solver int

const (
	// SolverDijkstra requires non-negative weights. Default.
	SolverDijkstra Solver = iota
	// SolverBellmanFord tolerates negative weights and flags negative cycles.
	SolverBellmanFord
	// SolverBFS counts stops and ignores weights.
	SolverBFS
	// SolverFloydWarshall fills the whole table in one dense O(V³) pass.
	SolverFloydWarshall
)

var solverNames = [...]string{
	SolverDijkstra:      "dijkstra",
	SolverBellmanFord:   "bellman-ford",
	SolverBFS:           "bfs",
	SolverFloydWarshall: "floyd-warshall",
}

// String returns the canonical solver name.
func (s Solver) String() string {
	if s < 0 || int(s) >= len(solverNames) {
		return fmt.Sprintf("Solver(%d)", int(s))
	}

	return solverNames[s]
}

// ParseSolver maps a name (case-insensitive; "_" and "-" interchangeable) to
// a Solver.
func ParseSolver(name string) (Solver, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch key {
	case "bellmanford":
		key = "bellman-ford"
	case "floydwarshall":
		key = "floyd-warshall"
	}
	for i, n := range solverNames {
		if n == key {
			return Solver(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// Options configures Compute and SimulateClosure.
//
// Solver  – algorithm per source. Default SolverDijkstra.
// Workers – concurrent sources; 0 means runtime.GOMAXPROCS(0), 1 is sequential.
// Logger  – structured logger; default discards.
// Metrics – optional prometheus collectors; nil disables.
type Options struct {
	Solver  Solver
	Workers int
	Logger  *slog.Logger
	Metrics *Metrics
}

// Option represents a functional option for the orchestrator.
type Option func(*Options)

// WithSolver picks the per-source algorithm. Panics on an unknown value.
func WithSolver(s Solver) Option {
	if s < 0 || int(s) >= len(solverNames) {
		panic(fmt.Sprintf("%v: %d", ErrUnknownSolver, int(s)))
	}

	return func(o *Options) { o.Solver = s }
}

// WithWorkers bounds the fan-out. Panics with ErrBadWorkers on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a structured logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records run counts and durations into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns Dijkstra, GOMAXPROCS workers, a discarding logger
// and no metrics.
func DefaultOptions() Options {
	return Options{
		Solver: SolverDijkstra,
		Logger: slog.New(slog.DiscardHandler),
	}
}
