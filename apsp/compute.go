// SPDX-License-Identifier: MIT
// Package apsp runs a single-source solver from every vertex and assembles
// the all-pairs distance table used by the journey-distribution and closure
// analyses.
package apsp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tubepath/bellmanford"
	"github.com/katalvlaran/tubepath/bfs"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/dijkstra"
	"github.com/katalvlaran/tubepath/shortest"
)

var tracer = otel.Tracer("github.com/katalvlaran/tubepath/apsp")

// Compute fills the all-pairs table of g with the configured solver.
//
// Per-source runs fan out over an errgroup limited to Workers goroutines;
// each run reads g and writes only its own table row. g must not be mutated
// until Compute returns.
//
// A Bellman-Ford source that reaches a negative cycle does not abort the
// batch: its row is set to NaN and listed by Table.InvalidSources. Any other
// solver error (e.g. dijkstra.ErrNegativeWeight) or ctx cancellation aborts
// and is returned.
//
// Complexity: V solver runs; V·(V+E)·log V for Dijkstra, V²·E for
// Bellman-Ford, V·(V+E) for BFS, V³ for Floyd–Warshall.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := tracer.Start(ctx, "apsp.Compute",
		trace.WithAttributes(
			attribute.String("solver", cfg.Solver.String()),
			attribute.Int("vertices", n),
			attribute.Int("workers", workers),
		),
	)
	defer span.End()

	start := time.Now()
	t, err := compute(ctx, g, cfg.Solver, workers, cfg.Metrics)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		cfg.Logger.ErrorContext(ctx, "all-pairs computation failed",
			slog.String("solver", cfg.Solver.String()),
			slog.Any("error", err))
		return nil, err
	}

	invalid := t.InvalidSources()
	span.SetAttributes(attribute.Int("invalid_sources", len(invalid)))
	cfg.Metrics.observeDuration(cfg.Solver, elapsed.Seconds())
	cfg.Logger.InfoContext(ctx, "all-pairs computed",
		slog.String("solver", cfg.Solver.String()),
		slog.Int("vertices", n),
		slog.Int("workers", workers),
		slog.Int("invalid_sources", len(invalid)),
		slog.Duration("elapsed", elapsed))
	for _, s := range invalid {
		cfg.Logger.WarnContext(ctx, "negative cycle reachable from source", slog.Int("source", s))
	}

	return t, nil
}

func compute(ctx context.Context, g *core.Graph, solver Solver, workers int, m *Metrics) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if solver == SolverFloydWarshall {
		t, err := FloydWarshall(g)
		if err != nil {
			return nil, err
		}
		for s := 0; s < t.n; s++ {
			if t.invalid[s] {
				m.observeRun(solver, outcomeNegativeCycle)
			} else {
				m.observeRun(solver, outcomeOK)
			}
		}
		return t, nil
	}

	n := g.VertexCount()
	t := newTable(n, solver)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for s := 0; s < n; s++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runSource(gctx, g, solver, s)
			if err != nil {
				m.observeRun(solver, outcomeError)
				return fmt.Errorf("apsp: source %d: %w", s, err)
			}
			if !res.Valid {
				m.observeRun(solver, outcomeNegativeCycle)
				t.markInvalid(s)
				return nil
			}
			m.observeRun(solver, outcomeOK)
			copy(t.row(s), res.Dist)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when the loop stopped early on a cancelled parent.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// runSource dispatches one single-source run.
func runSource(ctx context.Context, g *core.Graph, solver Solver, s int) (*shortest.Result, error) {
	switch solver {
	case SolverDijkstra:
		return dijkstra.Dijkstra(g, s)
	case SolverBellmanFord:
		return bellmanford.BellmanFord(g, s, bellmanford.WithFindCycle(false))
	case SolverBFS:
		return bfs.BFS(g, s, bfs.WithContext(ctx))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSolver, solver)
	}
}
