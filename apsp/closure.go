// SPDX-License-Identifier: MIT
// File: closure.go
// Role: Differential resilience analysis: all-pairs before and after a batch
//       of edge deletions.
// Determinism:
//   - AffectedSources is ascending; Pre/Post inherit Compute's guarantees.
// Concurrency:
//   - The input graph is only read; deletions happen on a Clone.

package apsp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/dfs"
)

// Closure is a batch of segments taken out of service together.
type Closure struct {
	Pairs      []core.Pair
	Undirected bool
}

// ClosureReport compares the network before and after a Closure.
type ClosureReport struct {
	Pre  *Table
	Post *Table

	// Removed is the number of edges actually deleted (absent pairs remove 0).
	Removed int

	// AffectedSources lists, ascending, sources whose distance row changed.
	AffectedSources []int

	// Disconnected counts ordered pairs reachable before and unreachable after.
	Disconnected int

	// ComponentsBefore and ComponentsAfter count connected components,
	// ignoring direction.
	ComponentsBefore int
	ComponentsAfter  int
}

// SimulateClosure computes the pre-closure table on g, applies the closure to
// a clone, computes the post-closure table, and compares them. g is left
// unchanged.
//
// Errors: ErrNilGraph, core.ErrVertexOutOfRange for a bad pair (nothing is
// deleted in that case), and anything Compute returns.
func SimulateClosure(ctx context.Context, g *core.Graph, c Closure, opts ...Option) (*ClosureReport, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	pre, err := Compute(ctx, g, opts...)
	if err != nil {
		return nil, fmt.Errorf("apsp: pre-closure: %w", err)
	}

	closed := g.Clone()
	removed, err := closed.DeleteEdges(c.Pairs, c.Undirected)
	if err != nil {
		return nil, fmt.Errorf("apsp: apply closure: %w", err)
	}

	post, err := Compute(ctx, closed, opts...)
	if err != nil {
		return nil, fmt.Errorf("apsp: post-closure: %w", err)
	}

	r := &ClosureReport{Pre: pre, Post: post, Removed: removed}
	r.compare()
	if r.ComponentsBefore, err = countComponents(g); err != nil {
		return nil, err
	}
	if r.ComponentsAfter, err = countComponents(closed); err != nil {
		return nil, err
	}
	cfg.Logger.InfoContext(ctx, "closure simulated",
		slog.Int("pairs", len(c.Pairs)),
		slog.Int("removed_edges", r.Removed),
		slog.Int("affected_sources", len(r.AffectedSources)),
		slog.Int("disconnected_pairs", r.Disconnected),
		slog.Int("components", r.ComponentsAfter))

	return r, nil
}

// compare fills AffectedSources and Disconnected.
func (r *ClosureReport) compare() {
	n := r.Pre.n
	affected := sparsesets.New(n)
	var pre, post []float64
	for s := 0; s < n; s++ {
		pre, post = r.Pre.row(s), r.Post.row(s)
		for u := range pre {
			if !sameDistance(pre[u], post[u]) && !affected.Contains(s) {
				affected.Insert(s)
			}
			if r.Pre.invalid[s] || r.Post.invalid[s] || u == s {
				continue
			}
			if !math.IsInf(pre[u], 1) && math.IsInf(post[u], 1) {
				r.Disconnected++
			}
		}
	}
	r.AffectedSources = slices.Clone(affected.Content())
	slices.Sort(r.AffectedSources)
}

// Delta returns the finite distance samples before and after the closure,
// ready for a shared-bin histogram.
func (r *ClosureReport) Delta(includeSelf bool) (pre, post []float64) {
	return r.Pre.Finite(includeSelf), r.Post.Finite(includeSelf)
}

// sameDistance treats two NaNs (invalid rows) as equal.
func sameDistance(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

func countComponents(g *core.Graph) (int, error) {
	c, err := dfs.ConnectedComponents(g)
	if err != nil {
		return 0, fmt.Errorf("apsp: components: %w", err)
	}

	return c.Count(), nil
}
