// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/internal/gen"
)

// TestClosureLiteral: closing 1→2 reroutes 0→3 through the direct edge.
func TestClosureLiteral(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 10},
		{From: 2, To: 3, Weight: 1},
	}, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)

	r, err := apsp.SimulateClosure(context.Background(), g, apsp.Closure{
		Pairs: []core.Pair{{From: 1, To: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, r.Removed)

	pre, _ := r.Pre.At(0, 3)
	post, _ := r.Post.At(0, 3)
	require.Equal(t, 9.0, pre)
	require.Equal(t, 11.0, post)

	require.Equal(t, []int{0, 1}, r.AffectedSources)
	require.Equal(t, 2, r.Disconnected, "1→2 and 1→3 are lost")
	require.Equal(t, 1, r.ComponentsAfter, "0→1 still ties station 1 in")
	require.True(t, g.HasEdge(1, 2), "input graph must be left intact")
}

// TestClosureSplitsRing: two cuts on a 6-ring leave two 3-station halves.
func TestClosureSplitsRing(t *testing.T) {
	g, err := gen.Cycle(6, gen.WithUnweighted())
	require.NoError(t, err)

	r, err := apsp.SimulateClosure(context.Background(), g, apsp.Closure{
		Pairs:      []core.Pair{{From: 0, To: 1}, {From: 3, To: 4}},
		Undirected: true,
	}, apsp.WithSolver(apsp.SolverBFS), apsp.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, 2, r.Removed)
	require.Equal(t, 18, r.Disconnected)
	require.Equal(t, 1, r.ComponentsBefore)
	require.Equal(t, 2, r.ComponentsAfter)
	require.Len(t, r.AffectedSources, 6)

	pre, post := r.Delta(false)
	require.Len(t, pre, 30)
	require.Len(t, post, 12)
	require.Equal(t, 6, g.EdgeCount())
}

// TestClosureMissingEdges: absent pairs are a no-op, not an error.
func TestClosureMissingEdges(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)
	r, err := apsp.SimulateClosure(context.Background(), g, apsp.Closure{
		Pairs:      []core.Pair{{From: 0, To: 3}},
		Undirected: true,
	})
	require.NoError(t, err)
	require.Equal(t, 0, r.Removed)
	require.Empty(t, r.AffectedSources)
	require.Zero(t, r.Disconnected)
}

// TestClosureBadPair is a validation failure.
func TestClosureBadPair(t *testing.T) {
	g, err := gen.Path(3)
	require.NoError(t, err)
	_, err = apsp.SimulateClosure(context.Background(), g, apsp.Closure{
		Pairs: []core.Pair{{From: 0, To: 7}},
	})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	require.Equal(t, 2, g.EdgeCount())

	_, err = apsp.SimulateClosure(context.Background(), nil, apsp.Closure{})
	require.ErrorIs(t, err, apsp.ErrNilGraph)
}
