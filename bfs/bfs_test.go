// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubepath/bfs"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/dijkstra"
	"github.com/katalvlaran/tubepath/internal/gen"
)

// ring builds the undirected cycle 0–1–…–(n-1)–0.
func ring(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.InsertEdge(i, (i+1)%n, 0))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := ring(t, 3)
	if _, err := bfs.BFS(g, 3); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("bad source: want ErrVertexOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, 0, 7); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("bad target: want ErrVertexOutOfRange, got %v", err)
	}
}

// TestRingDepths: hop counts on a 6-ring peak at the opposite vertex.
func TestRingDepths(t *testing.T) {
	res, err := bfs.BFS(ring(t, 6), 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3, 2, 1}, res.Dist)
	require.True(t, res.Valid)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, path, "first-discovered parent wins ties")
}

// TestWeightsIgnored: a heavy direct edge still counts as one stop.
func TestWeightsIgnored(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, g.InsertEdge(0, 1, 1))
	require.NoError(t, g.InsertEdge(1, 2, 1))
	require.NoError(t, g.InsertEdge(0, 2, 100))

	q, err := bfs.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, q.Path)
	require.Equal(t, 1.0, q.Distance)
}

// TestUnreachable keeps +Inf and a nil path.
func TestUnreachable(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, g.InsertEdge(1, 0, 0))

	q, err := bfs.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	require.False(t, q.Found())
	require.True(t, math.IsInf(q.Distance, 1))
}

// TestMaxDepth leaves distant vertices unreached.
func TestMaxDepth(t *testing.T) {
	res, err := bfs.BFS(ring(t, 8), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	inf := math.Inf(1)
	require.Equal(t, []float64{0, 1, 2, inf, inf, inf, 2, 1}, res.Dist)
}

// TestFilterNeighbor models a closed segment without mutating the graph.
func TestFilterNeighbor(t *testing.T) {
	g := ring(t, 4)
	closed := func(u, v int) bool { return !(u == 0 && v == 1) }
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(closed))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, 2, 1}, res.Dist)
	require.True(t, g.HasEdge(0, 1))
}

// TestOnVisitOrderAndAbort records FIFO order and propagates hook errors.
func TestOnVisitOrderAndAbort(t *testing.T) {
	g := ring(t, 5)
	var order []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		order = append(order, v)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 4, 2, 3}, order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 4 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestCancelled returns the context error.
func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(ring(t, 3), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestMatchesDijkstraOnUnweighted: on unit weights, stops equal distances.
func TestMatchesDijkstraOnUnweighted(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g, err := gen.RandomSparse(80, 0.05, gen.WithSeed(seed), gen.WithUnweighted())
		require.NoError(t, err)
		for src := 0; src < g.VertexCount(); src += 5 {
			want, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			got, err := bfs.BFS(g, src)
			require.NoError(t, err)
			if diff := cmp.Diff(want.Dist, got.Dist); diff != "" {
				t.Fatalf("seed=%d src=%d (-dijkstra +bfs):\n%s", seed, src, diff)
			}
		}
	}
}
