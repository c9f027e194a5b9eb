// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/dfs"
	"github.com/katalvlaran/tubepath/internal/gen"
)

// diamond builds the directed graph
//
//	0 → 1 → 3 → 4
//	0 → 2 → 3 → 5
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(6, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2},
		{From: 1, To: 3}, {From: 2, To: 3},
		{From: 3, To: 4}, {From: 3, To: 5},
	}, core.WithDirected(true))
	require.NoError(t, err)

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(t), 6)
	require.ErrorIs(t, err, dfs.ErrVertexOutOfRange)

	_, err = dfs.ConnectedComponents(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_PostOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0)
	require.NoError(t, err)

	if diff := cmp.Diff([]int{4, 5, 3, 1, 2, 0}, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []int{0, 1, 1, 2, 3, 3}, res.Depth)
	require.Equal(t, []int{-1, 0, 0, 1, 3, 3}, res.Parent)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, res.Order)
	require.False(t, res.Visited(3))
	require.Equal(t, -1, res.Parent[3])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0, dfs.WithFilterNeighbor(func(u, v int) bool {
		return !(u == 0 && v == 1)
	}))
	require.NoError(t, err)
	require.False(t, res.Visited(1))
	require.True(t, res.Visited(5))
	require.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []int
	_, err := dfs.DFS(diamond(t), 0,
		dfs.WithOnVisit(func(v, _ int) error {
			pre = append(pre, v)
			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			post = append(post, v)
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 4, 5, 2}, pre)
	require.Equal(t, []int{4, 5, 3, 1, 2, 0}, post)

	stop := errors.New("stop")
	res, err := dfs.DFS(diamond(t), 0, dfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(diamond(t), 0, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g, err := core.FromEdges(5, []core.Edge{{From: 0, To: 1}, {From: 2, To: 3}})
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	require.Len(t, res.Order, 5)
	require.Equal(t, []int{0, 1, 0, 1, 0}, res.Depth)
}

func TestConnectedComponents(t *testing.T) {
	g, err := core.FromEdges(5, []core.Edge{{From: 0, To: 1}, {From: 2, To: 3}})
	require.NoError(t, err)

	c, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	require.Equal(t, 3, c.Count())
	require.Equal(t, []int{0, 0, 1, 1, 2}, c.Label)
	require.Equal(t, []int{2, 2, 1}, c.Sizes)
	require.Equal(t, 2, c.Largest())
	require.True(t, c.Same(2, 3))
	require.False(t, c.Same(1, 2))
}

func TestConnectedComponents_DirectedIsWeak(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{From: 0, To: 1}, {From: 2, To: 1}}, core.WithDirected(true))
	require.NoError(t, err)

	c, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	require.Equal(t, 1, c.Count())
}

func TestConnectedComponents_Grid(t *testing.T) {
	g, err := gen.Grid(8, 8, gen.WithSeed(3))
	require.NoError(t, err)

	c, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	require.Equal(t, 1, c.Count())
	require.Equal(t, 64, c.Largest())
}
