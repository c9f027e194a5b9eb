// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubepath/core"
)

// TestNewGraph_Defaults verifies the zero-option configuration.
func TestNewGraph_Defaults(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.False(t, g.Directed(), "default graph must be undirected")
	require.False(t, g.Weighted(), "default graph must be unweighted")
	require.False(t, g.Simple(), "default graph must allow parallel edges")
	require.Equal(t, 0, g.EdgeCount())
}

// TestNewGraph_NegativeCount ensures invalid sizes are rejected.
func TestNewGraph_NegativeCount(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

// TestNewGraph_Empty allows a zero-vertex graph.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	require.Empty(t, g.Edges())
	require.False(t, g.HasVertex(0))
}

// TestHasVertex checks both range boundaries.
func TestHasVertex(t *testing.T) {
	g, _ := core.NewGraph(2)
	require.True(t, g.HasVertex(0))
	require.True(t, g.HasVertex(1))
	require.False(t, g.HasVertex(2))
	require.False(t, g.HasVertex(-1))
}

// TestUnweightedStoresUnitWeights checks that the supplied weight is ignored.
func TestUnweightedStoresUnitWeights(t *testing.T) {
	g, _ := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, g.InsertEdge(0, 1, 42))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []core.Neighbor{{To: 1, Weight: 1}}, nbs)
}

// TestWeightedRejectsNaN ensures NaN cannot enter the adjacency.
func TestWeightedRejectsNaN(t *testing.T) {
	g, _ := core.NewGraph(2, core.WithWeighted())
	require.ErrorIs(t, g.InsertEdge(0, 1, math.NaN()), core.ErrBadWeight)
	require.Equal(t, 0, g.EdgeCount())
}

// TestWeightedKeepsNegative: negativity is a solver precondition, not a graph invariant.
func TestWeightedKeepsNegative(t *testing.T) {
	g, _ := core.NewGraph(2, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.InsertEdge(0, 1, -2.5))
	require.Equal(t, []core.Edge{{From: 0, To: 1, Weight: -2.5}}, g.Edges())
}

// TestFromEdges builds the literal four-vertex scenario.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 10},
		{From: 2, To: 3, Weight: 1},
	}, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
}

// TestFromEdges_SimpleSkipsDuplicates mirrors loaders that pre-check HasEdge.
func TestFromEdges_SimpleSkipsDuplicates(t *testing.T) {
	g, err := core.FromEdges(2, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 7},
	}, core.WithWeighted(), core.WithSimpleEdges())
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	nbs, _ := g.Neighbors(1)
	require.Equal(t, []core.Neighbor{{To: 0, Weight: 2}}, nbs)
}

// TestFromEdges_OutOfRange reports the offending edge.
func TestFromEdges_OutOfRange(t *testing.T) {
	_, err := core.FromEdges(2, []core.Edge{{From: 0, To: 2, Weight: 1}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	require.Contains(t, err.Error(), "edge #0")
}
