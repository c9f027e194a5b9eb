package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/internal/loader"
)

const sample = `Station A,Station B,Travel Time (minutes),Line
Baker Street,Bond Street,"2",Jubilee
Bond Street,Green Park,"3",Jubilee
Baker Street,Bond Street,"4",Extra

Green Park,Westminster, 2 ,Jubilee
`

func TestLoadAssignsIDsInOrder(t *testing.T) {
	net, err := loader.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, []string{"Baker Street", "Bond Street", "Green Park", "Westminster"}, net.Stations.All())
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 1, Weight: 4},
		{From: 2, To: 3, Weight: 2},
	}, net.Edges)
}

// TestBuildSimpleSkipsDuplicates keeps the first weight of a repeated pair.
func TestBuildSimpleSkipsDuplicates(t *testing.T) {
	net, err := loader.Load(strings.NewReader(sample))
	require.NoError(t, err)

	g, err := net.Build(false, true, true)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	nbs, _ := g.Neighbors(0)
	require.Equal(t, []core.Neighbor{{To: 1, Weight: 2}}, nbs)

	multi, err := net.Build(false, true, false)
	require.NoError(t, err)
	require.Equal(t, 4, multi.EdgeCount())
}

func TestUnitWeightsIgnoreWeightColumn(t *testing.T) {
	in := "from,to\nA,B\nB,C\n"
	net, err := loader.Load(strings.NewReader(in),
		loader.WithUnitWeights(),
		loader.WithColumns(loader.Columns{From: "FROM", To: "to"}))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}}, net.Edges)
}

func TestMalformedRows(t *testing.T) {
	cases := map[string]string{
		"non-numeric weight": "Station A,Station B,Travel Time (minutes)\nA,B,2\nA,C,abc\n",
		"missing endpoint":   "Station A,Station B,Travel Time (minutes)\nA,,2\n",
		"short row":          "Station A,Station B,Travel Time (minutes)\nA,B\n",
	}
	for name, in := range cases {
		_, err := loader.Load(strings.NewReader(in))
		require.ErrorIs(t, err, loader.ErrMalformedRow, name)
	}

	_, err := loader.Load(strings.NewReader("Station A,Station B,Travel Time (minutes)\nA,B,2\nA,C,abc\n"))
	require.ErrorContains(t, err, "line 3")
}

func TestHeaderProblems(t *testing.T) {
	_, err := loader.Load(strings.NewReader(""))
	require.ErrorIs(t, err, loader.ErrEmpty)

	_, err = loader.Load(strings.NewReader("Station A,Station B\nA,B\n"))
	require.ErrorIs(t, err, loader.ErrMissingColumn)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	net, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, net.Stations.Len())

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
