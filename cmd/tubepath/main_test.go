package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCSV = `Station A,Station B,Travel Time (minutes)
A,B,2
B,C,3
A,C,10
C,D,1
`

// writeNetwork stores testCSV plus a config file pointing at it.
func writeNetwork(t *testing.T, closures string) (csvPath, cfgPath string) {
	t.Helper()
	dir := t.TempDir()
	csvPath = filepath.Join(dir, "net.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o600))

	cfgPath = filepath.Join(dir, "tubepath.yaml")
	body := "network:\n  csv: " + csvPath + "\n  weighted: true\n  simple: true\n" +
		"log:\n  level: error\n  format: text\n" + closures
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	return csvPath, cfgPath
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRouteByTime(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	code, out, errOut := execute("route", "A", "D", "--config", cfg)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Path: A -> B -> C -> D")
	require.Contains(t, out, "Total journey time: 6 minutes")
	require.Contains(t, out, "Total number of stops: 3")
}

func TestRouteByStops(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	for _, solver := range []string{"dijkstra", "bellman-ford", "bfs"} {
		t.Run(solver, func(t *testing.T) {
			code, out, errOut := execute("route", "A", "D", "--stops", "--solver", solver, "--config", cfg)
			require.Equal(t, 0, code, errOut)
			require.Contains(t, out, "Path: A -> C -> D")
			require.Contains(t, out, "Total number of stops: 2")
			require.NotContains(t, out, "journey time")
		})
	}
}

func TestRouteCSVFlagOverridesConfig(t *testing.T) {
	csv, _ := writeNetwork(t, "")
	code, out, errOut := execute("route", "B", "D", "--csv", csv, "--log-level", "error")
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Path: B -> C -> D")
}

func TestRouteErrors(t *testing.T) {
	_, cfg := writeNetwork(t, "")

	code, _, errOut := execute("route", "A", "Nowhere", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "unknown station")

	code, _, errOut = execute("route", "A", "D", "--solver", "floyd-warshall", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "all-pairs")

	code, _, errOut = execute("route", "A", "D", "--solver", "astar", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "config")

	code, _, _ = execute("route", "A", "--config", cfg)
	require.Equal(t, 1, code)
}

func TestRouteDirectedNoPath(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	code, _, errOut := execute("route", "D", "A", "--directed", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "no available path")
}

func TestJourneys(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	for _, solver := range []string{"dijkstra", "bellman-ford", "floyd-warshall"} {
		t.Run(solver, func(t *testing.T) {
			code, out, errOut := execute("journeys", "--solver", solver, "--bins", "5", "--config", cfg)
			require.Equal(t, 0, code, errOut)
			require.Contains(t, out, "Pairs: 12")
			require.Contains(t, out, "Unreachable pairs: 0")
			require.Contains(t, out, "min 1")
			require.Contains(t, out, "max 6")
		})
	}
}

func TestJourneysStops(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	code, out, errOut := execute("journeys", "--stops", "--config", cfg)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "stops")
	require.Contains(t, out, "max 2")
}

func TestClosure(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "tubepath.prom")
	_, cfg := writeNetwork(t, "closures:\n  - [C, D]\n  - [X, Y]\n")

	code, out, errOut := execute("closure", "--config", cfg, "--metrics-file", metrics)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Edges removed: 1")
	require.Contains(t, out, "Sources affected: 4")
	require.Contains(t, out, "Pairs disconnected: 6")
	require.Contains(t, out, "Components: 1 -> 2")
	require.Contains(t, out, "Before (density)")
	require.Contains(t, out, "After (density)")
	require.NotContains(t, out, "(pairs)")

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(raw), "tubepath_solver_runs_total")
}

func TestClosureStrict(t *testing.T) {
	_, cfg := writeNetwork(t, "closures:\n  - [X, Y]\n")
	code, _, errOut := execute("closure", "--strict", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "unknown station")
}

func TestClosureCounts(t *testing.T) {
	_, cfg := writeNetwork(t, "closures:\n  - [C, D]\n")
	code, out, errOut := execute("closure", "--counts", "--config", cfg)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Before (pairs)")
	require.Contains(t, out, "After (pairs)")
}

func TestSolverSpellings(t *testing.T) {
	_, cfg := writeNetwork(t, "")
	for _, solver := range []string{"bellman_ford", "BellmanFord"} {
		code, out, errOut := execute("route", "A", "D", "--solver", solver, "--config", cfg)
		require.Equal(t, 0, code, errOut)
		require.Contains(t, out, "Total journey time: 6 minutes")
	}
}
