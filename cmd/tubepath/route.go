package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/bellmanford"
	"github.com/katalvlaran/tubepath/bfs"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/dijkstra"
	"github.com/katalvlaran/tubepath/shortest"
)

var errNoRoute = errors.New("no available path")

func (a *app) routeCmd() *cobra.Command {
	var stops bool
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the shortest route between two stations",
		Long: `Find the shortest route between two stations.

By default the route minimises total travel time. With --stops every
connection counts as one stop and the route minimises the number of stops.

Examples:
  tubepath route "Baker Street" "Waterloo"
  tubepath route "Baker Street" "Waterloo" --stops
  tubepath route "Baker Street" "Waterloo" --solver bellman-ford`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoute(cmd.Context(), args[0], args[1], stops)
		},
	}
	cmd.Flags().BoolVar(&stops, "stops", false, "minimise the number of stops instead of travel time")

	return cmd
}

func (a *app) runRoute(ctx context.Context, from, to string, stops bool) error {
	ctx, span := otel.Tracer("tubepath").Start(ctx, "tubepath.route",
		trace.WithAttributes(
			attribute.String("from", from),
			attribute.String("to", to),
			attribute.Bool("stops", stops),
		),
	)
	defer span.End()

	net, g, err := a.network(stops)
	if err != nil {
		return err
	}
	src, err := net.Stations.ID(from)
	if err != nil {
		return err
	}
	dst, err := net.Stations.ID(to)
	if err != nil {
		return err
	}
	solver, err := a.solver()
	if err != nil {
		return err
	}

	q, err := shortestPath(g, solver, src, dst)
	switch {
	case errors.Is(err, shortest.ErrNegativeCycle):
		return fmt.Errorf("negative cycle reachable from %q: shortest route is undefined", from)
	case err != nil:
		return err
	case !q.Found():
		return fmt.Errorf("%w from %q to %q", errNoRoute, from, to)
	}

	names, err := net.Stations.Names(q.Path)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "route found",
		slog.String("solver", solver.String()),
		slog.Int("stops", len(q.Path)-1),
		slog.Float64("distance", q.Distance))

	fmt.Fprintln(a.out, styles.Title.Render(fmt.Sprintf("Shortest route from %s to %s", from, to)))
	fmt.Fprintln(a.out, styles.Label.Render("Path:"), strings.Join(names, " -> "))
	if !stops && g.Weighted() && solver != apsp.SolverBFS {
		fmt.Fprintln(a.out, styles.Label.Render("Total journey time:"), fmt.Sprintf("%g minutes", q.Distance))
	}
	fmt.Fprintln(a.out, styles.Label.Render("Total number of stops:"), len(q.Path)-1)

	return nil
}

// shortestPath dispatches a point-to-point query.
func shortestPath(g *core.Graph, solver apsp.Solver, src, dst int) (shortest.Query, error) {
	switch solver {
	case apsp.SolverDijkstra:
		return dijkstra.ShortestPath(g, src, dst)
	case apsp.SolverBellmanFord:
		return bellmanford.ShortestPath(g, src, dst)
	case apsp.SolverBFS:
		return bfs.ShortestPath(g, src, dst)
	default:
		return shortest.Query{}, fmt.Errorf("%s answers all-pairs queries only; use the journeys command", solver)
	}
}
