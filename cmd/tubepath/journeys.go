package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/stats"
)

func (a *app) journeysCmd() *cobra.Command {
	var (
		stops bool
		bins  int
	)
	cmd := &cobra.Command{
		Use:   "journeys",
		Short: "Distribution of shortest journeys over every station pair",
		Long: `Compute the shortest journey between every ordered pair of stations and
summarise the distribution as statistics and a histogram.

Unreachable pairs are reported separately and never enter the statistics.
Pairs of a station with itself are excluded unless histogram.include_self is
set in the configuration.

Examples:
  tubepath journeys
  tubepath journeys --stops
  tubepath journeys --bins 20 --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("bins") {
				a.cfg.Histogram.Bins = bins
			}
			return a.runJourneys(cmd.Context(), stops)
		},
	}
	cmd.Flags().BoolVar(&stops, "stops", false, "count stops instead of travel time")
	cmd.Flags().IntVar(&bins, "bins", 30, "histogram bins for travel times")

	return cmd
}

func (a *app) runJourneys(ctx context.Context, stops bool) error {
	_, g, err := a.network(stops)
	if err != nil {
		return err
	}
	solver, err := a.solver()
	if err != nil {
		return err
	}
	t, err := apsp.Compute(ctx, g, a.computeOptions(solver)...)
	if err != nil {
		return err
	}

	includeSelf := a.cfg.Histogram.IncludeSelf
	xs := t.Finite(includeSelf)
	unit := "minutes"
	if stops || !g.Weighted() || solver == apsp.SolverBFS {
		unit = "stops"
	}

	fmt.Fprintln(a.out, styles.Title.Render(fmt.Sprintf("Shortest journeys (%s, %s)", unit, solver)))
	writeSummary(a.out, stats.Summarize(xs))
	fmt.Fprintf(a.out, "%s %s\n", styles.Label.Render("Unreachable pairs:"),
		humanize.Comma(int64(t.Unreachable(includeSelf))))
	if bad := t.InvalidSources(); len(bad) > 0 {
		fmt.Fprintln(a.out, styles.Warning.Render(
			fmt.Sprintf("%d sources reach a negative cycle and were skipped", len(bad))))
	}
	if len(xs) == 0 {
		return nil
	}

	edges, err := a.histogramEdges(unit == "stops", xs)
	if err != nil {
		return err
	}
	h, err := stats.NewHistogram(xs, edges)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out)

	return h.Render(a.out, a.cfg.Histogram.Width)
}

// computeOptions maps the configuration onto apsp options.
func (a *app) computeOptions(solver apsp.Solver) []apsp.Option {
	return []apsp.Option{
		apsp.WithSolver(solver),
		apsp.WithWorkers(a.cfg.Workers),
		apsp.WithLogger(a.log),
		apsp.WithMetrics(a.metrics),
	}
}

// histogramEdges uses one bin per stop count, or evenly spaced bins over the
// common range of every sample set.
func (a *app) histogramEdges(integer bool, sets ...[]float64) ([]float64, error) {
	if !integer {
		return stats.SharedEdges(a.cfg.Histogram.Bins, sets...)
	}
	top := 0.0
	for _, set := range sets {
		for _, x := range set {
			top = math.Max(top, x)
		}
	}

	return stats.IntegerEdges(int(top)), nil
}

func writeSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Pairs:"), humanize.Comma(int64(s.Count)))
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "%s %g   %s %g   %s %.2f   %s %g   %s %.2f\n",
		styles.Label.Render("min"), s.Min,
		styles.Label.Render("max"), s.Max,
		styles.Label.Render("mean"), s.Mean,
		styles.Label.Render("median"), s.Median,
		styles.Label.Render("stddev"), s.StdDev)
}
