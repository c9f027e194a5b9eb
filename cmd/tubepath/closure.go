package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/internal/stations"
	"github.com/katalvlaran/tubepath/stats"
)

func (a *app) closureCmd() *cobra.Command {
	var (
		stops  bool
		strict bool
		counts bool
	)
	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Compare journeys before and after closing the configured segments",
		Long: `Close every segment listed under "closures" in the configuration (both
directions), recompute all shortest journeys and compare them with the
unclosed network.

Segments naming unknown stations are skipped with a warning unless --strict
is set. Histograms show densities on shared bins so the two distributions
compare despite different pair totals; --counts plots raw pair counts.

Examples:
  tubepath closure --config tubepath.yaml
  tubepath closure --config tubepath.yaml --stops --solver bfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runClosure(cmd.Context(), stops, strict, counts)
		},
	}
	cmd.Flags().BoolVar(&stops, "stops", false, "count stops instead of travel time")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on segments naming unknown stations")
	cmd.Flags().BoolVar(&counts, "counts", false, "plot pair counts instead of densities")

	return cmd
}

func (a *app) runClosure(ctx context.Context, stops, strict, counts bool) error {
	net, g, err := a.network(stops)
	if err != nil {
		return err
	}
	solver, err := a.solver()
	if err != nil {
		return err
	}
	pairs, err := a.closurePairs(net.Stations, strict)
	if err != nil {
		return err
	}

	r, err := apsp.SimulateClosure(ctx, g,
		apsp.Closure{Pairs: pairs, Undirected: true},
		a.computeOptions(solver)...)
	if err != nil {
		return err
	}

	unit := "minutes"
	if stops || !g.Weighted() || solver == apsp.SolverBFS {
		unit = "stops"
	}
	includeSelf := a.cfg.Histogram.IncludeSelf
	pre, post := r.Delta(includeSelf)

	fmt.Fprintln(a.out, styles.Title.Render(fmt.Sprintf("Closure of %d segments (%s, %s)", len(pairs), unit, solver)))
	fmt.Fprintf(a.out, "%s %d\n", styles.Label.Render("Edges removed:"), r.Removed)
	fmt.Fprintf(a.out, "%s %d\n", styles.Label.Render("Sources affected:"), len(r.AffectedSources))
	fmt.Fprintf(a.out, "%s %s\n", styles.Label.Render("Pairs disconnected:"), humanize.Comma(int64(r.Disconnected)))
	fmt.Fprintf(a.out, "%s %d -> %d\n", styles.Label.Render("Components:"), r.ComponentsBefore, r.ComponentsAfter)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styles.Title.Render("Before"))
	writeSummary(a.out, stats.Summarize(pre))
	fmt.Fprintln(a.out, styles.Title.Render("After"))
	writeSummary(a.out, stats.Summarize(post))
	if len(pre) == 0 || len(post) == 0 {
		return nil
	}

	edges, err := a.histogramEdges(unit == "stops", pre, post)
	if err != nil {
		return err
	}
	before, err := stats.NewHistogram(pre, edges)
	if err != nil {
		return err
	}
	after, err := stats.NewHistogram(post, edges)
	if err != nil {
		return err
	}

	return a.renderPair(before, after, counts)
}

// renderPair draws the before and after histograms. Densities share one bar
// scale so the two shapes compare directly despite different pair totals.
func (a *app) renderPair(before, after *stats.Histogram, counts bool) error {
	peak := max(before.PeakDensity(), after.PeakDensity())
	for _, part := range []struct {
		title string
		h     *stats.Histogram
	}{{"Before", before}, {"After", after}} {
		fmt.Fprintln(a.out)
		var err error
		if counts {
			fmt.Fprintln(a.out, styles.Muted.Render(part.title+" (pairs)"))
			err = part.h.Render(a.out, a.cfg.Histogram.Width)
		} else {
			fmt.Fprintln(a.out, styles.Muted.Render(part.title+" (density)"))
			err = part.h.RenderDensity(a.out, a.cfg.Histogram.Width, peak)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// closurePairs resolves the configured station-name pairs to vertex pairs.
func (a *app) closurePairs(idx *stations.Index, strict bool) ([]core.Pair, error) {
	pairs := make([]core.Pair, 0, len(a.cfg.Closures))
	for _, seg := range a.cfg.Closures {
		from, errFrom := idx.ID(seg[0])
		to, errTo := idx.ID(seg[1])
		if err := errors.Join(errFrom, errTo); err != nil {
			if strict {
				return nil, fmt.Errorf("closure %q - %q: %w", seg[0], seg[1], err)
			}
			a.log.Warn("closure skipped",
				slog.String("from", seg[0]),
				slog.String("to", seg[1]),
				slog.Any("err", err))
			continue
		}
		pairs = append(pairs, core.Pair{From: from, To: to})
	}

	return pairs, nil
}
