package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubepath/apsp"
	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/internal/config"
	"github.com/katalvlaran/tubepath/internal/loader"
	"github.com/katalvlaran/tubepath/internal/telemetry"
)

// app carries state shared by every subcommand for one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	// flag targets
	configPath  string
	csvPath     string
	directed    bool
	weighted    bool
	solverName  string
	workers     int
	logLevel    string
	logFormat   string
	trace       bool
	metricsFile string

	cfg      config.Config
	log      *slog.Logger
	reg      *prometheus.Registry
	metrics  *apsp.Metrics
	shutdown func(context.Context) error
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tubepath",
		Short: "Shortest routes and resilience analysis for transit networks",
		Long: `tubepath loads a transit network from a CSV edge list and answers
shortest-route questions: by travel time (Dijkstra, Bellman-Ford) or by number
of stops (BFS).

Configuration is read from --config (YAML) when given; flags override it.

Examples:
  tubepath route "Baker Street" "Waterloo"
  tubepath route "Baker Street" "Waterloo" --stops
  tubepath journeys --solver bellman-ford --bins 20
  tubepath closure --config tubepath.yaml --metrics-file tubepath.prom`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.StringVar(&a.csvPath, "csv", "", "edge-list CSV (overrides network.csv)")
	f.BoolVar(&a.directed, "directed", false, "treat connections as one-way")
	f.BoolVar(&a.weighted, "weighted", true, "use the travel-time column as edge weight")
	f.StringVar(&a.solverName, "solver", "", "dijkstra | bellman-ford | bfs | floyd-warshall")
	f.IntVar(&a.workers, "workers", 0, "parallel sources for all-pairs runs (0 = all CPUs)")
	f.StringVar(&a.logLevel, "log-level", "", "debug | info | warn | error")
	f.StringVar(&a.logFormat, "log-format", "", "text | json")
	f.BoolVar(&a.trace, "trace", false, "export spans as JSON to stderr")
	f.StringVar(&a.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile on exit")

	root.AddCommand(a.routeCmd(), a.journeysCmd(), a.closureCmd())

	return root
}

// setup loads configuration, applies explicit flags and starts telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("csv") {
		cfg.Network.CSV = a.csvPath
	}
	if f.Changed("directed") {
		cfg.Network.Directed = a.directed
	}
	if f.Changed("weighted") {
		cfg.Network.Weighted = a.weighted
	}
	if f.Changed("solver") {
		cfg.Solver = a.solverName
	}
	if f.Changed("workers") {
		cfg.Workers = a.workers
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if f.Changed("trace") {
		cfg.Telemetry.Trace = a.trace
	}
	if f.Changed("metrics-file") {
		cfg.Telemetry.MetricsFile = a.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format, a.errOut); err != nil {
		return err
	}
	if a.shutdown, err = telemetry.InitTracing(cfg.Telemetry.Trace, a.errOut, version); err != nil {
		return err
	}
	a.reg = telemetry.NewRegistry()
	a.metrics = apsp.NewMetrics(a.reg)
	a.log.Debug("configuration loaded",
		slog.String("csv", cfg.Network.CSV),
		slog.String("solver", cfg.Solver),
		slog.Bool("directed", cfg.Network.Directed),
		slog.Bool("weighted", cfg.Network.Weighted))

	return nil
}

// close flushes spans and writes the metrics textfile.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
	}
	if a.reg != nil {
		errs = append(errs, telemetry.WriteMetrics(a.cfg.Telemetry.MetricsFile, a.reg))
	}

	return errors.Join(errs...)
}

// network loads the CSV and builds the graph. stops switches to unit
// weights on an unweighted graph.
func (a *app) network(stops bool) (*loader.Network, *core.Graph, error) {
	n := a.cfg.Network
	opts := []loader.Option{loader.WithColumns(n.Columns)}
	weighted := n.Weighted
	if stops || !weighted {
		opts = append(opts, loader.WithUnitWeights())
		weighted = false
	}

	net, err := loader.LoadFile(n.CSV, opts...)
	if err != nil {
		return nil, nil, err
	}
	g, err := net.Build(n.Directed, weighted, n.Simple)
	if err != nil {
		return nil, nil, fmt.Errorf("build graph: %w", err)
	}
	a.log.Info("network loaded",
		slog.Int("stations", g.VertexCount()),
		slog.Int("rows", len(net.Edges)),
		slog.Int("edges", g.EdgeCount()))

	return net, g, nil
}

// solver resolves the configured solver.
func (a *app) solver() (apsp.Solver, error) {
	return apsp.ParseSolver(a.cfg.Solver)
}
