// Package loader reads a tabular edge list (one connection per row) into a
// station index plus resolved edge tuples, and builds core graphs from it.
//
// Expected shape, header required, extra columns ignored:
//
//	Station A,Station B,Travel Time (minutes)
//	Baker Street,Bond Street,"2"
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tubepath/core"
	"github.com/katalvlaran/tubepath/internal/stations"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("loader: missing column")

	// ErrMalformedRow indicates a row with a missing endpoint or a
	// non-numeric weight.
	ErrMalformedRow = errors.New("loader: malformed row")

	// ErrEmpty indicates the input has no header.
	ErrEmpty = errors.New("loader: empty input")
)

// Columns names the header fields holding each endpoint and the weight.
type Columns struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight string `yaml:"weight"`
}

// DefaultColumns matches the London Underground connections file.
func DefaultColumns() Columns {
	return Columns{From: "Station A", To: "Station B", Weight: "Travel Time (minutes)"}
}

// Options configures Load.
type Options struct {
	Columns     Columns
	UnitWeights bool
}

// Option is a functional option for Load.
type Option func(*Options)

// WithColumns overrides the header names.
func WithColumns(c Columns) Option {
	return func(o *Options) { o.Columns = c }
}

// WithUnitWeights stores weight 1 for every row and does not require the
// weight column. Used for stop-count analyses.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// Network is the resolved edge list: ids are dense and assigned in
// first-seen order, row by row, From before To.
type Network struct {
	Stations *stations.Index
	Edges    []core.Edge
}

// Load parses r. Blank lines are skipped; any other bad row aborts with
// ErrMalformedRow carrying its line number.
func Load(r io.Reader, opts ...Option) (*Network, error) {
	cfg := Options{Columns: DefaultColumns()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("loader: header: %w", err)
	}
	from, to, weight, err := locate(header, cfg)
	if err != nil {
		return nil, err
	}

	net := &Network{Stations: stations.New(0)}
	var (
		rec  []string
		line int
		e    core.Edge
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ = cr.FieldPos(0)
		if e, err = parseRow(net.Stations, rec, from, to, weight); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		net.Edges = append(net.Edges, e)
	}

	return net, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Build constructs a graph over every station. With simple set, a repeated
// connection keeps the first weight seen and later duplicates are dropped;
// otherwise duplicates become parallel edges.
func (n *Network) Build(directed, weighted, simple bool) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(directed)}
	if weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if simple {
		gopts = append(gopts, core.WithSimpleEdges())
	}

	return core.FromEdges(n.Stations.Len(), n.Edges, gopts...)
}

// locate resolves column positions; weight is -1 with UnitWeights.
func locate(header []string, cfg Options) (from, to, weight int, err error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[normalize(h)] = i
	}
	find := func(name string) (int, error) {
		i, ok := pos[normalize(name)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	if from, err = find(cfg.Columns.From); err != nil {
		return
	}
	if to, err = find(cfg.Columns.To); err != nil {
		return
	}
	weight = -1
	if !cfg.UnitWeights {
		weight, err = find(cfg.Columns.Weight)
	}

	return
}

func parseRow(idx *stations.Index, rec []string, from, to, weight int) (core.Edge, error) {
	field := func(i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.Trim(rec[i], "\" \t")
	}

	u, err := idx.Add(field(from))
	if err != nil {
		return core.Edge{}, fmt.Errorf("column %d: %w", from+1, err)
	}
	v, err := idx.Add(field(to))
	if err != nil {
		return core.Edge{}, fmt.Errorf("column %d: %w", to+1, err)
	}
	w := 1.0
	if weight >= 0 {
		raw := field(weight)
		if w, err = strconv.ParseFloat(raw, 64); err != nil {
			return core.Edge{}, fmt.Errorf("weight %q is not a number", raw)
		}
	}

	return core.Edge{From: u, To: v, Weight: w}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.Trim(s, "\" \t\ufeff"))
}
