// SPDX-License-Identifier: MIT
// Package gen builds deterministic synthetic networks for tests, benchmarks
// and the CLI demo mode: grids (city blocks), paths (a single line), cycles
// (a circle line) and sparse random graphs.
package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubepath/core"
)

// Sentinel errors for generator parameters.
var (
	ErrTooFewVertices     = errors.New("gen: too few vertices")
	ErrInvalidProbability = errors.New("gen: probability must lie in [0,1]")
)

// Path returns the line 0–1–…–(n-1).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g, err := cfg.graph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.InsertEdge(i, i+1, cfg.weight()); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Cycle returns the ring 0–1–…–(n-1)–0. n must be at least 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g, err := cfg.graph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = g.InsertEdge(i, (i+1)%n, cfg.weight()); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Grid returns a rows×cols lattice; vertex (r, c) has id r*cols + c and is
// linked to its right and lower neighbors.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g, err := cfg.graph(rows * cols)
	if err != nil {
		return nil, err
	}
	var r, c, u int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u = r*cols + c
			if c+1 < cols {
				if err = g.InsertEdge(u, u+1, cfg.weight()); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err = g.InsertEdge(u, u+cols, cfg.weight()); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi graph: each admissible pair is linked
// independently with probability p. Undirected graphs try pairs i<j; directed
// graphs try every ordered pair i≠j. Trial order is fixed (i asc, then j asc).
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	g, err := cfg.graph(n)
	if err != nil {
		return nil, err
	}
	var i, j, start int
	for i = 0; i < n; i++ {
		start = 0
		if !cfg.directed {
			start = i + 1
		}
		for j = start; j < n; j++ {
			if i == j || cfg.rng.Float64() >= p {
				continue
			}
			if err = g.InsertEdge(i, j, cfg.weight()); err != nil {
				return nil, fmt.Errorf("RandomSparse: %w", err)
			}
		}
	}

	return g, nil
}

func (c *config) graph(n int) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(c.directed)}
	if c.weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if c.simple {
		gopts = append(gopts, core.WithSimpleEdges())
	}

	return core.NewGraph(n, gopts...)
}
