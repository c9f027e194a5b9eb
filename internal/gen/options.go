// SPDX-License-Identifier: MIT
// Package: tubepath/internal/gen
//
// options.go: functional options for the synthetic network generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves return sentinel errors and never panic.
//   • Every generator is deterministic for a fixed seed; the default seed is 1.
//   • Weights are integers stored as float64 so that sums are exact and
//     solvers can be compared with ==.

package gen

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator before the graph is built.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	directed bool
	weighted bool
	simple   bool
	minW     int
	maxW     int
}

const (
	defaultSeed = 1
	defaultMinW = 1
	defaultMaxW = 10
)

func newConfig(opts ...Option) config {
	cfg := config{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weighted: true,
		minW:     defaultMinW,
		maxW:     defaultMaxW,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed reseeds the generator; equal seeds give equal graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected builds a directed graph (default undirected).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithUnweighted builds an unweighted graph: every stored weight is 1.
func WithUnweighted() Option {
	return func(c *config) { c.weighted = false }
}

// WithSimpleEdges rejects parallel edges in the generated graph.
func WithSimpleEdges() Option {
	return func(c *config) { c.simple = true }
}

// WithWeightRange draws integer weights uniformly from [lo, hi].
// Panics if lo > hi.
func WithWeightRange(lo, hi int) Option {
	if lo > hi {
		panic(fmt.Sprintf("gen: WithWeightRange(%d, %d): lo > hi", lo, hi))
	}

	return func(c *config) {
		c.minW = lo
		c.maxW = hi
	}
}

// weight draws the next edge weight.
func (c *config) weight() float64 {
	return float64(c.minW + c.rng.Intn(c.maxW-c.minW+1))
}
