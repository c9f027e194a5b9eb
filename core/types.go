// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Neighbor, Edge and Pair types,
// and provides thread-safe primitives for building, querying, mutating and
// cloning integer-indexed adjacency-list graphs.
//
// All core APIs guard the adjacency storage with a single sync.RWMutex, so
// you can safely mutate a graph from one goroutine while others wait, and run
// any number of read-only queries (solvers) concurrently.
//
// This file declares Neighbor, Edge, Pair, Graph, GraphOption,
// sentinel errors, and the NewGraph / FromEdges constructors.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - vertex id outside [0, V).
//	ErrMultiEdgeNotAllowed - parallel edge attempted on a simple graph.
//	ErrBadWeight           - NaN weight supplied to a weighted graph.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates that a Graph was requested with n < 0 vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced an id outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a NaN weight, which no shortest-path solver can order.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// unitWeight is the implicit weight of every edge in an unweighted graph.
const unitWeight = 1.0

// Neighbor is one entry of an adjacency list: the head vertex and the weight
// of the arc leading to it.
type Neighbor struct {
	// To is the head vertex id.
	To int

	// Weight is the cost of the arc. Always 1 in unweighted graphs.
	Weight float64
}

// Edge is a directed arc From→To with a Weight. Undirected graphs expose each
// logical edge as two arcs (one per direction) through Graph.Edges.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Pair names an edge by its endpoints only; used by batch deletions
// (closure simulations) where the weight is irrelevant.
type Pair struct {
	From int
	To   int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted keeps caller-supplied edge weights. Without it every edge
// weighs exactly 1 and the supplied weight is ignored.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithSimpleEdges rejects a second insert between the same ordered pair with
// ErrMultiEdgeNotAllowed. By default parallel edges are kept and solvers
// naturally prefer the cheapest one through relaxation.
func WithSimpleEdges() GraphOption {
	return func(g *Graph) { g.simple = true }
}

// Graph is an adjacency-list graph over the dense vertex ids 0..V-1.
//
// V is fixed at construction. adj[u] holds the outgoing arcs of u in insertion
// order; undirected edges are stored as two mirrored arcs. mu protects adj and
// edgeCount; the configuration flags are immutable after NewGraph.
type Graph struct {
	mu sync.RWMutex // guards adj and edgeCount

	// Configuration flags
	directed bool // orientation of all edges
	weighted bool // keep caller weights (else 1)
	simple   bool // reject parallel edges

	// Storage
	n         int          // vertex count, fixed
	edgeCount int          // logical edges (undirected counted once)
	adj       [][]Neighbor // u → outgoing arcs in insertion order
}

// NewGraph creates a Graph with n vertices and no edges.
// By default the Graph is undirected, unweighted and allows parallel edges.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	g := &Graph{
		n:   n,
		adj: make([][]Neighbor, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromEdges builds a Graph with n vertices and inserts edges in order.
// It stops at the first failing insert; under WithSimpleEdges duplicates are
// skipped rather than reported, matching the "check before insert" loaders.
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		err = g.InsertEdge(e.From, e.To, e.Weight)
		if errors.Is(err, ErrMultiEdgeNotAllowed) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("core: edge #%d (%d→%d): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether caller weights are kept.
func (g *Graph) Weighted() bool { return g.weighted }

// Simple reports whether parallel edges are rejected.
func (g *Graph) Simple() bool { return g.simple }

// HasVertex reports whether 0 ≤ v < V.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// EdgeCount returns the number of logical edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// checkVertex wraps ErrVertexOutOfRange with the offending id.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}

// normalizeWeight applies the unweighted policy and rejects NaN.
func (g *Graph) normalizeWeight(w float64) (float64, error) {
	if !g.weighted {
		return unitWeight, nil
	}
	if math.IsNaN(w) {
		return 0, ErrBadWeight
	}

	return w, nil
}
