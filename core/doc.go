// SPDX-License-Identifier: MIT
// Package core provides a thread-safe, integer-indexed adjacency-list Graph
// with a minimal API surface, sized for transit networks whose stations have
// already been mapped to the dense ids 0..V-1 by an external index.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted; unweighted ⇒ every weight is 1)
//   - Parallel edges by default, or simple graphs (WithSimpleEdges)
//   - Self-loops (stored once in undirected graphs)
//   - Insertion-ordered adjacency: adj[u] = [(v, w), ...]
//   - A single sync.RWMutex guarding adjacency
//
// Why use core.Graph?
//
//   - Fixed vertex count: ids are validated, never clamped or auto-created.
//   - Deterministic iteration: Neighbors() keeps insertion order, so solvers
//     break ties the same way on every run.
//   - Closure support: DeleteEdge / DeleteEdges remove one or both directions
//     atomically and silently ignore edges that are already gone.
//   - Clone support: simulate closures on a copy and keep the baseline intact.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Undirected graphs store every edge as two mirrored arcs.
//
//	– WithWeighted()
//	    Keep caller weights (negative allowed; NaN rejected with ErrBadWeight).
//
//	– WithSimpleEdges()
//	    A second InsertEdge(u,v) returns ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)    // O(n)
//	FromEdges(n int, edges []Edge, opts ...GraphOption)      // O(n + E)
//
//	InsertEdge(u, v int, w float64) error                    // O(1) amortized
//	HasEdge(u, v int) bool                                   // O(deg(u))
//	DeleteEdge(u, v int, undirected bool) error              // O(deg(u)+deg(v)), absent ⇒ no-op
//	DeleteAllEdges(u, v int, undirected bool) (int, error)   // removes parallel edges too
//	DeleteEdges(pairs []Pair, undirected bool) (int, error)  // batch closure, one lock
//
//	Neighbors(u int) ([]Neighbor, error)                     // copy, insertion order
//	Edges() []Edge                                           // every arc
//	Adjacency() [][]Neighbor                                 // full snapshot
//	Degree(u int) (int, error)
//	VertexCount() int; EdgeCount() int
//
//	Clone() *Graph; CloneEmpty() *Graph; Clear()
//
// Concurrency:
//
// Queries may run concurrently with each other. Mutations serialize on the
// write lock, but interleaving mutations with a batch of solver runs gives no
// consistency guarantee across the batch: finish all deletions first.
package core
