// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves adjacency order exactly, so solvers produce identical
//     predecessor tables on a graph and its clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertex count,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		directed: g.directed,
		weighted: g.weighted,
		simple:   g.simple,
		n:        g.n,
		adj:      make([][]Neighbor, g.n),
	}
}

// Clone returns a deep copy of the Graph: configuration and adjacency.
// Closure simulations mutate the clone and keep the source graph as baseline.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u := range g.adj {
		if len(g.adj[u]) == 0 {
			continue
		}
		clone.adj[u] = make([]Neighbor, len(g.adj[u]))
		copy(clone.adj[u], g.adj[u])
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every edge while preserving V and configuration flags.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adj = make([][]Neighbor, g.n)
	g.edgeCount = 0
	g.mu.Unlock()
}
