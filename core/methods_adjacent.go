// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Edges, Degree, Adjacency).
// Determinism:
//   - Neighbors() preserves insertion order; solvers rely on it for tie-breaking.
//   - Edges() lists arcs by tail vertex asc, then insertion order.
// Concurrency:
//   - All methods hold the read lock and return independent copies.

package core

// Neighbors returns the outgoing arcs of u in insertion order.
//
// The returned slice is a fresh copy: it can be ranged over any number of
// times and is unaffected by later mutations of the graph.
//
// Errors:
//   - ErrVertexOutOfRange: if u is not in [0, V).
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every stored arc. Undirected edges appear once per direction,
// which is exactly the arc set Bellman-Ford has to relax.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for u := range g.adj {
		total += len(g.adj[u])
	}
	out := make([]Edge, 0, total)
	var nb Neighbor
	for u := range g.adj {
		for _, nb = range g.adj[u] {
			out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
		}
	}

	return out
}

// Degree returns the number of outgoing arcs of u (parallel arcs counted).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Adjacency returns a deep copy of the whole adjacency structure, taken under
// one read lock. Solvers that visit most vertices use it to avoid a lock round
// trip per Neighbors call.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, len(g.adj))
	for u := range g.adj {
		if len(g.adj[u]) == 0 {
			continue
		}
		out[u] = make([]Neighbor, len(g.adj[u]))
		copy(out[u], g.adj[u])
	}

	return out
}
