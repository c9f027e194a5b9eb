// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/HasEdge/DeleteEdge/DeleteAllEdges/DeleteEdges.
// Determinism:
//   - Arcs are appended to adjacency lists in call order; deletions preserve the
//     relative order of the remaining arcs.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// InsertEdge appends the arc u→v with weight w; in undirected graphs it also
// appends the mirror v→u (a self-loop is stored once).
//
// Weight policy:
//   - Unweighted graphs store 1 whatever w is.
//   - Weighted graphs store w as-is, negative values included; negativity is a
//     Dijkstra precondition, not a structural invariant. NaN ⇒ ErrBadWeight.
//
// Multi-edge policy:
//   - Default: a repeated insert creates a parallel edge.
//   - WithSimpleEdges: a repeated insert returns ErrMultiEdgeNotAllowed and
//     leaves the graph unchanged.
//
// Complexity: O(1) amortized; O(deg(u)) under WithSimpleEdges.
func (g *Graph) InsertEdge(u, v int, w float64) error {
	// 1) Input validation
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	w, err := g.normalizeWeight(w)
	if err != nil {
		return err
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.simple && indexOf(g.adj[u], v) >= 0 {
		return ErrMultiEdgeNotAllowed
	}

	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	// 3) Mirror undirected
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one arc u→v exists.
// Undirected edges are mirrored, so HasEdge(u,v) == HasEdge(v,u) there.
// Out-of-range ids simply yield false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return indexOf(g.adj[u], v) >= 0
}

// DeleteEdge removes the first arc u→v and, when undirected is true or the
// graph is undirected, the first arc v→u as well, atomically.
// Removing an edge that does not exist is a no-op: closure simulations may
// try to remove the same edge twice.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) DeleteEdge(u, v int, undirected bool) error {
	_, err := g.deleteEdge(u, v, undirected, false)

	return err
}

// DeleteAllEdges removes every parallel arc u→v (and v→u when undirected is
// true or the graph is undirected) and returns the number of logical edges
// removed.
func (g *Graph) DeleteAllEdges(u, v int, undirected bool) (int, error) {
	return g.deleteEdge(u, v, undirected, true)
}

// DeleteEdges removes the first matching edge for each pair, in order, under a
// single write lock. All ids are validated before anything is removed, so an
// out-of-range pair leaves the graph untouched. Returns the number of logical
// edges actually removed.
func (g *Graph) DeleteEdges(pairs []Pair, undirected bool) (int, error) {
	for _, p := range pairs {
		if err := g.checkVertex(p.From); err != nil {
			return 0, err
		}
		if err := g.checkVertex(p.To); err != nil {
			return 0, err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	removed := 0
	for _, p := range pairs {
		removed += g.deleteLocked(p.From, p.To, undirected, false)
	}

	return removed, nil
}

// deleteEdge validates ids and runs deleteLocked under the write lock.
func (g *Graph) deleteEdge(u, v int, undirected, all bool) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.deleteLocked(u, v, undirected, all), nil
}

// deleteLocked performs the removal; caller holds mu.
//
// Counting rules:
//   - Undirected graph: each removed u→v arc drops its mirror and counts as one edge.
//   - Directed graph: every removed arc is its own edge; with undirected=true the
//     v→u arcs are removed too and counted separately.
func (g *Graph) deleteLocked(u, v int, undirected, all bool) int {
	removed := 0
	for {
		if !g.removeArc(u, v) {
			break
		}
		if !g.directed && u != v {
			g.removeArc(v, u)
		}
		removed++
		if !all {
			break
		}
	}
	if g.directed && undirected && u != v {
		for {
			if !g.removeArc(v, u) {
				break
			}
			removed++
			if !all {
				break
			}
		}
	}
	g.edgeCount -= removed

	return removed
}

// removeArc drops the first u→v entry of adj[u], preserving order.
func (g *Graph) removeArc(u, v int) bool {
	i := indexOf(g.adj[u], v)
	if i < 0 {
		return false
	}
	list := g.adj[u]
	copy(list[i:], list[i+1:])
	list[len(list)-1] = Neighbor{}
	g.adj[u] = list[:len(list)-1]

	return true
}

// indexOf returns the position of the first arc towards v, or -1.
func indexOf(list []Neighbor, v int) int {
	for i := range list {
		if list[i].To == v {
			return i
		}
	}

	return -1
}
