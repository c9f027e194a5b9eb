package dfs

import (
	"slices"

	"github.com/katalvlaran/tubepath/core"
)

// Components labels the connected parts of a graph. Direction is ignored,
// so on a directed graph these are the weakly connected components.
type Components struct {
	// Label maps each vertex to its component, numbered 0.. in order of the
	// smallest vertex id they contain.
	Label []int

	// Sizes holds the vertex count of each component.
	Sizes []int
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.Sizes) }

// Same reports whether u and v lie in one component.
func (c *Components) Same(u, v int) bool { return c.Label[u] == c.Label[v] }

// Largest returns the size of the biggest component, 0 for an empty graph.
func (c *Components) Largest() int {
	if len(c.Sizes) == 0 {
		return 0
	}

	return slices.Max(c.Sizes)
}

// ConnectedComponents runs a forest DFS over g with every arc made
// bidirectional and records which tree each vertex landed in.
func ConnectedComponents(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := g.Adjacency()
	if g.Directed() {
		adj = symmetric(adj)
	}

	c := &Components{Label: make([]int, len(adj))}
	o := DefaultOptions()
	o.OnVisit = func(v, _ int) error {
		c.Label[v] = len(c.Sizes) - 1
		c.Sizes[len(c.Sizes)-1]++
		return nil
	}
	w := newWalker(adj, o)
	for v := range adj {
		if w.res.Depth[v] >= 0 {
			continue
		}
		c.Sizes = append(c.Sizes, 0)
		if err := w.traverse(v, 0); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// symmetric adds the reverse of every arc.
func symmetric(adj [][]core.Neighbor) [][]core.Neighbor {
	out := make([][]core.Neighbor, len(adj))
	for u, list := range adj {
		out[u] = append(out[u], list...)
		for _, nb := range list {
			out[nb.To] = append(out[nb.To], core.Neighbor{To: u, Weight: nb.Weight})
		}
	}

	return out
}
