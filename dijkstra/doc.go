// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on core graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |arcs|.
//   - It relies on an indexed min-heap (github.com/rhartert/yagh) to always expand
//     the next-closest vertex; relaxations decrease the key in place.
//   - Supports distance caps and “impassable” edge thresholds.
//
// When to use:
//
//   - All-pairs analyses over transit networks whose weights are travel times
//     or stop counts: it is the fastest single-source solver for that case.
//   - Prefer bellmanford only when negative weights may be present.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: vertices farther than the cap stay unreachable.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as closed.
//   - Deterministic ties: with a fixed adjacency order, predecessor tables are identical
//     across runs (strict "<" relaxation keeps the first-found predecessor).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         the graph pointer is nil.
//   - ErrVertexOutOfRange: source or target is not in [0, V).
//   - ErrNegativeWeight:   a negative weight was met on an edge reachable from the source.
//   - ErrBadMaxDistance:   (panic) negative MaxDistance.
//   - ErrBadInfThreshold:  (panic) non-positive InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (*shortest.Result, error)
//	func ShortestPath(g *core.Graph, source, target int, opts ...Option) (shortest.Query, error)
//
// Thread safety:
//
//   - Dijkstra snapshots the adjacency under the graph's read lock and never
//     mutates the graph: any number of runs may share one graph concurrently,
//     as long as no deletion is interleaved with the batch.
package dijkstra
