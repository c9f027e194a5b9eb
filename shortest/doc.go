// Package shortest defines the result shape shared by every single-source
// solver (dijkstra, bellmanford, bfs) and the path reconstructor that turns a
// predecessor table into an ordered vertex sequence.
//
// Conventions:
//
//   - Dist[v] == Infinity (+Inf) means v is unreachable from the source.
//   - Prev[v] == None (-1) for the source and for unreachable vertices.
//   - Valid == false only when Bellman-Ford found a negative cycle reachable
//     from the source; Dist and Prev are then unreliable and PathTo refuses
//     to answer with ErrNegativeCycle.
//
// "No path" is a normal query outcome, never an error: Reconstruct and
// Result.PathTo return a nil path with a nil error.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo(3) // [0 1 2 3]
package shortest
