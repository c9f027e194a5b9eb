// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on core graphs whose weights may be negative.
//
// Algorithm:
//
//   - Initialize dist[source] = 0, every other distance +Inf, every predecessor None.
//   - Perform up to V−1 passes; each pass relaxes every arc (u, v, w) whose tail
//     is reachable: dist[u] + w < dist[v] ⇒ dist[v] = dist[u] + w, prev[v] = u.
//   - Run one extra pass. If any arc still relaxes, a negative cycle is
//     reachable from the source: Result.Valid = false.
//
// Failure semantics:
//
// A negative cycle is a structural property of the network, not a failure of
// the call. BellmanFord returns (result, nil) with Valid == false, so an
// all-pairs batch can record the affected source and keep going. Callers MUST
// check Valid (or Result.Err) before trusting distances. ShortestPath, which
// answers a single point-to-point query, turns the same condition into
// ErrNegativeCycle.
//
// Undirected graphs:
//
// Every undirected edge is two arcs, so a single negative undirected edge is
// already a negative cycle (u→v→u).
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
package bellmanford
