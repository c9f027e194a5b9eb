// Package bfs counts stops.
//
// BFS explores a core.Graph level by level from a source vertex and reports,
// for every vertex, the minimum number of arcs needed to reach it. Weights are
// ignored, so the same graph used for travel times can answer "how many stops"
// questions without being rebuilt with unit weights.
//
// The result type is shortest.Result, shared with dijkstra and bellmanford:
// Dist holds hop counts as float64, Prev holds the BFS tree.
//
// Options:
//
//	WithContext(ctx)         cancellation, checked once per dequeued vertex
//	WithMaxDepth(d)          stop expanding at d hops (0 = unlimited)
//	WithFilterNeighbor(fn)   skip arcs u→v for which fn returns false
//	WithOnVisit(fn)          hook per dequeued vertex; an error aborts the run
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
