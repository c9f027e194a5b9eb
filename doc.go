// Package tubepath answers shortest-route questions over transit networks
// and measures how planned closures reshape the distribution of journeys.
//
// 🚀 What is tubepath?
//
//	A small, concurrency-aware toolkit that brings together:
//		• Core primitives: an integer-vertex adjacency list with weighted,
//		  directed or undirected, simple or multi edges
//		• Single-source solvers: Dijkstra, Bellman–Ford (negative cycles), BFS
//		• All-pairs tables: per-source fan-out or Floyd–Warshall
//		• Resilience analysis: remove a batch of segments, compare before/after
//		• Statistics: summaries and shared-bin histograms of journey lengths
//
// Everything is organized into subpackages:
//
//	core/        — Graph, Edge, Pair, thread-safe mutation and snapshots
//	shortest/    — Result and Query shared by every solver, path reconstruction
//	dijkstra/    — indexed-heap Dijkstra
//	bellmanford/ — Bellman–Ford with negative-cycle extraction
//	bfs/         — hop-count BFS with depth limit, filters and hooks
//	dfs/         — depth-first traversal and connected components
//	apsp/        — all-pairs Compute, FloydWarshall, SimulateClosure, metrics
//	stats/       — Summarize, Linspace, SharedEdges, NewHistogram
//	cmd/tubepath — the command-line front end (route, journeys, closure)
//
// Quick ASCII example:
//
//	    A──2──B
//	    │     │
//	   10     3
//	    │     │
//	    C─────┘──1──D
//
//	shortest A→D by time: A → B → C → D (6 minutes, 3 stops)
//	shortest A→D by stops: A → C → D (2 stops)
//
//	go install github.com/katalvlaran/tubepath/cmd/tubepath@latest
package tubepath
