// Package unigraph is a minimal toolkit for directed, unweighted graphs:
// build a graph, find shortest paths, and check for cycles.
//
// What's inside:
//
//	core/     — the Graph container: insertion-ordered vertices and
//	            adjacency lists, directed unit-weight edges
//	pathfind/ — recursive shortest path by simple-path enumeration
//	            (returns the actual route)
//	dijkstra/ — single-source hop counts via an indexed min-heap
//	            (returns distances to every vertex)
//	cycle/    — directed-cycle detection with three-color DFS
//	pqueue/   — the indexed binary min-heap behind dijkstra, usable
//	            standalone (insert / extract-min / update-by-key)
//	fifo/     — an unrelated fixed-capacity sliding-window queue
//
// Why choose unigraph?
//
//   - Small API, deterministic behavior — enumeration follows insertion order
//   - Pure Go — no runtime dependencies
//   - Explicit errors — sentinels to branch on with errors.Is
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("A", "C")
//	g.AddEdge("B", "C")
//	g.AddEdge("C", "D")
//
//	path, _ := pathfind.ShortestPath(g, "A", "D") // [A C D]
//	dist, _ := dijkstra.Dijkstra(g, "A")          // dist["D"] == 2
//	cycle.Detect(g)                               // false
//
// Everything runs in-process with no I/O; graphs are not safe for concurrent
// mutation. See each package's documentation for contracts and complexity.
package unigraph
