// Package pathfind implements recursive shortest-path search on a
// core.Graph by exhaustive enumeration of simple paths.
//
// ShortestPath walks every simple directed path from start toward end,
// keeping the first minimum-vertex-count path it completes. A vertex already
// on the current path prefix is never revisited, which both keeps paths
// simple and terminates the recursion on cyclic graphs. Among equal-length
// candidates the first one discovered in neighbor insertion order wins; the
// tie-break is deterministic for a fixed construction sequence but is not
// lexicographic.
//
// Complexity:
//
//   - Time:   exponential in the worst case (simple-path enumeration).
//   - Memory: O(V) per recursion branch for the copied path prefix;
//     recursion depth is bounded by the vertex count, so very deep graphs
//     can exhaust the goroutine stack.
//
// This is an explicit trade-off for small unweighted graphs where the path
// itself is wanted. For single-source distance queries, prefer the dijkstra
// package, which runs in O((V+E) log V).
//
// Errors:
//
//	ErrGraphNil       - graph pointer is nil.
//	ErrVertexNotFound - start or end vertex is absent from the graph.
//	ErrNoPath         - both endpoints exist but no directed route connects them.
//
// All three are "absent result" signals to branch on with errors.Is, not
// failures of the search machinery.
package pathfind
