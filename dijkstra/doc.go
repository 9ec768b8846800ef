// Package dijkstra computes single-source shortest distances on a directed
// core.Graph under unit edge weights.
//
// Every edge costs exactly 1, so the result maps each vertex to the minimum
// number of edges from the source; unreachable vertices keep the Unreachable
// sentinel. The algorithm processes vertices in order of increasing distance
// using the pqueue indexed min-heap: all vertices are enqueued up front
// (source at 0, everything else at Unreachable) and each improvement lowers
// the neighbor's live queue entry in place via Update — an eager
// decrease-key, so the queue always holds exactly one entry per unfinished
// vertex.
//
// Complexity:
//
//   - Time:  O(V·(V+E)) with the queue's linear-scan Update; the classic
//     O((V+E) log V) applies once the queue maintains a key→index map.
//   - Space: O(V) for the distance map and queue.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d hops are not explored and
//     keep Unreachable. Default is no cap.
//
// Errors:
//
//	ErrGraphNil       - graph pointer is nil.
//	ErrSourceNotFound - source vertex is absent from the graph.
//
// Example:
//
//	dist, err := dijkstra.Dijkstra(g, "A")
//	if err != nil { ... }
//	if dist["D"] == dijkstra.Unreachable { ... }
package dijkstra
