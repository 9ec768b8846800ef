// Package cycle implements directed-cycle detection on a core.Graph using
// depth-first search with three-color vertex marking.
//
// Detect answers one question: does the graph contain at least one directed
// cycle? A DFS is launched from every still-unvisited vertex in insertion
// order, so disconnected components are all covered. Encountering a Gray
// vertex — one currently on the recursion path — is a back-edge and proves a
// cycle, short-circuiting the whole search; a vertex turns Black only after
// all of its descendants are explored, never earlier.
//
// Self-loops count as cycles (a loop edge is a back-edge to the Gray vertex
// itself). A nil or empty graph is acyclic.
//
// Complexity:
//
//   - Time:   O(V + E); every vertex and edge is examined at most once.
//   - Memory: O(V) for the state map; recursion depth is bounded by the
//     vertex count, which limits very deep graphs to the goroutine stack.
package cycle
