// Package core provides a minimal in-memory directed, unweighted graph
// backed by an insertion-ordered adjacency list.
//
// The Graph G = (V,E) keeps two tightly coupled structures:
//
//   - an ordered vertex catalog (insertion order, unique IDs)
//   - a per-vertex ordered out-neighbor list (insertion order, no duplicates)
//
// Both are mutated together, so every adjacency key is a cataloged vertex and
// vice versa. Insertion order is part of the contract: Vertices(), All() and
// Neighbors() enumerate in the order things were added, which is what makes
// the traversal packages (pathfind, dijkstra, cycle) deterministic for a
// fixed construction sequence.
//
// Capabilities and limits:
//
//   - Directed edges only; an undirected link is two AddEdge calls.
//   - Unit weight implied everywhere; there is no weight storage.
//   - Self-loops are permitted; parallel edges are not (duplicate AddEdge
//     is a no-op).
//   - No removal operations; a Graph only grows.
//
// Core Methods:
//
//	AddVertex(id string) error              // O(1), idempotent
//	AddEdge(from, to string) error          // O(deg(from)), auto-creates endpoints
//	HasVertex(id string) bool               // O(1)
//	HasEdge(from, to string) bool           // O(deg(from))
//	Neighbors(id string) ([]string, error)  // O(deg(id)), copy
//	Vertices() []string                     // O(V), copy, insertion order
//	All() iter.Seq[string]                  // restartable insertion-order iteration
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//
// Concurrency: a Graph is not safe for concurrent mutation, and mutating a
// graph while a search package reads it is undefined. Callers serialize
// mutation and search, or work on independently built graphs.
package core
