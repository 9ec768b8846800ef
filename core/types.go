// Package core defines the Graph type, its sentinel errors, and the
// NewGraph constructor. Query and mutation methods live in methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is a directed, unweighted graph with insertion-ordered storage.
//
// order holds vertex IDs in the order they were first added and defines the
// enumeration order of Vertices() and All(). adjacency maps each vertex to
// its ordered out-neighbor list; a vertex appears in adjacency iff it appears
// in order, and a neighbor appears at most once per list.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	order     []string            // vertex IDs, insertion order
	adjacency map[string][]string // vertex ID → ordered out-neighbors
	edgeCount int                 // total number of directed edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		order:     make([]string, 0),
		adjacency: make(map[string][]string),
	}
}
