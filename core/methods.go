package core

import "iter"

// AddVertex inserts a vertex if missing (idempotent).
//
// A fresh vertex is appended to the catalog and given an empty out-neighbor
// list, keeping the catalog and adjacency map in lockstep. Adding an existing
// vertex is a no-op and preserves its original position.
//
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// No-op for an already cataloged vertex; insertion order is first-add order.
	if _, exists := g.adjacency[id]; exists {
		return nil
	}

	g.order = append(g.order, id)
	g.adjacency[id] = make([]string, 0)

	return nil
}

// AddEdge inserts the directed edge from→to, creating missing endpoints
// first (source before destination, so a single call fixes their catalog
// order). A duplicate edge is a no-op; self-loops are permitted.
//
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string) error {
	// 1) Ensure both endpoints exist, source first.
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 2) Reject duplicates: each out-list holds a neighbor at most once.
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return nil
		}
	}

	// 3) Append; out-edge order is insertion order by contract.
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the out-neighbor list of id, in edge insertion
// order. An existing vertex with no out-edges yields an empty (non-nil)
// slice, which is distinct from the ErrVertexNotFound case.
//
// The returned slice is caller-owned; mutating it does not affect the graph.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// All returns a restartable iterator over vertex IDs in insertion order.
// Each ranging pass visits every vertex exactly once. The graph must not be
// mutated while a pass is in flight.
func (g *Graph) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range g.order {
			if !yield(id) {
				return
			}
		}
	}
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of directed edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }
