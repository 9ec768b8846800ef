package cycle

import "github.com/mkovel/unigraph/core"

// vertexState is the DFS visitation state of a vertex.
const (
	white = iota // not visited yet
	gray         // on the current recursion path
	black        // fully explored, cannot be part of an undiscovered cycle
)

// Detect reports whether g contains at least one directed cycle.
// The first back-edge found anywhere short-circuits to true; a nil graph is
// treated as cycle-free.
func Detect(g *core.Graph) bool {
	if g == nil {
		return false
	}

	// Launch DFS from every still-White vertex so disconnected components
	// are covered too.
	state := make(map[string]int, g.VertexCount())
	for id := range g.All() {
		if state[id] == white && visit(g, id, state) {
			return true
		}
	}

	return false
}

// visit explores the DFS subtree rooted at id and reports whether it closes
// a cycle. id is Gray while its descendants are explored and turns Black
// only post-order — never between sibling branches.
func visit(g *core.Graph, id string, state map[string]int) bool {
	state[id] = gray

	// id is always a cataloged vertex here, so the lookup cannot fail.
	nbrs, _ := g.Neighbors(id)
	for _, nbr := range nbrs {
		switch state[nbr] {
		case gray:
			// Back-edge to a vertex on the recursion path: cycle.
			return true
		case white:
			if visit(g, nbr, state) {
				return true
			}
		}
	}

	state[id] = black

	return false
}
