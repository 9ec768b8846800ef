package pathfind

import (
	"errors"

	"github.com/mkovel/unigraph/core"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrVertexNotFound is returned when the start or end vertex is absent.
	ErrVertexNotFound = errors.New("pathfind: start or end vertex not found")

	// ErrNoPath is returned when no directed route exists from start to end.
	ErrNoPath = errors.New("pathfind: no path between vertices")
)

// searcher carries the immutable inputs of one ShortestPath invocation so
// the recursion only passes what varies per branch.
type searcher struct {
	graph *core.Graph
	end   string
}

// ShortestPath returns one minimum-vertex-count directed path from start to
// end, as the full vertex sequence including both endpoints.
//
// Guarantees on a returned path: it begins with start, ends with end, every
// consecutive pair is an edge of g, and no vertex repeats. When start == end
// the path is [start]. Among several shortest paths, the first one found in
// neighbor insertion order is returned.
//
// Returns ErrGraphNil, ErrVertexNotFound, or ErrNoPath as absent-result
// signals; see the package documentation for the complexity trade-off.
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	// 1) Validate inputs up front; recursion below assumes both endpoints exist.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, ErrVertexNotFound
	}

	// 2) Enumerate simple paths depth-first.
	s := &searcher{graph: g, end: end}
	best := s.explore(start, nil)
	if best == nil {
		return nil, ErrNoPath
	}

	return best, nil
}

// explore extends prefix with current and recurses into every neighbor not
// already on the path, returning the shortest completion found (nil if none).
//
// Each branch owns its extended copy of the prefix: sibling branches must
// never observe one another's tail.
func (s *searcher) explore(current string, prefix []string) []string {
	// 1) Extend the path with the current vertex, copying the prefix.
	path := make([]string, len(prefix), len(prefix)+1)
	copy(path, prefix)
	path = append(path, current)

	// 2) Base case: the path reached the target.
	if current == s.end {
		return path
	}

	// 3) Recurse into unvisited neighbors; keep the first strictly shorter result.
	//    current was added through AddVertex/AddEdge, so the lookup cannot fail.
	nbrs, _ := s.graph.Neighbors(current)

	var best []string
	for _, nbr := range nbrs {
		if onPath(path, nbr) {
			continue
		}
		candidate := s.explore(nbr, path)
		if candidate == nil {
			continue
		}
		if best == nil || len(candidate) < len(best) {
			best = candidate
		}
	}

	return best
}

// onPath reports whether id already occurs in path.
func onPath(path []string, id string) bool {
	for _, v := range path {
		if v == id {
			return true
		}
	}

	return false
}
