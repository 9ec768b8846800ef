package dijkstra

import (
	"github.com/mkovel/unigraph/core"
	"github.com/mkovel/unigraph/pqueue"
)

// Dijkstra computes the minimum hop count from source to every vertex of g.
//
// Returns a map keyed by every vertex of the graph: 0 for the source, the
// minimum number of edges for vertices reachable from it, and Unreachable
// for the rest. The graph is read, never mutated; the priority queue is
// instantiated internally per invocation.
//
// Preconditions (validated in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source must exist in g (ErrSourceNotFound) — callers guard the absent
//     case rather than receiving a partial map.
//
// Determinism: vertices are enqueued in insertion order and distances are
// exact regardless of extraction order among equal priorities; only
// distances are observable in the result.
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, error) {
	// 1) Build options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// 3) Initialize state and run the relaxation loop.
	r := &runner{
		graph:   g,
		options: cfg,
		dist:    make(map[string]int64, g.VertexCount()),
		queue:   pqueue.New(),
	}
	r.init(source)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	graph   *core.Graph      // input graph; read-only here
	options Options          // effective configuration
	dist    map[string]int64 // vertex ID → best known hop count
	queue   *pqueue.Queue    // one live entry per unfinished vertex
}

// init seeds dist and enqueues every vertex: the source at 0, all others at
// Unreachable. Insertion order of the graph drives initialization order.
func (r *runner) init(source string) {
	for id := range r.graph.All() {
		d := pqueue.Unreachable
		if id == source {
			d = 0
		}
		r.dist[id] = d
		r.queue.Insert(pqueue.Item{Priority: d, Key: id})
	}
}

// process repeatedly extracts the closest unfinished vertex and relaxes its
// out-edges until the queue is drained. An extracted vertex's distance is
// final: all edges cost 1, so no later extraction can improve it.
func (r *runner) process() {
	for !r.queue.IsEmpty() {
		current := r.queue.ExtractMin()

		// The minimum is Unreachable: everything still queued lies in an
		// unreachable component (or beyond MaxDistance) and stays as-is.
		if current.Priority == pqueue.Unreachable {
			return
		}

		r.relax(current.Key, current.Priority)
	}
}

// relax offers distance d+1 to every out-neighbor of u, updating the
// distance map and the neighbor's live queue entry on improvement.
func (r *runner) relax(u string, d int64) {
	// u came off the queue, which only ever holds graph vertices.
	nbrs, _ := r.graph.Neighbors(u)

	var candidate int64
	for _, v := range nbrs {
		candidate = d + 1 // unit edge weight

		// Beyond the exploration cap: leave the neighbor unexplored.
		if candidate > r.options.MaxDistance {
			continue
		}
		if candidate >= r.dist[v] {
			continue
		}

		// Strict improvement: record it and lower v's queue entry in place.
		r.dist[v] = candidate
		r.queue.Update(v, pqueue.Item{Priority: candidate, Key: v})
	}
}
