// Package dijkstra defines the sentinel errors and functional options for
// the unit-weight Dijkstra implementation in dijkstra.go.
package dijkstra

import (
	"errors"

	"github.com/mkovel/unigraph/pqueue"
)

// Unreachable is the distance reported for vertices with no directed route
// from the source. Aliased from pqueue so callers only import this package.
const Unreachable = pqueue.Unreachable

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist in
	// the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that WithMaxDistance was given a negative
	// value, which is not meaningful for a hop-count threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
//
// MaxDistance caps exploration: vertices whose distance would exceed it are
// left at Unreachable. The default Unreachable means no cap.
type Options struct {
	MaxDistance int64
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance limits exploration to vertices within max hops of the
// source. Panics with ErrBadMaxDistance on a negative value; invalid
// configuration is a programming error caught at option-construction time.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// defaultOptions returns the Options used when no Option overrides them.
func defaultOptions() Options {
	return Options{MaxDistance: Unreachable}
}
