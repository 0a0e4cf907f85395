// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that no source vertex was supplied.
	ErrNoSource = errors.New("dijkstra: no source vertex")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates a graph not configured for weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates a source vertex absent from the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures Dijkstra.
//
// Sources     – starting vertices; all start at distance 0.
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – vertices farther than this are left at +Inf. Default +Inf.
// FilterEdge  – edges for which it returns false are impassable.
type Options struct {
	Sources     []string
	ReturnPath  bool
	MaxDistance float64
	FilterEdge  func(from, to string, weight float64) bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source adds one starting vertex. May be repeated.
func Source(id string) Option {
	return func(o *Options) { o.Sources = append(o.Sources, id) }
}

// Sources adds several starting vertices at once.
func Sources(ids ...string) Option {
	return func(o *Options) { o.Sources = append(o.Sources, ids...) }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the explored distance; it must be ≥ 0.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithFilterEdge skips every edge for which fn returns false.
func WithFilterEdge(fn func(from, to string, weight float64) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// DefaultOptions returns Options with no sources, no path output, no
// distance cap and every edge passable.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		FilterEdge:  func(string, string, float64) bool { return true },
	}
}
