// Package shortestpath defines the oracle interface, weight functions,
// options and sentinel errors for path search over a street graph.
package shortestpath

import (
	"errors"
	"math"

	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// Sentinel errors returned by Finder implementations.
var (
	// ErrNilGraph indicates a nil *streetgraph.Graph was passed.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrNilWeight indicates a nil weight function was passed.
	ErrNilWeight = errors.New("shortestpath: weight function is nil")

	// ErrNodeNotFound indicates the source or target node does not exist.
	ErrNodeNotFound = errors.New("shortestpath: node not found in graph")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("shortestpath: no path between nodes")

	// ErrNegativeWeight indicates the weight function produced a negative
	// value, which Dijkstra cannot handle.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrBadMaxCost indicates WithMaxCost was given a negative budget.
	ErrBadMaxCost = errors.New("shortestpath: MaxCost must be non-negative")
)

// Weight maps one directed edge to its traversal cost. Implementations must
// return non-negative finite values.
type Weight func(e *streetgraph.Edge) float64

// WeightByLength routes by raw physical edge length (meters).
func WeightByLength(e *streetgraph.Edge) float64 { return e.Length }

// Finder is the shortest-path oracle. It returns the node sequence from
// from to to (inclusive of both) and the total cost under w, or ErrNoPath.
type Finder interface {
	ShortestPath(g *streetgraph.Graph, from, to streetgraph.NodeID, w Weight) ([]streetgraph.NodeID, float64, error)
}

// Options configures a Dijkstra instance.
//
// MaxCost – abandon exploration once the cheapest frontier entry exceeds
// this budget. Default is +Inf (no cap).
type Options struct {
	MaxCost float64
}

// Option is a functional option for NewDijkstra.
type Option func(*Options)

// WithMaxCost caps the explored cost radius. Must be non-negative; negative
// values panic with ErrBadMaxCost (invalid configuration, caught early).
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// DefaultOptions returns the zero-surprise defaults: no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
