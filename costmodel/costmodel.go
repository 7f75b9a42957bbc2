// Package costmodel derives shape-biased edge weights; see doc.go.
package costmodel

import (
	"errors"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/shortestpath"
	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// Sentinel errors for cost computation.
var (
	// ErrNilGraph indicates a nil street graph.
	ErrNilGraph = errors.New("costmodel: graph is nil")

	// ErrNegativeLambda indicates a negative shape-bias λ.
	ErrNegativeLambda = errors.New("costmodel: lambda must be non-negative")
)

// EdgeCosts is one fitting run's shape-affinity weight per edge.
// It is a plain value owned by the run that computed it.
type EdgeCosts map[streetgraph.EdgeID]float64

// ShapeCosts computes the shape-biased cost of every edge in the graph
// against the given template polyline:
//
//	cost(e) = e.Length × (1 + lambda × dist(midpoint(e), shape))
//
// The midpoint is taken at half the arc length of the edge's geometry
// (synthesized straight geometry for bare edges). For any non-negative
// lambda, cost(e) ≥ e.Length, with equality exactly when the midpoint lies
// on the shape.
func ShapeCosts(g *streetgraph.Graph, shape geom.Polyline, lambda float64) (EdgeCosts, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if lambda < 0 {
		return nil, ErrNegativeLambda
	}

	costs := make(EdgeCosts, g.EdgeCount())
	for _, e := range g.Edges() {
		mid := g.EdgeGeometry(e).Interpolate(0.5)
		dist := shape.DistanceTo(mid)
		costs[e.ID] = e.Length * (1 + lambda*dist)
	}

	return costs, nil
}

// Weight adapts the cost map into the oracle's weight-function shape.
// Edges missing from the map fall back to their physical length, which can
// only happen when the graph grew after the map was computed.
func (c EdgeCosts) Weight() shortestpath.Weight {
	return func(e *streetgraph.Edge) float64 {
		if w, ok := c[e.ID]; ok {
			return w
		}

		return e.Length
	}
}
