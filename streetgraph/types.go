// Package streetgraph defines the network types and sentinel errors.
package streetgraph

import (
	"errors"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
)

// Sentinel errors for street-graph operations.
var (
	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("streetgraph: node ID already present")

	// ErrNodeNotFound indicates a referenced node ID does not exist.
	ErrNodeNotFound = errors.New("streetgraph: node not found")

	// ErrBadLength indicates an edge length that is negative or NaN.
	ErrBadLength = errors.New("streetgraph: edge length must be non-negative")

	// ErrNoNodes indicates a nearest-node query against an empty graph.
	ErrNoNodes = errors.New("streetgraph: graph has no nodes")
)

// NodeID identifies a network node (OSM node IDs fit here).
type NodeID int64

// EdgeID identifies an edge within one Graph; IDs are assigned densely in
// insertion order, which makes them usable as keys of a per-run cost map.
type EdgeID int

// Node is a network junction with its planar position (meters).
type Node struct {
	ID  NodeID
	Pos curve.Point
}

// Edge is one directed street segment.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Length float64 // physical length in meters

	// Geometry is the detailed polyline of the street segment, when the
	// provider has one. Nil means a straight line between the endpoints;
	// use Graph.EdgeGeometry to resolve it either way.
	Geometry geom.Polyline
}

// EdgeOption customizes a single AddEdge call.
type EdgeOption func(*Edge)

// WithGeometry attaches a detailed geometry polyline to the edge. The
// polyline is copied, so the caller may reuse or mutate its slice.
func WithGeometry(p geom.Polyline) EdgeOption {
	return func(e *Edge) {
		e.Geometry = p.Clone()
	}
}
