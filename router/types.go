// Package router defines routing options, the route result, and sentinel
// errors.
package router

import (
	"errors"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// Sentinel errors for routing.
var (
	// ErrNilFinder indicates the router was built without an oracle.
	ErrNilFinder = errors.New("router: shortest-path finder is nil")

	// ErrNilGraph indicates a nil street graph.
	ErrNilGraph = errors.New("router: graph is nil")

	// ErrNilWeight indicates a nil weight function.
	ErrNilWeight = errors.New("router: weight function is nil")

	// ErrBadAnchorCount indicates an anchor count below two.
	ErrBadAnchorCount = errors.New("router: anchor count must be at least 2")

	// ErrBadStep indicates a non-positive dense sampling step.
	ErrBadStep = errors.New("router: sample step must be positive")

	// ErrNoRoute indicates the stitched sequence produced zero nodes.
	ErrNoRoute = errors.New("router: no route through the network")
)

// Options selects the strategy and its tuning knobs. The zero value is not
// usable; start from scalefit.DefaultOptions or fill every field.
type Options struct {
	UseAnchors       bool    // anchor strategy first, dense as fallback
	AnchorCount      int     // n equal arc-length divisions → n+1 anchors
	ConnectFromStart bool    // prepend the start→nearest-anchor connector
	MaxConnectorM    float64 // connector cap; farther anchors stay unconnected
	ReturnToStart    bool    // close the route back at the start node
	SampleStepM      float64 // dense strategy: waypoint spacing
	MinGapM          float64 // dense strategy: minimum waypoint gap
}

// Result is one routing invocation's outcome: the stitched node sequence,
// the polyline over those nodes' coordinates, and its total length in
// meters. It is owned by the invocation that produced it.
type Result struct {
	Nodes  []streetgraph.NodeID
	Line   geom.Polyline
	Length float64
}
