package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/costmodel"
	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/router"
	"github.com/AI-DreDaline/AI-DreDaline-AI/shortestpath"
	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// avenue builds a straight four-node street along y=0: 1—2—3—4, 100m hops.
func avenue(t *testing.T) *streetgraph.Graph {
	t.Helper()
	g := streetgraph.NewGraph()
	for i := int64(1); i <= 4; i++ {
		require.NoError(t, g.AddNode(streetgraph.NodeID(i), curve.Pt(float64(i-1)*100, 0)))
	}
	for i := int64(1); i < 4; i++ {
		_, _, err := g.AddBidirectional(streetgraph.NodeID(i), streetgraph.NodeID(i+1), 100)
		require.NoError(t, err)
	}

	return g
}

func newRouter(t *testing.T) *router.Router {
	t.Helper()
	r, err := router.New(shortestpath.NewDijkstra())
	require.NoError(t, err)

	return r
}

func anchorOpts() router.Options {
	return router.Options{
		UseAnchors:       true,
		AnchorCount:      3,
		ConnectFromStart: false,
		MaxConnectorM:    450,
		ReturnToStart:    false,
		SampleStepM:      60,
		MinGapM:          12,
	}
}

func TestNew_NilFinder(t *testing.T) {
	_, err := router.New(nil)
	assert.ErrorIs(t, err, router.ErrNilFinder)
}

// TestRouteAnchors_TracesShape: anchors along a straight template snap onto
// the avenue and stitch into the full street.
func TestRouteAnchors_TracesShape(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}

	res, err := newRouter(t).RouteAnchors(g, shape, nil, shortestpath.WeightByLength, anchorOpts())
	require.NoError(t, err)
	assert.Equal(t, []streetgraph.NodeID{1, 2, 3, 4}, res.Nodes)
	assert.Equal(t, 300.0, res.Length)
}

func TestRouteAnchors_Validation(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}
	r := newRouter(t)

	opt := anchorOpts()
	opt.AnchorCount = 1
	_, err := r.RouteAnchors(g, shape, nil, shortestpath.WeightByLength, opt)
	assert.ErrorIs(t, err, router.ErrBadAnchorCount)

	_, err = r.RouteAnchors(nil, shape, nil, shortestpath.WeightByLength, anchorOpts())
	assert.ErrorIs(t, err, router.ErrNilGraph)

	_, err = r.RouteAnchors(g, shape, nil, nil, anchorOpts())
	assert.ErrorIs(t, err, router.ErrNilWeight)
}

// TestRouteAnchors_ReturnToStart verifies the closing hop doubles back to
// the start node.
func TestRouteAnchors_ReturnToStart(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}
	start := curve.Pt(0, 30) // snaps to node 1

	opt := anchorOpts()
	opt.ReturnToStart = true
	res, err := newRouter(t).RouteAnchors(g, shape, &start, shortestpath.WeightByLength, opt)
	require.NoError(t, err)
	assert.Equal(t, []streetgraph.NodeID{1, 2, 3, 4, 3, 2, 1}, res.Nodes)
	assert.Equal(t, 600.0, res.Length)
}

// TestRouteAnchors_ConnectorCap verifies the start connector is prepended
// within the cap and omitted beyond it.
func TestRouteAnchors_ConnectorCap(t *testing.T) {
	g := avenue(t)
	require.NoError(t, g.AddNode(9, curve.Pt(150, 400))) // start's own street
	_, _, err := g.AddBidirectional(9, 2, 420)
	require.NoError(t, err)

	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}
	start := curve.Pt(150, 390) // snaps to node 9; nearest anchor ~415m away

	opt := anchorOpts()
	opt.ConnectFromStart = true
	opt.MaxConnectorM = 450
	res, err := newRouter(t).RouteAnchors(g, shape, &start, shortestpath.WeightByLength, opt)
	require.NoError(t, err)
	assert.Equal(t, streetgraph.NodeID(9), res.Nodes[0], "connector hop prepends the start node")
	assert.Contains(t, res.Nodes, streetgraph.NodeID(2))

	// Below the cap the shape is kept unconnected instead.
	opt.MaxConnectorM = 100
	res, err = newRouter(t).RouteAnchors(g, shape, &start, shortestpath.WeightByLength, opt)
	require.NoError(t, err)
	assert.Equal(t, streetgraph.NodeID(1), res.Nodes[0], "no connector: route is the bare shape")
	assert.NotContains(t, res.Nodes, streetgraph.NodeID(9))
}

// TestStitch_SkipsDisconnectedHops verifies partial disconnection degrades
// the route instead of failing it.
func TestStitch_SkipsDisconnectedHops(t *testing.T) {
	g := streetgraph.NewGraph()
	// Two disjoint blocks far apart.
	require.NoError(t, g.AddNode(1, curve.Pt(0, 0)))
	require.NoError(t, g.AddNode(2, curve.Pt(100, 0)))
	require.NoError(t, g.AddNode(10, curve.Pt(1000, 0)))
	require.NoError(t, g.AddNode(11, curve.Pt(1100, 0)))
	_, _, err := g.AddBidirectional(1, 2, 100)
	require.NoError(t, err)
	_, _, err = g.AddBidirectional(10, 11, 100)
	require.NoError(t, err)

	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(1100, 0)}
	opt := anchorOpts()
	opt.AnchorCount = 11

	res, err := newRouter(t).RouteAnchors(g, shape, nil, shortestpath.WeightByLength, opt)
	require.NoError(t, err, "a skipped hop is not a failure")
	assert.Contains(t, res.Nodes, streetgraph.NodeID(2))
	assert.Contains(t, res.Nodes, streetgraph.NodeID(10))
}

// TestRouteAnchors_NoRoute: every anchor snapping to one node leaves nothing
// to stitch.
func TestRouteAnchors_NoRoute(t *testing.T) {
	g := streetgraph.NewGraph()
	require.NoError(t, g.AddNode(1, curve.Pt(0, 0)))

	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}
	_, err := newRouter(t).RouteAnchors(g, shape, nil, shortestpath.WeightByLength, anchorOpts())
	assert.ErrorIs(t, err, router.ErrNoRoute)
}

// TestRoute_NoEdgesIsNoRoute: on an edgeless graph the start connector
// still produces a degenerate same-node hop, but a stitch that traverses
// zero edges must not count as a route.
func TestRoute_NoEdgesIsNoRoute(t *testing.T) {
	g := streetgraph.NewGraph()
	for i, p := range []curve.Point{
		curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(100, 100), curve.Pt(0, 100),
	} {
		require.NoError(t, g.AddNode(streetgraph.NodeID(i), p))
	}

	shape := geom.Polyline{
		curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(100, 100), curve.Pt(0, 100), curve.Pt(0, 0),
	}
	start := curve.Pt(10, 10) // snaps to the same node as the first anchor

	opt := anchorOpts()
	opt.AnchorCount = 4
	opt.ConnectFromStart = true
	res, err := newRouter(t).Route(g, shape, &start, shortestpath.WeightByLength, opt)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, router.ErrNoRoute)
}

// TestRouteDense_BracketsStart verifies dense waypoints and the start
// bracketing on both ends.
func TestRouteDense_BracketsStart(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(100, 0), curve.Pt(300, 0)}
	start := curve.Pt(0, 10) // snaps to node 1

	opt := anchorOpts()
	opt.ReturnToStart = true
	res, err := newRouter(t).RouteDense(g, shape, &start, shortestpath.WeightByLength, opt)
	require.NoError(t, err)
	assert.Equal(t, streetgraph.NodeID(1), res.Nodes[0])
	assert.Equal(t, streetgraph.NodeID(1), res.Nodes[len(res.Nodes)-1])
	assert.Contains(t, res.Nodes, streetgraph.NodeID(4))
}

func TestRouteDense_BadStep(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(0, 0), curve.Pt(300, 0)}

	opt := anchorOpts()
	opt.SampleStepM = 0
	_, err := newRouter(t).RouteDense(g, shape, nil, shortestpath.WeightByLength, opt)
	assert.ErrorIs(t, err, router.ErrBadStep)
}

// lengthOnlyFinder simulates a network where shape-biased stitching finds
// nothing at all: any weight other than raw length reports no path.
type lengthOnlyFinder struct {
	real  shortestpath.Finder
	probe *streetgraph.Edge
}

func (f *lengthOnlyFinder) ShortestPath(g *streetgraph.Graph, from, to streetgraph.NodeID, w shortestpath.Weight) ([]streetgraph.NodeID, float64, error) {
	if w(f.probe) != f.probe.Length {
		return nil, 0, shortestpath.ErrNoPath
	}

	return f.real.ShortestPath(g, from, to, w)
}

// TestRoute_FallsBackToDense: when anchor stitching yields no route, Route
// recovers via dense routing weighted by raw length.
func TestRoute_FallsBackToDense(t *testing.T) {
	g := avenue(t)
	shape := geom.Polyline{curve.Pt(0, 40), curve.Pt(300, 40)} // off-street: biased weight > length

	costs, err := costmodel.ShapeCosts(g, shape, 0.1)
	require.NoError(t, err)

	probe := g.Edges()[0]
	r, err := router.New(&lengthOnlyFinder{real: shortestpath.NewDijkstra(), probe: probe})
	require.NoError(t, err)

	res, err := r.Route(g, shape, nil, costs.Weight(), anchorOpts())
	require.NoError(t, err)
	assert.Equal(t, []streetgraph.NodeID{1, 2, 3, 4}, res.Nodes, "dense fallback still traces the street")
}
