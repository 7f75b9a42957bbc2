package router

import (
	"errors"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/shortestpath"
	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// Router stitches template-derived target points into network paths via a
// shortest-path oracle. A Router is stateless and safe for concurrent use.
type Router struct {
	finder shortestpath.Finder
}

// New builds a Router over the given oracle.
func New(finder shortestpath.Finder) (*Router, error) {
	if finder == nil {
		return nil, ErrNilFinder
	}

	return &Router{finder: finder}, nil
}

// Route runs the configured primary strategy and falls back to dense routing
// by raw length when the primary yields no route at all.
//
// shapeWeight is the shape-biased weight for the primary attempt (see
// package costmodel); the recovery attempt always routes by physical length.
func (r *Router) Route(g *streetgraph.Graph, shape geom.Polyline, start *curve.Point, shapeWeight shortestpath.Weight, opt Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if shapeWeight == nil {
		return nil, ErrNilWeight
	}

	var (
		res *Result
		err error
	)
	if opt.UseAnchors {
		res, err = r.RouteAnchors(g, shape, start, shapeWeight, opt)
	} else {
		res, err = r.RouteDense(g, shape, start, shapeWeight, opt)
	}
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrNoRoute) {
		return nil, err
	}

	// Recovery: dense stitching by raw length. Not shape-preserving — it
	// exists to hand the scale fitter a measurable length.
	return r.RouteDense(g, shape, start, shortestpath.WeightByLength, opt)
}

// RouteAnchors samples opt.AnchorCount+1 anchors at equal arc-length
// fractions of the shape, snaps them, optionally connects the start node
// through a capped connector hop, optionally closes back to the start, and
// stitches every consecutive pair with w.
func (r *Router) RouteAnchors(g *streetgraph.Graph, shape geom.Polyline, start *curve.Point, w shortestpath.Weight, opt Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeight
	}
	if opt.AnchorCount < 2 {
		return nil, ErrBadAnchorCount
	}

	n := opt.AnchorCount
	anchors := make([]curve.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		anchors = append(anchors, shape.Interpolate(float64(i)/float64(n)))
	}
	anchorNids, err := r.snap(g, anchors)
	if err != nil {
		return nil, err
	}

	var seq []streetgraph.NodeID

	// Connector: one capped hop from the start node to the nearest anchor.
	if start != nil && opt.ConnectFromStart && len(anchorNids) > 0 {
		startNid, _, err := g.NearestNode(*start)
		if err != nil {
			return nil, err
		}
		k, gap := nearestAnchor(g, anchorNids, *start)
		if gap <= opt.MaxConnectorM {
			seq = append(seq, startNid)
			if startNid != anchorNids[k] {
				seq = append(seq, anchorNids[k])
			}
		}
		// Too far: leave the start unconnected, the shape stays intact.
	}

	seq = append(seq, anchorNids...)

	if opt.ReturnToStart && start != nil && len(seq) > 0 {
		startNid, _, err := g.NearestNode(*start)
		if err != nil {
			return nil, err
		}
		if seq[len(seq)-1] != startNid {
			seq = append(seq, startNid)
		}
	}

	return r.stitch(g, seq, w)
}

// RouteDense densifies the shape into waypoints at SampleStepM spacing,
// thins them below MinGapM, optionally brackets them with the start point,
// snaps and stitches with w.
func (r *Router) RouteDense(g *streetgraph.Graph, shape geom.Polyline, start *curve.Point, w shortestpath.Weight, opt Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeight
	}
	if opt.SampleStepM <= 0 {
		return nil, ErrBadStep
	}

	wps := geom.Thin(geom.Densify(shape, opt.SampleStepM), opt.MinGapM)
	if opt.ReturnToStart && start != nil {
		bracketed := make([]curve.Point, 0, len(wps)+2)
		bracketed = append(bracketed, *start)
		bracketed = append(bracketed, wps...)
		bracketed = append(bracketed, *start)
		wps = bracketed
	}

	seq, err := r.snap(g, wps)
	if err != nil {
		return nil, err
	}

	return r.stitch(g, seq, w)
}

// snap maps each point to its nearest node, collapsing consecutive
// duplicates.
func (r *Router) snap(g *streetgraph.Graph, pts []curve.Point) ([]streetgraph.NodeID, error) {
	out := make([]streetgraph.NodeID, 0, len(pts))
	for _, p := range pts {
		nid, _, err := g.NearestNode(p)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1] != nid {
			out = append(out, nid)
		}
	}

	return out, nil
}

// nearestAnchor returns the index of the snapped anchor node closest to pt
// and that distance. Ties keep the earliest anchor.
func nearestAnchor(g *streetgraph.Graph, anchorNids []streetgraph.NodeID, pt curve.Point) (int, float64) {
	best, bestD := 0, -1.0
	for i, nid := range anchorNids {
		pos, err := g.Position(nid)
		if err != nil {
			continue
		}
		if d := pos.Distance(pt); bestD < 0 || d < bestD {
			best, bestD = i, d
		}
	}

	return best, bestD
}

// stitch runs the oracle over every consecutive pair of the sequence and
// concatenates the results, de-duplicating the shared boundary node. Hops
// with no path are skipped; a result that traverses zero edges — every hop
// skipped or degenerate — is ErrNoRoute.
func (r *Router) stitch(g *streetgraph.Graph, seq []streetgraph.NodeID, w shortestpath.Weight) (*Result, error) {
	var nodes []streetgraph.NodeID
	edges := 0
	for i := 1; i < len(seq); i++ {
		sp, _, err := r.finder.ShortestPath(g, seq[i-1], seq[i], w)
		if err != nil {
			if errors.Is(err, shortestpath.ErrNoPath) {
				continue // partial disconnection: omit the hop
			}

			return nil, err
		}
		if len(sp) >= 2 {
			edges += len(sp) - 1
		}
		if len(nodes) > 0 && nodes[len(nodes)-1] == sp[0] {
			sp = sp[1:]
		}
		nodes = append(nodes, sp...)
	}
	if edges == 0 {
		return nil, ErrNoRoute
	}

	line := make(geom.Polyline, len(nodes))
	for i, nid := range nodes {
		pos, err := g.Position(nid)
		if err != nil {
			return nil, err
		}
		line[i] = pos
	}

	return &Result{Nodes: nodes, Line: line, Length: line.Length()}, nil
}
