package streetgraph

import (
	"fmt"
	"math"
	"sync"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
)

// Graph is a directed multigraph over planar street nodes.
// Construction is mutex-guarded; all read accessors take the read lock, so
// a fully-built Graph serves any number of concurrent readers.
type Graph struct {
	mu    sync.RWMutex
	nodes map[NodeID]*Node
	order []NodeID // node IDs in insertion order, for deterministic scans
	edges []*Edge  // EdgeID indexes into this slice
	out   map[NodeID][]*Edge
}

// NewGraph returns an empty street graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		out:   make(map[NodeID][]*Edge),
	}
}

// AddNode registers a node with its planar position.
// Returns ErrDuplicateNode if the ID is already present.
func (g *Graph) AddNode(id NodeID, pos curve.Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Pos: pos}
	g.order = append(g.order, id)

	return nil
}

// AddEdge adds one directed edge from → to and returns its EdgeID.
// Both endpoints must already exist; length must be a non-negative number.
func (g *Graph) AddEdge(from, to NodeID, length float64, opts ...EdgeOption) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if length < 0 || math.IsNaN(length) {
		return 0, fmt.Errorf("%w: %v", ErrBadLength, length)
	}

	e := &Edge{
		ID:     EdgeID(len(g.edges)),
		From:   from,
		To:     to,
		Length: length,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)

	return e.ID, nil
}

// AddBidirectional adds the two directed edges of a two-way street and
// returns both IDs. Pedestrian networks are mostly two-way, so this is the
// usual construction call.
func (g *Graph) AddBidirectional(a, b NodeID, length float64, opts ...EdgeOption) (EdgeID, EdgeID, error) {
	ab, err := g.AddEdge(a, b, length, opts...)
	if err != nil {
		return 0, 0, err
	}
	ba, err := g.AddEdge(b, a, length, opts...)
	if err != nil {
		return 0, 0, err
	}

	return ab, ba, nil
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns all edges in EdgeID order. The returned slice is a copy;
// the *Edge values are shared and must be treated as read-only.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns the edges leaving the node, in insertion order.
// Unknown nodes yield an empty slice.
func (g *Graph) OutEdges(id NodeID) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	es := g.out[id]
	out := make([]*Edge, len(es))
	copy(out, es)

	return out
}

// EdgeGeometry resolves the edge's polyline: the provider-supplied geometry
// when present, otherwise a straight segment between the endpoint positions.
func (g *Graph) EdgeGeometry(e *Edge) geom.Polyline {
	if len(e.Geometry) >= 2 {
		return e.Geometry
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, okF := g.nodes[e.From]
	to, okT := g.nodes[e.To]
	if !okF || !okT {
		return nil
	}

	return geom.Polyline{from.Pos, to.Pos}
}

// Position returns the planar position of a node, or ErrNodeNotFound.
func (g *Graph) Position(id NodeID) (curve.Point, error) {
	n, err := g.Node(id)
	if err != nil {
		return curve.Point{}, err
	}

	return n.Pos, nil
}

// Bounds returns the axis-aligned bounding box of all node positions.
// An empty graph returns the zero rectangle.
func (g *Graph) Bounds() curve.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) == 0 {
		return curve.Rect{}
	}
	first := g.nodes[g.order[0]].Pos
	r := curve.NewRectFromPoints(first, first)
	for _, id := range g.order[1:] {
		r = r.UnionPoint(g.nodes[id].Pos)
	}

	return r
}

// NearestNode snaps a planar point to the closest node by Euclidean
// distance, returning the node ID and the distance in meters.
// Ties keep the earliest-inserted node, so snapping is deterministic.
func (g *Graph) NearestNode(pt curve.Point) (NodeID, float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) == 0 {
		return 0, 0, ErrNoNodes
	}
	bestID := g.order[0]
	bestD2 := g.nodes[bestID].Pos.DistanceSquared(pt)
	for _, id := range g.order[1:] {
		if d2 := g.nodes[id].Pos.DistanceSquared(pt); d2 < bestD2 {
			bestID, bestD2 = id, d2
		}
	}

	return bestID, math.Sqrt(bestD2), nil
}
