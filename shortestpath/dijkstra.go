package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// Dijkstra is the default Finder: classic Dijkstra over non-negative edge
// weights with a lazy-decrease-key min-heap. A single instance is stateless
// between queries and safe for concurrent use.
type Dijkstra struct {
	opts Options
}

// NewDijkstra builds a Dijkstra finder with the given options.
func NewDijkstra(opts ...Option) *Dijkstra {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dijkstra{opts: cfg}
}

// compile-time interface check
var _ Finder = (*Dijkstra)(nil)

// ShortestPath returns the minimum-cost node sequence from from to to under
// the weight function w.
//
// Validation order: nil graph, nil weight, source exists, target exists.
// A from == to query returns the single-node path with zero cost.
func (d *Dijkstra) ShortestPath(g *streetgraph.Graph, from, to streetgraph.NodeID, w Weight) ([]streetgraph.NodeID, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if w == nil {
		return nil, 0, ErrNilWeight
	}
	if !g.HasNode(from) {
		return nil, 0, fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return nil, 0, fmt.Errorf("%w: target %d", ErrNodeNotFound, to)
	}
	if from == to {
		return []streetgraph.NodeID{from}, 0, nil
	}

	r := &runner{
		g:       g,
		weight:  w,
		maxCost: d.opts.MaxCost,
		dist:    map[streetgraph.NodeID]float64{from: 0},
		prev:    make(map[streetgraph.NodeID]streetgraph.NodeID),
		visited: make(map[streetgraph.NodeID]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, costItem{id: from, cost: 0})

	if err := r.process(to); err != nil {
		return nil, 0, err
	}

	total, ok := r.dist[to]
	if !ok || !r.visited[to] {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	// Rebuild the node sequence by walking predecessors back to the source.
	var path []streetgraph.NodeID
	for at := to; ; {
		path = append(path, at)
		if at == from {
			break
		}
		at = r.prev[at]
	}
	for l, rr := 0, len(path)-1; l < rr; l, rr = l+1, rr-1 {
		path[l], path[rr] = path[rr], path[l]
	}

	return path, total, nil
}

// runner holds the mutable state of one query.
type runner struct {
	g       *streetgraph.Graph
	weight  Weight
	maxCost float64
	dist    map[streetgraph.NodeID]float64
	prev    map[streetgraph.NodeID]streetgraph.NodeID
	visited map[streetgraph.NodeID]bool
	pq      costPQ
}

// process runs the main loop until the target is finalized, the frontier
// empties, or the cost budget is exceeded.
func (r *runner) process(target streetgraph.NodeID) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(costItem)
		u := item.id
		if r.visited[u] {
			continue // stale lazy-decrease-key entry
		}
		if item.cost > r.maxCost {
			break
		}
		r.visited[u] = true
		if u == target {
			break // target finalized; nothing cheaper can appear
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u streetgraph.NodeID) error {
	du := r.dist[u]
	for _, e := range r.g.OutEdges(u) {
		w := r.weight(e)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}
		if math.IsInf(w, 1) {
			continue // impassable
		}
		nd := du + w
		if nd > r.maxCost {
			continue
		}
		if cur, ok := r.dist[e.To]; ok && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, costItem{id: e.To, cost: nd})
	}

	return nil
}

// costItem is one frontier entry: a node and its tentative cost.
type costItem struct {
	id   streetgraph.NodeID
	cost float64
}

// costPQ is a min-heap of costItem ordered by cost, then node ID.
// The ID tie-break keeps pop order independent of heap internals, so equal-
// cost routes resolve the same way on every run.
type costPQ []costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x any) { *pq = append(*pq, x.(costItem)) }

func (pq *costPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
