// Package shortestpath is the weighted shortest-path oracle consumed by the
// router. The engine core never implements path search itself — it talks to
// the Finder interface, so Dijkstra, A*, or a bidirectional search can be
// swapped in without touching any routing code.
//
// Overview:
//
//   - Finder.ShortestPath(g, from, to, weight) returns the node sequence of
//     a minimum-cost path and its total cost under the supplied per-edge
//     weight function, or ErrNoPath when the target is unreachable.
//   - Dijkstra is the default Finder: a min-heap implementation with the
//     lazy-decrease-key strategy (duplicates are pushed and stale entries
//     ignored on pop). Heap ties break on node ID, and edges relax in
//     insertion order, so results are fully deterministic.
//   - Weight functions must be non-negative; a negative weight surfaces as
//     ErrNegativeWeight during relaxation.
//
// Key features:
//
//   - WeightByLength routes by raw physical length — the recovery weighting
//     used by the dense fallback router.
//   - WithMaxCost(c) abandons exploration beyond a cost budget, bounding
//     oracle work on large graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per query under lazy decrease-key.
//   - Space: O(V + E) for the distance/predecessor maps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph       — nil graph passed to ShortestPath.
//   - ErrNilWeight      — nil weight function.
//   - ErrNodeNotFound   — source or target absent from the graph.
//   - ErrNoPath         — target unreachable from source.
//   - ErrNegativeWeight — the weight function produced a negative value.
//
// A query from a node to itself succeeds trivially with the single-node path
// and zero cost.
package shortestpath
