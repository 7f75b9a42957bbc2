// Package costmodel computes the shape-affinity weights that bias routing
// toward the placed template.
//
// For every edge, the model takes the edge's geometry midpoint, measures its
// minimum distance to the template polyline, and derives
//
//	cost = length × (1 + λ·distance)
//
// so edges hugging the shape cost roughly their physical length while edges
// far from it are penalized in proportion to both their own length and their
// distance. λ = 0 degenerates to ordinary shortest-path-by-length. A pure
// nearest-edge greedy selection would not yield a connected path; the
// multiplicative bias keeps the whole graph routable while still tracing the
// shape.
//
// Costs are returned as a per-run value map keyed by EdgeID — the street
// graph itself is never annotated, so concurrent fitting runs can share one
// graph, and a stale cost from a previous trial scale cannot leak into the
// next (the scale fitter rebuilds the map at every trial).
//
// Complexity: O(E·S) where S is the template vertex count (each midpoint
// scans the template's segments).
package costmodel
