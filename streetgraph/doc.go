// Package streetgraph holds the pedestrian street network the engine routes
// over: a directed multigraph whose nodes carry planar coordinates and whose
// edges carry a physical length in meters plus an optional detailed geometry
// polyline.
//
// The graph is supplied by an external provider (OSM extraction, database,
// fixtures); the engine itself never creates or deletes nodes and edges
// during a fitting run — it only reads. All shape-affinity costs live in a
// separate per-run value map (see package costmodel), so one Graph instance
// may safely serve concurrent fitting runs.
//
// Key operations:
//
//   - AddNode / AddEdge / AddBidirectional — construction, guarded by a
//     mutex so providers may build concurrently.
//   - OutEdges — adjacency in insertion order (deterministic relaxation
//     order for the shortest-path oracle).
//   - EdgeGeometry — the edge's polyline, or a synthesized straight segment
//     between its endpoints when the provider supplied none.
//   - NearestNode — Euclidean nearest-neighbor snap over node coordinates,
//     linear scan in insertion order (ties keep the earliest node, so
//     snapping is deterministic).
//
// Errors are sentinel values declared in types.go.
package streetgraph
