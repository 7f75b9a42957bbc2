// Package dredaline fits a decorative 2-D template shape onto a real
// pedestrian street network, producing a runnable route that resembles the
// shape, starts near a given point, and matches a target distance — plus
// turn-by-turn guidance for the final route.
//
// 🏃 What is DreDaline?
//
//	A route-art engine built from small, composable packages:
//		• geom        — polyline utilities: arc length, densify/thin, bearings,
//		                planar↔geographic conversion
//		• streetgraph — the pedestrian network: nodes, multi-edges, nearest-node snap
//		• shortestpath— the weighted shortest-path oracle (Dijkstra by default)
//		• placement   — drop the template onto the map, pull it toward the start
//		• costmodel   — shape-affinity edge costs (near the shape = cheap)
//		• router      — anchor-based path stitching with a dense fallback
//		• scalefit    — binary-search scale fitting toward the target distance
//		• guidance    — turns, straights, checkpoints, progress and arrival events
//
// Pipeline:
//
//	placement → costmodel → router
//	     ↑__________________|   (repeated by scalefit's binary search)
//	scalefit → FitResult → guidance → navigation script
//
// Every fitting run is synchronous and deterministic: the same graph,
// template and options always produce the same route. Shape costs live in a
// per-run value map, so concurrent fits may share one street graph.
//
// Dive into each package's doc.go for contracts, complexity and error
// taxonomy.
package dredaline
