// Package geom provides the planar geometry primitives shared by the whole
// engine: open polylines over curve.Point, arc-length measurement and
// interpolation, densify/thin resampling, compass bearings with angle
// normalization, and a small equirectangular planar↔geographic converter.
//
// Conventions:
//
//   - Coordinates are meters in a local planar system (x east, y north).
//   - A Polyline is an ordered, open sequence of ≥2 points; degenerate
//     inputs never panic — measurements collapse to zero and interpolation
//     returns the nearest existing vertex.
//   - Bearings are compass-style: degrees clockwise from +y (north), i.e.
//     atan2(dx, dy), normalized into (-180°, 180°].
//
// All functions are pure; nothing in this package holds state.
//
// Complexity: every operation is a single pass over the polyline, O(n) in the
// number of vertices, except Polyline.DistanceTo which scans all segments.
package geom
