// Package guidance converts a routed polyline into an ordered sequence of
// turn-by-turn instructions: measurement happens in the planar meter frame,
// emission in geographic coordinates through geom.Projection.
//
// Pipeline (Extract):
//
//  1. Cumulative arc-length at every vertex; per-segment bearings
//     (compass-style: degrees from north, clockwise positive).
//  2. Turn/straight scan over the interior vertices, tracking the bearing of
//     the last emitted event. A bearing change of at least MinTurnDeg emits
//     a Turn, classified by magnitude band (slight / normal / sharp /
//     u-turn); smaller changes accumulate distance and emit a Straight every
//     StraightIntervalM meters.
//  3. One Checkpoint per completed kilometer, snapped to the first vertex at
//     or past the km boundary (binary scan over the cumulative table).
//  4. Progress marks at 30 / 50 / 80% of total length, suppressed when the
//     snapped vertex already sits within the arrival window.
//  5. A single terminal Arrive at the last vertex.
//  6. Merge, stable-sort by distance-from-start, fill distance-to-next.
//  7. Expand turns into concrete instances: a slight turn gets one confirm
//     instruction; normal, sharp and u-turns additionally get a 50 m
//     "upcoming" warning. Everything else maps one-to-one. Sequence numbers
//     follow expansion order, which preserves the distance sort.
//
// Complexity: O(n + k·log n) for n route vertices and k kilometer marks.
// Extract never fails on geometry — a route with fewer than two vertices
// yields an empty Script; ErrBadOptions is the only error.
package guidance
