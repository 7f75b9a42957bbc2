// Package placement positions the normalized template shape inside the
// street network's spatial extent and nudges it toward the requested start
// point.
//
// Operations:
//
//   - Place — scales the template so its bounding box occupies a fraction of
//     the target box's width and height, rotates it about its centroid, and
//     translates it into position. Width and height scale independently:
//     the shape is allowed to stretch so it fills the available canvas.
//   - PullToward — translates the template's centroid toward the start point
//     by a fraction alpha of the gap, with the absolute displacement capped
//     at maxShift meters. A centroid already on the start point moves by
//     exactly zero.
//   - ScaleAbout — uniform scaling about the template's own centroid; the
//     scale fitter calls this at every trial scale.
//
// All operations return new polylines; inputs are never mutated.
package placement
