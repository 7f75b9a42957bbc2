// Package geom defines the Polyline type for the geometry utilities of the
// engine. Every operation is total: degenerate inputs get explicit zero or
// identity fallbacks instead of errors.
package geom

import (
	"honnef.co/go/curve"
)

// coincidentTol is the floating tolerance under which two consecutive
// vertices count as identical.
const coincidentTol = 1e-9

// Polyline is an ordered, open sequence of planar points (meters).
// It is never implicitly closed; a closed shape carries its first vertex
// again as its last.
type Polyline []curve.Point

// Clone returns an independent copy of the polyline.
func (p Polyline) Clone() Polyline {
	out := make(Polyline, len(p))
	copy(out, p)

	return out
}
