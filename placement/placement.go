// Package placement maps the template into graph space; see doc.go.
package placement

import (
	"errors"
	"math"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
)

// Sentinel errors for placement operations.
var (
	// ErrEmptyTemplate indicates a template with fewer than two vertices.
	ErrEmptyTemplate = errors.New("placement: template needs at least two vertices")

	// ErrBadCanvasFrac indicates a canvas fraction outside (0, 1].
	ErrBadCanvasFrac = errors.New("placement: canvas fraction must be in (0, 1]")
)

// centroidEps is the gap below which the template centroid counts as already
// sitting on the start point.
const centroidEps = 1e-9

// Place fits the template into the target bounding box: the template is
// normalized by its own bounds, scaled (independently per axis) so its box
// covers canvasFrac of the target box's width and height, centered inside
// the target box, then rotated by rotationDeg about its centroid.
func Place(template geom.Polyline, bounds curve.Rect, canvasFrac, rotationDeg float64) (geom.Polyline, error) {
	if len(template) < 2 {
		return nil, ErrEmptyTemplate
	}
	if canvasFrac <= 0 || canvasFrac > 1 {
		return nil, ErrBadCanvasFrac
	}

	tb := template.Bounds()
	spanX, spanY := tb.Width(), tb.Height()
	// A template flat on one axis keeps that axis unscaled.
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	w, h := bounds.Width(), bounds.Height()
	// Origin and size of the canvas sub-box, centered inside bounds.
	cx := bounds.MinX() + (1-canvasFrac)*0.5*w
	cy := bounds.MinY() + (1-canvasFrac)*0.5*h
	cw := w * canvasFrac
	ch := h * canvasFrac

	placed := make(geom.Polyline, len(template))
	for i, pt := range template {
		nx := (pt.X - tb.MinX()) / spanX
		ny := (pt.Y - tb.MinY()) / spanY
		placed[i] = curve.Pt(cx+nx*cw, cy+ny*ch)
	}

	if rotationDeg != 0 {
		aff := curve.RotateAbout(rotationDeg*math.Pi/180, placed.Centroid())
		placed = placed.Transform(aff)
	}

	return placed, nil
}

// PullToward translates the template so its centroid moves toward start by
// min(alpha, maxShift/gap) of the gap vector: a linear pull whose absolute
// displacement never exceeds maxShift meters. A coincident centroid yields
// the identity.
func PullToward(template geom.Polyline, start curve.Point, alpha, maxShift float64) geom.Polyline {
	c := template.Centroid()
	v := start.Sub(c)
	mag := v.Hypot()

	var scale float64
	if mag > centroidEps {
		scale = math.Min(alpha, maxShift/mag)
	}

	return template.Transform(curve.Translate(v.Mul(scale)))
}

// ScaleAbout scales the template uniformly by factor about its own centroid.
func ScaleAbout(template geom.Polyline, factor float64) geom.Polyline {
	c := curve.Vec2(template.Centroid())
	aff := curve.Translate(c).Mul(curve.Scale(factor, factor)).Mul(curve.Translate(c.Mul(-1)))

	return template.Transform(aff)
}
