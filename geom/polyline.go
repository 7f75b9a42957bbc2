package geom

import (
	"honnef.co/go/curve"
)

// Length returns the total arc length of the polyline in meters.
// A polyline with fewer than two vertices has zero length.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i-1].Distance(p[i])
	}

	return total
}

// Cumulative returns the running arc length at every vertex, starting at 0.
// len(result) == len(p).
func (p Polyline) Cumulative() []float64 {
	if len(p) == 0 {
		return nil
	}
	cum := make([]float64, len(p))
	for i := 1; i < len(p); i++ {
		cum[i] = cum[i-1] + p[i-1].Distance(p[i])
	}

	return cum
}

// Centroid returns the arc-length-weighted centroid of the polyline
// (each segment's midpoint weighted by its length). A zero-length polyline
// falls back to the plain vertex mean; an empty one returns the origin.
func (p Polyline) Centroid() curve.Point {
	if len(p) == 0 {
		return curve.Point{}
	}
	var sx, sy, total float64
	for i := 1; i < len(p); i++ {
		mid := p[i-1].Midpoint(p[i])
		l := p[i-1].Distance(p[i])
		sx += mid.X * l
		sy += mid.Y * l
		total += l
	}
	if total <= coincidentTol {
		// Degenerate: all vertices coincide (or a single vertex).
		for _, pt := range p {
			sx += pt.X
			sy += pt.Y
		}

		return curve.Pt(sx/float64(len(p)), sy/float64(len(p)))
	}

	return curve.Pt(sx/total, sy/total)
}

// Bounds returns the axis-aligned bounding box of the polyline.
func (p Polyline) Bounds() curve.Rect {
	if len(p) == 0 {
		return curve.Rect{}
	}
	r := curve.NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}

	return r
}

// Transform applies an affine transform to every vertex and returns the
// resulting polyline. The receiver is left untouched.
func (p Polyline) Transform(aff curve.Affine) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}

	return out
}

// Interpolate returns the point at the given fraction of the polyline's
// total arc length. frac is clamped into [0, 1]. An empty polyline returns
// the origin; a single vertex returns itself.
func (p Polyline) Interpolate(frac float64) curve.Point {
	if len(p) == 0 {
		return curve.Point{}
	}
	if frac <= 0 || len(p) == 1 {
		return p[0]
	}
	if frac >= 1 {
		return p[len(p)-1]
	}

	return p.PointAt(frac * p.Length())
}

// PointAt returns the point at the given arc-length distance (meters) from
// the polyline's start, clamped to the endpoints.
func (p Polyline) PointAt(dist float64) curve.Point {
	if len(p) == 0 {
		return curve.Point{}
	}
	if dist <= 0 || len(p) == 1 {
		return p[0]
	}
	var walked float64
	for i := 1; i < len(p); i++ {
		seg := p[i-1].Distance(p[i])
		if walked+seg >= dist {
			if seg <= coincidentTol {
				return p[i]
			}
			t := (dist - walked) / seg

			return p[i-1].Lerp(p[i], t)
		}
		walked += seg
	}

	return p[len(p)-1]
}

// Densify resamples the polyline at a fixed arc-length step, always keeping
// the first and last vertices. Residual arc length carries across vertices
// so the spacing stays uniform through corners. step must be positive; a
// polyline with fewer than two vertices is returned as-is.
func Densify(p Polyline, step float64) []curve.Point {
	if len(p) < 2 || step <= 0 {
		return append([]curve.Point(nil), p...)
	}
	acc := []curve.Point{p[0]}
	// next is the arc-length position of the next sample within the current
	// segment; the unconsumed remainder carries over at every vertex.
	next := step
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		segLen := a.Distance(b)
		d := next
		for d <= segLen {
			acc = append(acc, a.Lerp(b, d/segLen))
			d += step
		}
		next = d - segLen
	}
	last := p[len(p)-1]
	if acc[len(acc)-1].Distance(last) > coincidentTol {
		acc = append(acc, last)
	}

	return acc
}

// Thin drops points closer than minGap to the previously kept point.
// The first point is always kept. minGap ≤ 0 keeps everything.
func Thin(pts []curve.Point, minGap float64) []curve.Point {
	out := make([]curve.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || p.Distance(out[len(out)-1]) >= minGap {
			out = append(out, p)
		}
	}

	return out
}

// DistanceTo returns the minimum Euclidean distance from pt to any segment
// of the polyline. A single-vertex polyline measures to that vertex; an
// empty polyline returns 0.
func (p Polyline) DistanceTo(pt curve.Point) float64 {
	if len(p) == 0 {
		return 0
	}
	if len(p) == 1 {
		return pt.Distance(p[0])
	}
	best := pt.Distance(p[0])
	for i := 1; i < len(p); i++ {
		if d := distToSegment(pt, p[i-1], p[i]); d < best {
			best = d
		}
	}

	return best
}

// distToSegment returns the distance from pt to the closed segment a—b.
func distToSegment(pt, a, b curve.Point) float64 {
	ab := b.Sub(a)
	denom := ab.Hypot2()
	if denom <= coincidentTol {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return pt.Distance(a.Lerp(b, t))
}
