package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
)

// unitSquare is the canonical closed test template: perimeter 4.
func unitSquare() geom.Polyline {
	return geom.Polyline{
		curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1), curve.Pt(0, 1), curve.Pt(0, 0),
	}
}

// TestPolyline_Length verifies arc-length accumulation and the degenerate
// zero cases.
func TestPolyline_Length(t *testing.T) {
	assert.Equal(t, 4.0, unitSquare().Length(), "unit square perimeter")
	assert.Equal(t, 0.0, geom.Polyline{}.Length(), "empty polyline has zero length")
	assert.Equal(t, 0.0, geom.Polyline{curve.Pt(3, 3)}.Length(), "single vertex has zero length")
}

// TestPolyline_Cumulative verifies the running-distance table used by the
// guidance extractor.
func TestPolyline_Cumulative(t *testing.T) {
	cum := unitSquare().Cumulative()
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, cum)
	assert.Nil(t, geom.Polyline{}.Cumulative())
}

// TestPolyline_Interpolate checks fractional arc-length interpolation,
// including clamping outside [0,1].
func TestPolyline_Interpolate(t *testing.T) {
	line := geom.Polyline{curve.Pt(0, 0), curve.Pt(10, 0)}

	assert.Equal(t, curve.Pt(5, 0), line.Interpolate(0.5))
	assert.Equal(t, curve.Pt(0, 0), line.Interpolate(-1), "clamped below")
	assert.Equal(t, curve.Pt(10, 0), line.Interpolate(2), "clamped above")

	// Interpolation walks corners by arc length, not by vertex index.
	sq := unitSquare()
	assert.InDelta(t, 1.0, sq.Interpolate(0.375).X, 1e-12)
	assert.InDelta(t, 0.5, sq.Interpolate(0.375).Y, 1e-12)
}

// TestPolyline_Centroid verifies the length-weighted centroid and the
// coincident-vertices fallback.
func TestPolyline_Centroid(t *testing.T) {
	c := unitSquare().Centroid()
	assert.InDelta(t, 0.5, c.X, 1e-12)
	assert.InDelta(t, 0.5, c.Y, 1e-12)

	same := geom.Polyline{curve.Pt(2, 3), curve.Pt(2, 3)}
	assert.Equal(t, curve.Pt(2, 3), same.Centroid(), "coincident vertices fall back to vertex mean")
}

// TestDensify verifies uniform spacing, residual carry across corners, and
// endpoint preservation.
func TestDensify(t *testing.T) {
	line := geom.Polyline{curve.Pt(0, 0), curve.Pt(10, 0)}
	pts := geom.Densify(line, 2.5)
	assert.Len(t, pts, 5, "0, 2.5, 5, 7.5, 10")
	assert.Equal(t, curve.Pt(0, 0), pts[0])
	assert.Equal(t, curve.Pt(10, 0), pts[len(pts)-1])

	// The residual carries across the corner: with step 3 on an L of 5+5,
	// samples land at arc 3, 6, 9 plus both endpoints.
	l := geom.Polyline{curve.Pt(0, 0), curve.Pt(5, 0), curve.Pt(5, 5)}
	pts = geom.Densify(l, 3)
	assert.Len(t, pts, 5)
	assert.Equal(t, curve.Pt(3, 0), pts[1])
	assert.InDelta(t, 1.0, pts[2].Y, 1e-12, "second sample wraps onto the vertical leg")
	assert.InDelta(t, 4.0, pts[3].Y, 1e-12, "spacing stays uniform after the corner")
	assert.Equal(t, curve.Pt(5, 5), pts[4])

	// Degenerate inputs come back unchanged.
	assert.Len(t, geom.Densify(geom.Polyline{curve.Pt(1, 1)}, 2), 1)
}

// TestThin verifies minimum-gap filtering keeps the first point and drops
// near-duplicates.
func TestThin(t *testing.T) {
	pts := []curve.Point{curve.Pt(0, 0), curve.Pt(0.5, 0), curve.Pt(2, 0), curve.Pt(2.4, 0), curve.Pt(4, 0)}
	out := geom.Thin(pts, 1.0)
	assert.Equal(t, []curve.Point{curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(4, 0)}, out)
}

// TestPolyline_DistanceTo verifies point-to-polyline distance against
// interior projections and endpoint clamping.
func TestPolyline_DistanceTo(t *testing.T) {
	line := geom.Polyline{curve.Pt(0, 0), curve.Pt(10, 0)}

	assert.InDelta(t, 3.0, line.DistanceTo(curve.Pt(5, 3)), 1e-12, "perpendicular drop")
	assert.InDelta(t, 5.0, line.DistanceTo(curve.Pt(-3, 4)), 1e-12, "clamped to the start vertex")
	assert.Equal(t, 0.0, line.DistanceTo(curve.Pt(7, 0)), "on the segment")
}

// TestBearing verifies compass bearings (0° = north, clockwise positive).
func TestBearing(t *testing.T) {
	o := curve.Pt(0, 0)
	assert.InDelta(t, 0.0, geom.Bearing(o, curve.Pt(0, 1)), 1e-12, "north")
	assert.InDelta(t, 90.0, geom.Bearing(o, curve.Pt(1, 0)), 1e-12, "east")
	assert.InDelta(t, 180.0, geom.Bearing(o, curve.Pt(0, -1)), 1e-12, "south")
	assert.InDelta(t, -90.0, geom.Bearing(o, curve.Pt(-1, 0)), 1e-12, "west")
}

// TestNormalizeAngle verifies folding into (-180, 180].
func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, 180.0, geom.NormalizeAngle(180))
	assert.Equal(t, 180.0, geom.NormalizeAngle(-180))
	assert.Equal(t, -170.0, geom.NormalizeAngle(190))
	assert.Equal(t, 10.0, geom.NormalizeAngle(370))
}

// TestProjection_RoundTrip verifies planar↔geographic conversion is stable
// around the origin.
func TestProjection_RoundTrip(t *testing.T) {
	pr := geom.NewProjection(33.4996, 126.5312)

	lat, lng := pr.ToGeographic(curve.Pt(0, 0))
	assert.Equal(t, 33.4996, lat)
	assert.Equal(t, 126.5312, lng)

	pt := curve.Pt(1500, -800)
	gotLat, gotLng := pr.ToGeographic(pt)
	back := pr.ToPlanar(gotLat, gotLng)
	assert.InDelta(t, pt.X, back.X, 1e-6)
	assert.InDelta(t, pt.Y, back.Y, 1e-6)

	// North increases latitude; east increases longitude.
	assert.Greater(t, gotLng, 126.5312)
	assert.Less(t, gotLat, 33.4996)
}
