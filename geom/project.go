package geom

import (
	"math"

	"honnef.co/go/curve"
)

// Meters per degree of latitude, and per degree of longitude at the equator.
// An equirectangular approximation is sufficient at route scale (a few km).
const (
	metersPerDegLat = 111132.0
	metersPerDegLng = 111320.0
)

// Projection converts between the local planar system (meters, origin at a
// reference geographic point) and WGS84 latitude/longitude using an
// equirectangular approximation around the origin latitude.
type Projection struct {
	OriginLat float64
	OriginLng float64

	mPerDegLng float64
}

// NewProjection returns a Projection anchored at the given geographic origin,
// which maps to the planar point (0, 0).
func NewProjection(lat, lng float64) Projection {
	return Projection{
		OriginLat:  lat,
		OriginLng:  lng,
		mPerDegLng: metersPerDegLng * math.Cos(degToRad(lat)),
	}
}

// ToGeographic converts a planar point to (lat, lng).
func (pr Projection) ToGeographic(pt curve.Point) (lat, lng float64) {
	lat = pr.OriginLat + pt.Y/metersPerDegLat
	lng = pr.OriginLng + pt.X/pr.mPerDegLng

	return lat, lng
}

// ToPlanar converts (lat, lng) to a planar point.
func (pr Projection) ToPlanar(lat, lng float64) curve.Point {
	return curve.Pt(
		(lng-pr.OriginLng)*pr.mPerDegLng,
		(lat-pr.OriginLat)*metersPerDegLat,
	)
}
