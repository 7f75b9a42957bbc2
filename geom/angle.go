package geom

import (
	"math"

	"honnef.co/go/curve"
)

// Bearing returns the compass bearing from a to b in degrees: 0° points
// along +y (north), positive clockwise, computed as atan2(dx, dy).
func Bearing(a, b curve.Point) float64 {
	d := b.Sub(a)

	return radToDeg(math.Atan2(d.X, d.Y))
}

// NormalizeAngle folds an angle in degrees into the half-open interval
// (-180°, 180°].
func NormalizeAngle(a float64) float64 {
	for a <= -180 {
		a += 360
	}
	for a > 180 {
		a -= 360
	}

	return a
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }

func degToRad(d float64) float64 { return d * math.Pi / 180 }
