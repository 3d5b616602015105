package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

func HalfOf(v float64) float64 {
	return v * 0.5
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AxisDistance returns the absolute distance between two coordinates.
func AxisDistance(a, b float64) float64 {
	return math.Abs(a - b)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PointOnCircle returns the point at angleDeg on the circle, measured from
// the positive x axis towards positive y (screen down).
func PointOnCircle(center dmath.Vec2, radius, angleDeg float64) dmath.Vec2 {
	rad := DegreesToRadians(angleDeg)
	return dmath.Vec2{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// RotatedBounds returns the axis-aligned size of a w×h rectangle rotated by
// rotationDeg around its center.
func RotatedBounds(w, h, rotationDeg float64) (float64, float64) {
	rad := DegreesToRadians(rotationDeg)
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	return w*cos + h*sin, w*sin + h*cos
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
