package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// CollisionPoints samples a rectangle around center into nine points:
// the center, the four corners and the four edge midpoints. offsetW and
// offsetH are the half extents. The order is fixed and callers that stop at
// the first hit depend on it.
func CollisionPoints(center dmath.Vec2, offsetW, offsetH float64) [9]dmath.Vec2 {
	return [9]dmath.Vec2{
		center,
		{X: center.X + offsetW, Y: center.Y + offsetH},
		{X: center.X - offsetW, Y: center.Y - offsetH},
		{X: center.X - offsetW, Y: center.Y + offsetH},
		{X: center.X + offsetW, Y: center.Y - offsetH},
		{X: center.X + offsetW, Y: center.Y},
		{X: center.X - offsetW, Y: center.Y},
		{X: center.X, Y: center.Y + offsetH},
		{X: center.X, Y: center.Y - offsetH},
	}
}

// PointInsideCircle is inclusive of the circle's edge.
func PointInsideCircle(center dmath.Vec2, radius float64, p dmath.Vec2) bool {
	return Distance(center, p) <= radius
}

// FirstPointInsideCircle returns the index of the first sample point inside
// the circle, or -1.
func FirstPointInsideCircle(center dmath.Vec2, radius float64, points []dmath.Vec2) int {
	for i, p := range points {
		if PointInsideCircle(center, radius, p) {
			return i
		}
	}
	return -1
}

// CollisionPointsInsideCircle reports whether any sample point of the
// rectangle lies inside the circle.
func CollisionPointsInsideCircle(center dmath.Vec2, radius float64, rectCenter dmath.Vec2, offsetW, offsetH float64) bool {
	points := CollisionPoints(rectCenter, offsetW, offsetH)
	return FirstPointInsideCircle(center, radius, points[:]) >= 0
}

// Overlaps is the centered AABB test: the boxes touch when the distance on
// both axes is within the combined half extents.
func Overlaps(a, b dmath.Vec2, sumHalfW, sumHalfH float64) bool {
	return AxisDistance(a.X, b.X) <= sumHalfW && AxisDistance(a.Y, b.Y) <= sumHalfH
}
