package gamemath

import "math"

// PositiveRoot returns (-b + sqrt(b²-4ac)) / 2a, the later of the two
// solutions of at² + bt + c = 0 when a > 0.
func PositiveRoot(a, b, c float64) float64 {
	return (-b + math.Sqrt(b*b-4*a*c)) / (2 * a)
}

// Launch describes a gravity arc that starts at rest height and peaks at
// the apex height before falling back to the floor.
type Launch struct {
	VerticalSpeed   float64 // upward speed at release
	TimeOfFlight    float64
	HorizontalSpeed float64
}

// SolveLaunch derives the release speeds for an arc covering distance along
// the floor. initialHeight is the height above the floor at release and
// maxHeight the apex height, both measured upwards.
func SolveLaunch(gravity, distance, initialHeight, maxHeight float64) Launch {
	u := math.Sqrt(2 * gravity * math.Abs(initialHeight-maxHeight))
	tof := PositiveRoot(gravity/2, -u, -initialHeight)
	return Launch{
		VerticalSpeed:   u,
		TimeOfFlight:    tof,
		HorizontalSpeed: distance / tof,
	}
}

// VerticalDisplacement returns how far below the release point an object
// thrown upwards at u is after t seconds.
func VerticalDisplacement(gravity, u, t float64) float64 {
	return 0.5*gravity*t*t - u*t
}
