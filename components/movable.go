package components

import (
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HealthStatus only ever moves forward: Alive, then Dying, then Dead.
type HealthStatus int

const (
	Alive HealthStatus = iota
	Dying
	Dead
)

func (s HealthStatus) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Dying:
		return "Dying"
	case Dead:
		return "Dead"
	}
	return "Unknown"
}

// MovableData is the position, two-axis motion and lifecycle shared by
// every moving entity. PrimarySpeed is never negative, the direction gives
// the sign. SecondarySpeed keeps its sign while Secondary is None so a
// throwable moving up or down the screen can still carry a vertical
// velocity.
type MovableData struct {
	Position       math.Vec2
	Primary        direction.Direction
	Secondary      direction.Direction
	PrimarySpeed   float64
	SecondarySpeed float64
	Status         HealthStatus
	HitTimer       timer.Timer
	DyingTimer     timer.Timer
	HitDelay       float64
}

var Movable = donburi.NewComponentType[MovableData]()
