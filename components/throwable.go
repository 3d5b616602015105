package components

import (
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

// ThrowableData is the airborne state of a thrown munition. Floor is the
// world Y the object lands on and is moved on every bounce or drop.
type ThrowableData struct {
	Floor         float64
	FloorHitTimer timer.Timer
}

var Throwable = donburi.NewComponentType[ThrowableData]()
