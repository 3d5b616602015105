package components

import (
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

// FuseData counts a grenade down to its detonation.
type FuseData struct {
	Timer timer.Timer
}

// FlameData drives the pulsing size of a flame.
type FlameData struct {
	ScaleTimer timer.Timer
	Growing    bool
}

var Fuse = donburi.NewComponentType[FuseData]()
var Flame = donburi.NewComponentType[FlameData]()
