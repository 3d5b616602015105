package components

import (
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

// ActorData is the health and stance of the player or an enemy. Facing is
// never None.
type ActorData struct {
	Health    float64
	MaxHealth float64
	StunTimer timer.Timer
	Facing    direction.Direction
	AnimTimer timer.Timer
	AnimFrame int
}

var Actor = donburi.NewComponentType[ActorData]()
