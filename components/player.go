package components

import (
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	UsingWeapon bool        // Trigger held down
	NoiseTimer  timer.Timer // Audible to enemies until this runs out
}

var Player = donburi.NewComponentType[PlayerData]()
