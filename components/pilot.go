package components

import (
	"github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

// PilotData marks a player driven by the autopilot instead of a keyboard.
type PilotData struct {
	Skill         config.PilotSkill
	DecisionTimer timer.Timer
}

var Pilot = donburi.NewComponentType[PilotData]()
