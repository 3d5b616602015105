package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gatesOpen reports whether waves may come through. Arenas without gates
// never hold them back.
func gatesOpen(w donburi.World) bool {
	gate, ok := tags.Gate.First(w)
	if !ok {
		return true
	}
	return components.Gate.Get(gate).IsOpen()
}

// UpdateGates cycles the arena gates: open, closing frame by frame, closed,
// then opening again. Closing the gates restarts the wave countdown.
func UpdateGates(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	gate, ok := tags.Gate.First(w)
	if !ok {
		return
	}
	g := components.Gate.Get(gate)
	if !g.Timer.RanOut() {
		g.Timer.Decrement(dt)
		return
	}

	wasOpen := g.IsOpen()
	a := arenaData(w)
	switch g.Status {
	case components.GateOpen:
		g.Status = components.GateClosing
	case components.GateClosed:
		g.Status = components.GateOpening
	}

	if g.Status == components.GateClosing {
		g.Frame--
	} else {
		g.Frame++
	}

	switch {
	case g.Frame <= 0:
		g.Frame = 0
		g.Status = components.GateClosed
		g.Timer.Reset(cfg.Arena.GateClosedTime(a.Difficulty))
		PlaySound(w, gate, cfg.SoundGateClosed, false)
	case g.Frame >= cfg.Arena.GateFrames:
		g.Frame = cfg.Arena.GateFrames
		g.Status = components.GateOpen
		g.Timer.Reset(cfg.Arena.GateOpenTime(a.Difficulty))
		PlaySound(w, gate, cfg.SoundGateOpen, false)
	default:
		g.Timer.Reset(cfg.Arena.GateFrameTime)
		if !SoundPlaying(gate) {
			PlaySound(w, gate, cfg.SoundGateMoving, true)
		}
	}

	if wasOpen && !g.IsOpen() {
		a.WaveTimer.Reset(cfg.Arena.FirstWaveDelay)
	}
}
