package components

import (
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
)

type GateStatus int

const (
	GateOpen GateStatus = iota
	GateOpening
	GateClosed
	GateClosing
)

// GateData is the shared state of every gate in the arena walls. Frame
// counts the animation steps from closed (0) to open.
type GateData struct {
	Status GateStatus
	Frame  int
	Timer  timer.Timer // Until the next status change or frame
}

func (g *GateData) IsOpen() bool {
	return g.Status == GateOpen
}

var Gate = donburi.NewComponentType[GateData]()
