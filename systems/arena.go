package systems

import (
	"math/rand"

	"github.com/automoto/gridfire/components"
	"github.com/automoto/gridfire/shared/events"
	"github.com/yohamta/donburi"
)

// arenaData returns the level singleton. Every world driven by these
// systems is created with one.
func arenaData(w donburi.World) *components.ArenaData {
	return components.Arena.Get(components.Arena.MustFirst(w))
}

// frameTime is the number of seconds the current frame simulates.
func frameTime(w donburi.World) float64 {
	return arenaData(w).Delta
}

func random(w donburi.World) *rand.Rand {
	return arenaData(w).Rand
}

func listener(w donburi.World) events.Listener {
	if l := arenaData(w).Listener; l != nil {
		return l
	}
	return events.Nop{}
}
