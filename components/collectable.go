package components

import (
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CollectableData struct {
	Position     math.Vec2
	DespawnTimer timer.Timer
	Collected    bool
	Value        float64
}

// Despawned reports whether the pickup expired before anyone took it.
func (c *CollectableData) Despawned() bool {
	return c.DespawnTimer.RanOut()
}

var Collectable = donburi.NewComponentType[CollectableData]()
