package systems

import (
	"github.com/automoto/gridfire/components"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths is the end of frame sweep.
func UpdateDeaths(ecs *ecs.ECS) {
	RemoveDead(ecs.World)
}

// RemoveDead sweeps dead enemies and projectiles and finished pickups out of
// the world. It runs last so no pass ever holds a removed entry.
func RemoveDead(w donburi.World) int {
	var doomed []donburi.Entity
	for _, e := range entriesOf(w, tags.Enemy) {
		if components.Movable.Get(e).Status == components.Dead {
			doomed = append(doomed, e.Entity())
		}
	}
	for _, e := range entriesOf(w, tags.Projectile) {
		if components.Movable.Get(e).Status == components.Dead {
			doomed = append(doomed, e.Entity())
		}
	}
	for _, e := range entriesOf(w, tags.Collectable) {
		if IsCollectableFinished(e) {
			doomed = append(doomed, e.Entity())
		}
	}

	for _, entity := range doomed {
		w.Remove(entity)
	}
	return len(doomed)
}
