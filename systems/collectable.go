package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectables counts pickups down to their despawn.
func UpdateCollectables(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	for e := range components.Collectable.Iter(w) {
		c := components.Collectable.Get(e)
		if c.Collected || c.Despawned() {
			continue
		}
		c.DespawnTimer.Decrement(dt)
		if c.Despawned() {
			PlaySound(w, e, cfg.SoundDespawn, false)
		}
	}
}

// Collect hands a pickup to the player.
func Collect(w donburi.World, e, player *donburi.Entry) {
	c := components.Collectable.Get(e)
	c.Collected = true
	PlaySound(w, e, cfg.SoundCollect, false)
	RestoreHealth(player, c.Value)
}

// IsCollectableFinished reports whether a taken or expired pickup has
// finished its last clip and can go.
func IsCollectableFinished(e *donburi.Entry) bool {
	c := components.Collectable.Get(e)
	return (c.Collected || c.Despawned()) && !SoundPlaying(e)
}
