package factory

import (
	"github.com/automoto/gridfire/archetypes"
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateHealthPack spawns a health pack at pos. The caller moves it to a
// free spot on the board.
func CreateHealthPack(w donburi.World, pos dmath.Vec2) *donburi.Entry {
	e := archetypes.Collectable.Spawn(w)
	components.Collectable.SetValue(e, components.CollectableData{
		Position:     pos,
		DespawnTimer: timer.New(cfg.HealthPack.DespawnTime),
		Value:        cfg.HealthPack.HealthValue,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Bank:   cfg.HealthPack.Bank,
		Visual: cfg.HealthPack.Name,
		ScaleX: 1,
		ScaleY: 1,
	})
	components.Sound.SetValue(e, components.SoundData{Bank: cfg.HealthPack.Bank})
	return e
}
