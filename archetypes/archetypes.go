package archetypes

import (
	"github.com/automoto/gridfire/components"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
)

var (
	Arena = newArchetype(
		components.Arena,
		components.Sound,
	)
	Player = newArchetype(
		tags.Player,
		components.Movable,
		components.Sprite,
		components.Sound,
		components.Actor,
		components.Player,
		components.Loadout,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Movable,
		components.Sprite,
		components.Sound,
		components.Actor,
		components.Enemy,
		components.Emergence,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Movable,
		components.Sprite,
		components.Sound,
		components.Projectile,
	)
	Throwable = newArchetype(
		tags.Projectile,
		tags.Throwable,
		components.Movable,
		components.Sprite,
		components.Sound,
		components.Projectile,
		components.Throwable,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Sound,
	)
	Collectable = newArchetype(
		tags.Collectable,
		components.Collectable,
		components.Sprite,
		components.Sound,
	)
	BurnChannel = newArchetype(
		tags.BurnChannel,
		components.Sound,
	)
	Gate = newArchetype(
		tags.Gate,
		components.Gate,
		components.Sound,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
