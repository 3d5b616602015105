package factory

import (
	"github.com/automoto/gridfire/archetypes"
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player facing down with the full loadout, the
// first weapon equipped. Extra components such as an autopilot are added
// to the player entity.
func CreatePlayer(w donburi.World, pos dmath.Vec2, extras ...donburi.IComponentType) *donburi.Entry {
	player := archetypes.Player.Spawn(w, extras...)
	setupActor(player, cfg.Player, pos, direction.None, direction.Down)
	components.Player.SetValue(player, components.PlayerData{})

	weapons := make([]donburi.Entity, 0, len(cfg.Loadout))
	for _, kind := range cfg.Loadout {
		weapons = append(weapons, CreateWeapon(w, kind, player.Entity()).Entity())
	}
	components.Loadout.SetValue(player, components.LoadoutData{Weapons: weapons})
	return player
}

// CreateWeapon spawns a loaded inventory weapon for owner.
func CreateWeapon(w donburi.World, kind cfg.WeaponKind, owner donburi.Entity) *donburi.Entry {
	conf := cfg.Weapons[kind]
	e := archetypes.Weapon.Spawn(w)
	components.Weapon.SetValue(e, components.WeaponData{
		Kind:   kind,
		Owner:  owner,
		Facing: direction.Down,
		Ammo:   conf.Capacity,
	})
	components.Sound.SetValue(e, components.SoundData{Bank: conf.Bank})
	return e
}

// setupActor fills in the parts the player and enemies share.
func setupActor(e *donburi.Entry, conf cfg.ActorConfig, pos dmath.Vec2, primary, facing direction.Direction) {
	components.Movable.SetValue(e, components.MovableData{
		Position:       pos,
		Primary:        primary,
		PrimarySpeed:   conf.PrimarySpeed,
		SecondarySpeed: conf.SecondarySpeed,
		DyingTimer:     timer.New(cfg.Actors.DyingTime),
		HitDelay:       cfg.Physics.MovableHitDelay,
	})
	components.Actor.SetValue(e, components.ActorData{
		Health:    conf.MaxHealth,
		MaxHealth: conf.MaxHealth,
		Facing:    facing,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Bank:   conf.Bank,
		Visual: conf.Name,
		ScaleX: 1,
		ScaleY: 1,
		FlipH:  facing == direction.Left,
	})
	components.Sound.SetValue(e, components.SoundData{Bank: conf.Bank})
}
