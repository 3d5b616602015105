package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer moves the player and works the equipped weapon. Only the
// equipped weapon reloads.
func UpdatePlayer(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	updateActor(w, e, dt)
	if components.Movable.Get(e).Status != components.Alive {
		return
	}

	pl := components.Player.Get(e)
	if !pl.NoiseTimer.RanOut() {
		pl.NoiseTimer.Decrement(dt)
	}
	weapon := EquippedWeapon(w, e)
	if pl.UsingWeapon && IsLoaded(weapon) {
		useEquipped(w, e, weapon)
	}
	holdEquipped(w, e)
	UpdateWeapon(w, weapon, dt)
}

func EquippedWeapon(w donburi.World, player *donburi.Entry) *donburi.Entry {
	lo := components.Loadout.Get(player)
	return w.Entry(lo.Weapons[lo.Equipped])
}

func useEquipped(w donburi.World, e, weapon *donburi.Entry) {
	conf := weaponConfigOf(weapon)
	UseWeapon(w, weapon, components.Actor.Get(e).Facing, Feet(e), weaponHeight(e, conf))
	if !conf.Silent {
		components.Player.Get(e).NoiseTimer.Reset(cfg.Actors.NoiseTime)
	}
	if components.Weapon.Get(weapon).Ammo <= 0 {
		SetUsingWeapon(w, e, false)
	}
}

// weaponHeight is how far above the player's feet a weapon is held. It is
// the same for every facing so thrown munitions fly level.
func weaponHeight(e *donburi.Entry, conf cfg.WeaponConfig) float64 {
	_, h := Footprint(e)
	return gamemath.HalfOf(h) - conf.HoldOffsets[direction.Right].Y
}

func holdEquipped(w donburi.World, e *donburi.Entry) {
	HoldWeapon(EquippedWeapon(w, e), components.Actor.Get(e).Facing, components.Movable.Get(e).Position)
}

// SetUsingWeapon presses or releases the trigger.
func SetUsingWeapon(w donburi.World, e *donburi.Entry, using bool) {
	components.Player.Get(e).UsingWeapon = using
	if !using {
		StopUsingWeapon(EquippedWeapon(w, e))
	}
}

// SwapWeapon equips the next weapon in the loadout, wrapping around.
func SwapWeapon(w donburi.World, e *donburi.Entry) {
	lo := components.Loadout.Get(e)
	if len(lo.Weapons) < 2 {
		return
	}
	EquipWeapon(w, e, (lo.Equipped+1)%len(lo.Weapons))
}

// EquipWeapon switches to the weapon in the given loadout slot.
func EquipWeapon(w donburi.World, e *donburi.Entry, slot int) {
	lo := components.Loadout.Get(e)
	if slot < 0 || slot >= len(lo.Weapons) || slot == lo.Equipped {
		return
	}
	StopUsingWeapon(EquippedWeapon(w, e))
	lo.Equipped = slot
	holdEquipped(w, e)
}

// SteerPlayer sets the player's walking directions. A secondary on the same
// axis as the primary is dropped.
func SteerPlayer(e *donburi.Entry, primary, secondary direction.Direction) {
	m := components.Movable.Get(e)
	m.Primary = primary
	m.Secondary = direction.None
	if primary == direction.None {
		return
	}
	if secondary != direction.None && secondary.IsVertical() != primary.IsVertical() {
		m.Secondary = secondary
	}
}

// IsMakingNoise reports whether a loud shot still gives the player away.
func IsMakingNoise(e *donburi.Entry) bool {
	return !components.Player.Get(e).NoiseTimer.RanOut()
}

func playerHitWall(e *donburi.Entry, p dmath.Vec2) {
	containActor(e, p)
	holdEquipped(e.World, e)
}
