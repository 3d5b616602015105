package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func weaponConfigOf(e *donburi.Entry) cfg.WeaponConfig {
	return cfg.Weapons[components.Weapon.Get(e).Kind]
}

// IsReloading holds while the reload delay runs, while the reload clip
// plays and while the magazine is empty.
func IsReloading(e *donburi.Entry) bool {
	wd := components.Weapon.Get(e)
	s := components.Sound.Get(e)
	return !wd.ReloadTimer.RanOut() ||
		(s.Playing() && s.Token == cfg.SoundReload) ||
		wd.Ammo <= 0
}

// IsLoaded reports whether the weapon can be used this frame. Shooters also
// wait out the delay between shots.
func IsLoaded(e *donburi.Entry) bool {
	if IsReloading(e) {
		return false
	}
	return weaponConfigOf(e).Throwing || components.Weapon.Get(e).ShotTimer.RanOut()
}

// UseWeapon fires or throws from the weapon's hold position. feet is the
// floor thrown munitions land on and height how far above it they leave
// the hand.
func UseWeapon(w donburi.World, e *donburi.Entry, facing direction.Direction, feet, height float64) {
	wd := components.Weapon.Get(e)
	conf := weaponConfigOf(e)

	switch {
	case conf.Throwing:
		PlaySound(w, e, cfg.SoundThrow, false)
	case conf.Looped:
		if !SoundPlaying(e) {
			PlaySound(w, e, cfg.SoundShot, true)
		}
	default:
		PlaySound(w, e, cfg.SoundShot, false)
	}

	launch := factory.Launch{
		From:     wd.Position,
		Facing:   facing,
		Floor:    feet,
		Height:   height,
		Rotation: wd.Rotation,
	}
	for i := 0; i < conf.PerUse; i++ {
		factory.CreateMunition(w, conf.Munition, launch)
	}
	if !conf.Throwing {
		wd.ShotTimer.Reset(conf.ShotDelay)
	}

	wd.Ammo--
	if wd.Ammo <= 0 {
		wd.ReloadTimer.Reset(conf.ReloadDelay)
	}
}

// StopUsingWeapon cuts a looping shot clip. One-shot clips finish playing.
func StopUsingWeapon(e *donburi.Entry) {
	if components.Sound.Get(e).Loop {
		StopSound(e)
	}
}

// HoldWeapon places the weapon in the owner's hands for the given facing.
func HoldWeapon(e *donburi.Entry, facing direction.Direction, owner dmath.Vec2) {
	wd := components.Weapon.Get(e)
	conf := weaponConfigOf(e)
	wd.Facing = facing
	wd.Rotation = conf.HoldRotations[facing]
	wd.Position = owner.Add(conf.HoldOffsets[facing])
	if IsReloading(e) {
		wd.Position = wd.Position.Add(conf.ReloadOffsets[facing])
	}
}

// UpdateWeapon runs the shot delay, then the reload delay. The magazine
// refills when the reload delay runs out.
func UpdateWeapon(w donburi.World, e *donburi.Entry, dt float64) {
	wd := components.Weapon.Get(e)
	if !weaponConfigOf(e).Throwing && !wd.ShotTimer.RanOut() {
		wd.ShotTimer.Decrement(dt)
		return
	}
	if !IsReloading(e) || wd.ReloadTimer.RanOut() {
		return
	}
	wd.ReloadTimer.Decrement(dt)
	if wd.ReloadTimer.RanOut() {
		PlaySound(w, e, cfg.SoundReload, false)
		Reload(e)
	}
}

func Reload(e *donburi.Entry) {
	wd := components.Weapon.Get(e)
	wd.ReloadTimer.Reset(0)
	wd.Ammo = weaponConfigOf(e).Capacity
}
