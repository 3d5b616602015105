package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Feet is the Y coordinate an actor stands on. Throwables that hit an actor
// drop to this floor.
func Feet(e *donburi.Entry) float64 {
	_, h := Footprint(e)
	return components.Movable.Get(e).Position.Y + gamemath.HalfOf(h)
}

// TakeDamage removes health and starts dying at zero. resetHit makes the
// actor ignore further hits for its hit delay.
func TakeDamage(w donburi.World, e *donburi.Entry, damage float64, resetHit bool) {
	contract.Require(damage >= 0, "damage cannot be negative")
	a := components.Actor.Get(e)
	m := components.Movable.Get(e)
	a.Health -= damage
	if resetHit {
		m.HitTimer.Reset(m.HitDelay)
	}
	if a.Health <= 0 {
		a.Health = 0
		StartDying(w, e, cfg.SoundDying)
		return
	}
	PlaySound(w, e, cfg.SoundHit, false)
}

// HitByProjectile damages the actor. Explosions linger for several frames so
// they start the hit delay, a single bullet does not.
func HitByProjectile(w donburi.World, e *donburi.Entry, damage float64, exploding bool) {
	TakeDamage(w, e, damage, exploding)
}

// RestoreHealth heals up to the actor's maximum.
func RestoreHealth(e *donburi.Entry, amount float64) {
	a := components.Actor.Get(e)
	a.Health = min(a.Health+amount, a.MaxHealth)
}

// StunFor freezes the actor in place for t seconds.
func StunFor(e *donburi.Entry, t float64) {
	components.Actor.Get(e).StunTimer.Reset(t)
}

func IsStunned(e *donburi.Entry) bool {
	return !components.Actor.Get(e).StunTimer.RanOut()
}

func updateActor(w donburi.World, e *donburi.Entry, dt float64) {
	UpdateMovable(e, dt)

	m := components.Movable.Get(e)
	if m.Status != components.Alive {
		return
	}
	a := components.Actor.Get(e)
	if !a.StunTimer.RanOut() {
		a.StunTimer.Decrement(dt)
		return
	}

	Move(w, e, dt)
	orient(e)
	if a.AnimTimer.RanOut() {
		a.AnimFrame = (a.AnimFrame + 1) % cfg.Actors.AnimFrames
		a.AnimTimer.Reset(cfg.Actors.AnimDelay)
	} else {
		a.AnimTimer.Decrement(dt)
	}
}

// orient turns the actor to where it is walking. Left is the right facing
// image mirrored.
func orient(e *donburi.Entry) {
	m := components.Movable.Get(e)
	a := components.Actor.Get(e)
	if m.Primary != direction.None {
		a.Facing = m.Primary
	}
	components.Sprite.Get(e).FlipH = a.Facing == direction.Left
}

// face turns an actor without moving it.
func face(e *donburi.Entry, d direction.Direction) {
	contract.Require(d != direction.None, "actors always face a direction")
	components.Actor.Get(e).Facing = d
	components.Sprite.Get(e).FlipH = d == direction.Left
}

// containActor puts an actor that walked into a wall back on its edge.
func containActor(e *donburi.Entry, p dmath.Vec2) {
	components.Movable.Get(e).Position = p
}
