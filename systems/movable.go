package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// signedPrimary is the primary speed as a coordinate delta per second,
// negative when heading up or left.
func signedPrimary(m *components.MovableData) float64 {
	if m.Primary == direction.Up || m.Primary == direction.Left {
		return -m.PrimarySpeed
	}
	return m.PrimarySpeed
}

// signedSecondary is the secondary counterpart of signedPrimary. Without a
// secondary direction the stored value already carries its sign.
func signedSecondary(m *components.MovableData) float64 {
	if m.Secondary == direction.Up || m.Secondary == direction.Left {
		return -m.SecondarySpeed
	}
	return m.SecondarySpeed
}

func setPrimarySpeed(m *components.MovableData, speed float64) {
	contract.Require(speed >= 0, "primary speed cannot be negative")
	m.PrimarySpeed = speed
}

func stepAxis(pos dmath.Vec2, d direction.Direction, delta float64) dmath.Vec2 {
	if d.IsVertical() {
		return pos.Add(dmath.Vec2{Y: delta})
	}
	return pos.Add(dmath.Vec2{X: delta})
}

// Move displaces the entity along its primary axis and then its secondary
// axis. A looping "Moving" clip plays while there is a primary direction.
func Move(w donburi.World, e *donburi.Entry, dt float64) {
	m := components.Movable.Get(e)
	if m.Primary == direction.None {
		if HasSound(e, cfg.SoundMoving) {
			StopSound(e)
		}
		return
	}

	m.Position = stepAxis(m.Position, m.Primary, signedPrimary(m)*dt)
	if m.Secondary != direction.None {
		m.Position = stepAxis(m.Position, m.Secondary, signedSecondary(m)*dt)
	}
	if HasSound(e, cfg.SoundMoving) && !SoundPlaying(e) {
		PlaySound(w, e, cfg.SoundMoving, true)
	}
}

// UpdateMovable runs the lifecycle timers. Dying entities only become Dead
// once the dying timer ran out and their last clip finished.
func UpdateMovable(e *donburi.Entry, dt float64) {
	m := components.Movable.Get(e)
	switch m.Status {
	case components.Alive:
		if !m.HitTimer.RanOut() {
			m.HitTimer.Decrement(dt)
		}
	case components.Dying:
		if m.DyingTimer.RanOut() && !SoundPlaying(e) {
			m.Status = components.Dead
		} else {
			m.DyingTimer.Decrement(dt)
		}
	}
}

// StartDying moves an entity to Dying with the given terminal image and
// clip. Any loop is stopped first so it cannot hold the entity in Dying.
func StartDying(w donburi.World, e *donburi.Entry, token string) {
	components.Movable.Get(e).Status = components.Dying
	SetVisual(e, token)
	components.Sprite.Get(e).Rotation += dyingRotation(w, e)
	StopSound(e)
	PlaySound(w, e, token, false)
}

func dyingRotation(w donburi.World, e *donburi.Entry) float64 {
	if e.HasComponent(components.Projectile) {
		return munitionDyingRotation(w, e)
	}
	if gamemath.RandBool(random(w)) {
		return cfg.Physics.ActorDyingRotation
	}
	return -cfg.Physics.ActorDyingRotation
}

// HitWall reacts to a wall contact at p.
func HitWall(w donburi.World, e *donburi.Entry, p dmath.Vec2) {
	switch {
	case e.HasComponent(components.Projectile):
		munitionHitWall(w, e, p)
	case e.HasComponent(tags.Player):
		playerHitWall(e, p)
	case e.HasComponent(tags.Enemy):
		enemyHitWall(w, e, p)
	default:
		components.Movable.Get(e).Position = p
	}
}

// IsReadyForCollision reports whether the entity may take part in a
// pairwise hit this frame.
func IsReadyForCollision(e *donburi.Entry) bool {
	if e.HasComponent(components.Projectile) {
		return projectileReadyForCollision(e)
	}
	m := components.Movable.Get(e)
	if e.HasComponent(components.Emergence) {
		em := components.Emergence.Get(e)
		if !em.OutOfGround {
			return false
		}
		if !em.OutOfGate && gamemath.Distance(em.From, m.Position) < em.GateExit {
			return false
		}
	}
	return movableReadyForCollision(m)
}

func movableReadyForCollision(m *components.MovableData) bool {
	return m.Status == components.Alive && m.HitTimer.RanOut()
}

// IsReadyForWallCollision reports whether the entity is checked against the
// arena walls this frame.
func IsReadyForWallCollision(e *donburi.Entry) bool {
	if e.HasComponent(components.Projectile) {
		return projectileReadyForWallCollision(e)
	}
	if e.HasComponent(components.Emergence) && !components.Emergence.Get(e).Emerged() {
		return false
	}
	return components.Movable.Get(e).Status == components.Alive
}
