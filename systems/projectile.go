package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func munitionOf(e *donburi.Entry) cfg.MunitionConfig {
	return cfg.Munitions[components.Projectile.Get(e).Kind]
}

// IsExploding reports whether the projectile is a dying explosive, which
// hits everything within its radius instead of what it flies into.
func IsExploding(e *donburi.Entry) bool {
	return components.Movable.Get(e).Status == components.Dying && munitionOf(e).Explosive
}

// DistanceLeftToTravel is how much of the munition's range remains.
func DistanceLeftToTravel(e *donburi.Entry) float64 {
	maxRange := munitionOf(e).MaxRange
	contract.Require(maxRange >= 0, "projectile max range cannot be negative")
	return maxRange - components.Projectile.Get(e).DistanceTravelled
}

func projectileReadyForCollision(e *donburi.Entry) bool {
	m := components.Movable.Get(e)
	return movableReadyForCollision(m) || (IsExploding(e) && m.DyingTimer.TimeLeft() > 0)
}

func projectileReadyForWallCollision(e *donburi.Entry) bool {
	m := components.Movable.Get(e)
	return m.Status == components.Alive &&
		components.Projectile.Get(e).WallHitTimer.RanOut() &&
		m.Primary != direction.None
}

// UpdateProjectiles advances every projectile and throwable in flight.
func UpdateProjectiles(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	for _, e := range entriesOf(w, components.Projectile) {
		if !e.Valid() {
			continue
		}
		updateMunition(w, e, dt)
	}
}

func updateProjectile(w donburi.World, e *donburi.Entry, dt float64) {
	UpdateMovable(e, dt)

	m := components.Movable.Get(e)
	p := components.Projectile.Get(e)
	if m.Status == components.Alive {
		moveProjectile(w, e, dt)
		if !p.WallHitTimer.RanOut() {
			p.WallHitTimer.Decrement(dt)
		}
		return
	}
	followTarget(w, e)
}

// followTarget keeps a spent projectile stuck in the actor it hit. It
// cannot outlive the actor's death and is laid down with the body.
func followTarget(w donburi.World, e *donburi.Entry) {
	p := components.Projectile.Get(e)
	a := p.Attached
	if a == nil {
		return
	}
	if !w.Valid(a.Target) {
		p.Attached = nil
		return
	}
	target := w.Entry(a.Target)
	tm := components.Movable.Get(target)
	if tm.Status == components.Dead {
		p.Attached = nil
		return
	}

	m := components.Movable.Get(e)
	m.DyingTimer.Reset(tm.DyingTimer.TimeLeft())
	switch tm.Status {
	case components.Alive:
		m.Position = tm.Position.Add(a.Offset)
	case components.Dying:
		if a.StartedDying {
			return
		}
		a.StartedDying = true
		bodyRotation := components.Sprite.Get(target).Rotation
		components.Sprite.Get(e).Rotation += bodyRotation

		// The body lies on its side so the offset axes swap
		side := 1.0
		if bodyRotation == cfg.Physics.ActorDyingRotation {
			side = -1
		}
		m.Position.X = tm.Position.X + side*a.Offset.Y
		m.Position.Y = tm.Position.Y - side*a.Offset.X
	}
}

func moveProjectile(w donburi.World, e *donburi.Entry, dt float64) {
	m := components.Movable.Get(e)
	if m.Primary == direction.None {
		return
	}
	old := m.Position
	Move(w, e, dt)

	p := components.Projectile.Get(e)
	if m.Primary.IsHorizontal() {
		p.DistanceTravelled += gamemath.AxisDistance(old.X, m.Position.X)
	} else {
		p.DistanceTravelled += gamemath.AxisDistance(old.Y, m.Position.Y)
	}
	if DistanceLeftToTravel(e) <= 0 {
		munitionReachedMaxDistance(w, e)
	}

	spin := dt * munitionRotationRate(e)
	if m.Primary != direction.Right {
		spin = -spin
	}
	components.Sprite.Get(e).Rotation += spin
}

// projectileHitActor damages the actor and, for munitions with a stuck
// image, pins the projectile to it.
func projectileHitActor(w donburi.World, e, actor *donburi.Entry) {
	HitByProjectile(w, actor, float64(munitionOf(e).Damage), IsExploding(e))

	m := components.Movable.Get(e)
	if m.Status != components.Alive {
		return
	}
	StartDying(w, e, cfg.SoundHitActor)
	if !HasImage(e, cfg.SoundHitActor) {
		return
	}
	correctOvershoot(e, actor)
	am := components.Movable.Get(actor)
	components.Projectile.Get(e).Attached = &components.Attachment{
		Target: actor.Entity(),
		Offset: m.Position.Sub(am.Position),
	}
}

// correctOvershoot pulls back a projectile whose leading edge went past the
// far edge of the actor, which happens when fired from point blank.
func correctOvershoot(e, actor *donburi.Entry) {
	m := components.Movable.Get(e)
	am := components.Movable.Get(actor)
	vertical := m.Primary.IsVertical()
	ahead := 1.0
	if m.Primary == direction.Up || m.Primary == direction.Left {
		ahead = -1
	}

	pw, ph := Footprint(e)
	aw, ah := Footprint(actor)
	edgeProj := m.Position.X + ahead*gamemath.HalfOf(pw)
	edgeActor := am.Position.X + ahead*gamemath.HalfOf(aw)
	if vertical {
		edgeProj = m.Position.Y + ahead*gamemath.HalfOf(ph)
		edgeActor = am.Position.Y + ahead*gamemath.HalfOf(ah)
	}
	if ahead*(edgeProj-edgeActor) <= 0 {
		return
	}

	adjustment := -ahead * cfg.Physics.AttachAdjustment * gamemath.AxisDistance(edgeProj, edgeActor)
	if vertical {
		m.Position.Y += adjustment
	} else {
		m.Position.X += adjustment
	}
}

func projectileHitWall(w donburi.World, e *donburi.Entry) {
	StartDying(w, e, cfg.SoundHitWall)
	components.Projectile.Get(e).WallHitTimer.Reset(components.Movable.Get(e).HitDelay)
}
