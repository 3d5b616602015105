package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func kindOf(e *donburi.Entry) cfg.MunitionKind {
	return components.Projectile.Get(e).Kind
}

func updateMunition(w donburi.World, e *donburi.Entry, dt float64) {
	if e.HasComponent(components.Throwable) {
		updateThrowable(w, e, dt)
	} else {
		updateProjectile(w, e, dt)
	}

	switch kindOf(e) {
	case cfg.MunitionGrenade:
		updateFuse(w, e, dt)
	case cfg.MunitionFlame:
		updateFlame(w, e, dt)
	}
}

func munitionDyingRotation(w donburi.World, e *donburi.Entry) float64 {
	switch kindOf(e) {
	case cfg.MunitionArrow:
		return components.Projectile.Get(e).SpawnRotation
	case cfg.MunitionHatchet:
		return hatchetDyingRotation(e)
	}
	return gamemath.RandAngleOfMultiple(random(w), cfg.Physics.ProjectileDyingAngle)
}

func munitionRotationRate(e *donburi.Entry) float64 {
	if kindOf(e) == cfg.MunitionHatchet && hatchetHitWall(e) {
		return 0
	}
	return munitionOf(e).RotationRate
}

func munitionHitWall(w donburi.World, e *donburi.Entry, _ dmath.Vec2) {
	switch kindOf(e) {
	case cfg.MunitionArrow:
		projectileHitWall(w, e)
		// Broken on a random side
		if gamemath.RandBool(random(w)) {
			sp := components.Sprite.Get(e)
			sp.FlipV = !sp.FlipV
		}
	case cfg.MunitionRocket:
		StartDying(w, e, cfg.SoundExplode)
	case cfg.MunitionFlame:
		burn(w, e, 0)
	case cfg.MunitionGrenade:
		throwableHitWall(w, e)
		wallBounce(w, e)
	case cfg.MunitionHatchet:
		throwableHitWall(w, e)
		wallDrop(w, e)
	case cfg.MunitionFireBottle:
		smash(w, e)
	default:
		projectileHitWall(w, e)
	}
}

// MunitionHitActor applies a projectile hit to an actor.
func MunitionHitActor(w donburi.World, e, actor *donburi.Entry) {
	alive := components.Movable.Get(e).Status == components.Alive
	switch kindOf(e) {
	case cfg.MunitionRocket:
		if alive {
			StartDying(w, e, cfg.SoundExplode)
		}
		projectileHitActor(w, e, actor)
	case cfg.MunitionFlame:
		if alive {
			burn(w, e, cfg.Flame.HitActorBurnTime)
		}
		projectileHitActor(w, e, actor)
	case cfg.MunitionGrenade:
		if alive {
			grenadeBounceOff(w, e, actor)
			return
		}
		projectileHitActor(w, e, actor)
	case cfg.MunitionHatchet:
		hatchetHitActor(w, e, actor)
	case cfg.MunitionFireBottle:
		smash(w, e)
	default:
		projectileHitActor(w, e, actor)
	}
}

// MunitionHitFloor lands a throwable on its floor.
func MunitionHitFloor(w donburi.World, e *donburi.Entry) {
	switch kindOf(e) {
	case cfg.MunitionGrenade:
		throwableHitFloor(w, e)
		floorBounce(e)
	case cfg.MunitionHatchet:
		hatchetHitFloor(w, e)
	case cfg.MunitionFireBottle:
		smash(w, e)
	default:
		throwableHitFloor(w, e)
	}
}

func munitionReachedMaxDistance(w donburi.World, e *donburi.Entry) {
	switch {
	case e.HasComponent(components.Throwable):
		// Keeps flying until it meets its floor
	case kindOf(e) == cfg.MunitionFlame:
		burn(w, e, 0)
	default:
		components.Movable.Get(e).Status = components.Dead
	}
}

func updateFuse(w donburi.World, e *donburi.Entry, dt float64) {
	m := components.Movable.Get(e)
	if m.Status != components.Alive {
		return
	}
	// A grenade at rest on the floor is not knocked about by actors
	if m.Primary == direction.None {
		m.HitTimer.Reset(m.HitDelay)
	}
	fuse := components.Fuse.Get(e)
	if fuse.Timer.RanOut() {
		StartDying(w, e, cfg.SoundExplode)
	} else {
		fuse.Timer.Decrement(dt)
	}
}

func grenadeBounceOff(w donburi.World, e, actor *donburi.Entry) {
	PlaySound(w, e, cfg.SoundHitActor, false)
	m := components.Movable.Get(e)
	m.HitTimer.Reset(m.HitDelay)
	m.Primary = m.Primary.Opposite()
	setPrimarySpeed(m, m.PrimarySpeed*cfg.Grenade.SpeedRemaining)
	StunFor(actor, cfg.Grenade.StunTime)
	components.Throwable.Get(e).Floor = Feet(actor)
}

// hatchetHitWall reports whether the hatchet lost its speed to a wall.
func hatchetHitWall(e *donburi.Entry) bool {
	return components.Movable.Get(e).PrimarySpeed <= cfg.Hatchet.WallHitSpeed
}

// hatchetInActor reports whether the hatchet stopped inside an actor.
func hatchetInActor(e *donburi.Entry) bool {
	return components.Movable.Get(e).PrimarySpeed == 0
}

func hatchetHitActor(w donburi.World, e, actor *donburi.Entry) {
	// Harmless once it bounced off a wall
	if hatchetHitWall(e) {
		return
	}
	m := components.Movable.Get(e)
	// Stopped before dying so the dying rotation sees it in the actor
	setPrimarySpeed(m, 0)
	projectileHitActor(w, e, actor)

	sp := components.Sprite.Get(e)
	switch m.Primary {
	case direction.Down:
		sp.FlipV = !sp.FlipV
	case direction.Left, direction.Up:
		sp.FlipH = !sp.FlipH
	}
}

func hatchetHitFloor(w donburi.World, e *donburi.Entry) {
	sp := components.Sprite.Get(e)
	if hatchetHitWall(e) {
		lying := gamemath.NormalizeDegrees(sp.Rotation)
		StartDying(w, e, cfg.SoundOnFloor)
		if lying >= cfg.Hatchet.OnFloorFlipAngle {
			sp.FlipH = !sp.FlipH
		}
		return
	}
	StartDying(w, e, cfg.SoundInFloor)
	if components.Movable.Get(e).Primary != direction.Right {
		sp.FlipH = !sp.FlipH
	}
}

func hatchetDyingRotation(e *donburi.Entry) float64 {
	prim := components.Movable.Get(e).Primary
	var table map[direction.Direction]float64
	switch {
	case hatchetInActor(e):
		table = cfg.Hatchet.InActorRotations
	case hatchetHitWall(e):
		return 0
	default:
		table = cfg.Hatchet.InFloorRotations
	}
	r, ok := table[prim]
	if !ok {
		contract.Failf("hatchet has no dying rotation for %s", prim)
	}
	return r
}

// smash breaks a fire bottle into a ring of burning flames.
func smash(w donburi.World, e *donburi.Entry) {
	StartDying(w, e, cfg.SoundSmash)
	m := components.Movable.Get(e)
	step := 360 / float64(cfg.FireBottle.Flames-1)
	for f := 0; f < cfg.FireBottle.Flames; f++ {
		pos := m.Position
		if f > 0 {
			pos = gamemath.PointOnCircle(m.Position, cfg.FireBottle.FlameRadius, float64(f)*step)
		}
		burn(w, factory.CreateFlame(w, pos, m.Primary), cfg.FireBottle.BurnTime)
	}
}
