package systems

import (
	"math"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePilot plays the player when nobody is at the keyboard. It lines up
// with the closest enemy along an axis and fires, backs off when crowded
// and goes for health packs when hurt.
func UpdatePilot(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	e, ok := tags.Player.First(w)
	if !ok || !e.HasComponent(components.Pilot) {
		return
	}
	if components.Movable.Get(e).Status != components.Alive {
		return
	}
	p := components.Pilot.Get(e)
	if !p.DecisionTimer.RanOut() {
		p.DecisionTimer.Decrement(dt)
		return
	}
	skill := cfg.Pilot.Skills[p.Skill]
	p.DecisionTimer.Reset(skill.ReactionDelay)

	pos := components.Movable.Get(e).Position
	a := components.Actor.Get(e)
	if a.Health < a.MaxHealth*skill.HealthSeekPercent {
		if pack, found := nearestPack(w, pos); found {
			first, second := WhereIs(pos, pack)
			SteerPlayer(e, first, second)
			SetUsingWeapon(w, e, false)
			return
		}
	}

	target, found := nearestEnemy(w, pos)
	if !found {
		SteerPlayer(e, direction.None, direction.None)
		SetUsingWeapon(w, e, false)
		return
	}

	first, second := WhereIs(pos, target)
	dist := gamemath.Distance(pos, target)
	switch {
	case dist < skill.KeepAwayRange:
		SteerPlayer(e, first.Opposite(), direction.None)
		SetUsingWeapon(w, e, false)
	case dist <= skill.EngageRange:
		offAxis := gamemath.AxisDistance(pos.X, target.X)
		if first.IsHorizontal() {
			offAxis = gamemath.AxisDistance(pos.Y, target.Y)
		}
		if offAxis <= skill.AimTolerance {
			SteerPlayer(e, direction.None, direction.None)
			face(e, first)
			SetUsingWeapon(w, e, true)
		} else {
			SteerPlayer(e, second, direction.None)
			SetUsingWeapon(w, e, false)
		}
	default:
		SteerPlayer(e, first, second)
		SetUsingWeapon(w, e, false)
	}

	if IsReloading(EquippedWeapon(w, e)) {
		SwapWeapon(w, e)
	}
}

func nearestEnemy(w donburi.World, from dmath.Vec2) (dmath.Vec2, bool) {
	best, found := dmath.Vec2{}, false
	bestDist := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		m := components.Movable.Get(e)
		if m.Status != components.Alive {
			return
		}
		if d := gamemath.Distance(from, m.Position); d < bestDist {
			best, bestDist, found = m.Position, d, true
		}
	})
	return best, found
}

func nearestPack(w donburi.World, from dmath.Vec2) (dmath.Vec2, bool) {
	best, found := dmath.Vec2{}, false
	bestDist := math.Inf(1)
	tags.Collectable.Each(w, func(e *donburi.Entry) {
		c := components.Collectable.Get(e)
		if c.Collected || c.Despawned() {
			return
		}
		if d := gamemath.Distance(from, c.Position); d < bestDist {
			best, bestDist, found = c.Position, d, true
		}
	})
	return best, found
}
