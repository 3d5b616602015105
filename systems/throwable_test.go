package systems

import (
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// landedGrenade returns a grenade that just touched its floor with the
// given motion.
func landedGrenade(w donburi.World, primary, secondary direction.Direction, primarySpeed, secondarySpeed float64) *donburi.Entry {
	e := factory.CreateMunition(w, cfg.MunitionGrenade, factory.Launch{
		From:   center,
		Facing: direction.Right,
		Floor:  center.Y + 20,
		Height: 10,
	})
	m := components.Movable.Get(e)
	m.Primary, m.Secondary = primary, secondary
	m.PrimarySpeed, m.SecondarySpeed = primarySpeed, secondarySpeed
	components.Throwable.Get(e).FloorHitTimer = timer.New(m.HitDelay)
	return e
}

func TestFloorBounceRegimes(t *testing.T) {
	tests := []struct {
		name          string
		speed         float64
		wantPrimary   direction.Direction
		wantSecondary direction.Direction
		wantSpeed     float64
	}{
		{"below stop speed halts", cfg.Physics.StopSpeed - 1, direction.None, direction.None, cfg.Physics.StopSpeed - 1},
		{"at stop speed rolls", cfg.Physics.StopSpeed, direction.Right, direction.None, cfg.Physics.StopSpeed * cfg.Physics.RollDecay},
		{"at roll speed rolls", cfg.Physics.RollSpeed, direction.Right, direction.None, cfg.Physics.RollSpeed * cfg.Physics.RollDecay},
		{"above roll speed bounces", cfg.Physics.RollSpeed + 1, direction.Right, direction.Up, (cfg.Physics.RollSpeed + 1) * cfg.Physics.BounceDecay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(nil)
			e := landedGrenade(w, direction.Right, direction.Down, tt.speed, 40)

			floorBounce(e)

			m := components.Movable.Get(e)
			assert.Equal(t, tt.wantPrimary, m.Primary)
			assert.Equal(t, tt.wantSecondary, m.Secondary)
			assert.InDelta(t, tt.wantSpeed, m.PrimarySpeed, 1e-9)
		})
	}
}

func TestFloorBounceDecaysRebound(t *testing.T) {
	w := newWorld(nil)
	e := landedGrenade(w, direction.Right, direction.Down, 100, 40)

	floorBounce(e)

	assert.InDelta(t, 40*cfg.Physics.BounceDecay, components.Movable.Get(e).SecondarySpeed, 1e-9)
}

func TestVerticalFloorBounceMovesTheFloor(t *testing.T) {
	w := newWorld(nil)
	e := landedGrenade(w, direction.Down, direction.None, 100, -30)
	floor := components.Throwable.Get(e).Floor

	floorBounce(e)

	m := components.Movable.Get(e)
	assert.Equal(t, direction.None, m.Secondary)
	assert.InDelta(t, -30*cfg.Physics.BounceDecay, m.SecondarySpeed, 1e-9)
	// Airtime of the rebound at the decayed speed
	rebound := 30 * cfg.Physics.BounceDecay
	tof := 2 * rebound / cfg.Physics.Gravity
	assert.InDelta(t, floor+m.PrimarySpeed*tof, components.Throwable.Get(e).Floor, 1e-9)
}

func TestFloorBounceOutsideFloorHitPanics(t *testing.T) {
	w := newWorld(nil)
	e := landedGrenade(w, direction.Right, direction.Down, 100, 40)
	components.Throwable.Get(e).FloorHitTimer = timer.Timer{}

	assert.Panics(t, func() { floorBounce(e) })
}

func TestGravityTurnsAtTheApex(t *testing.T) {
	m := &components.MovableData{Primary: direction.Right, Secondary: direction.Up, SecondarySpeed: 10}

	applyGravity(m, 0.01)
	assert.Equal(t, direction.Up, m.Secondary, "still rising")
	assert.InDelta(t, 10-cfg.Physics.Gravity*0.01, m.SecondarySpeed, 1e-9)

	applyGravity(m, 0.1)
	assert.Equal(t, direction.Down, m.Secondary)
	assert.Greater(t, m.SecondarySpeed, 0.0)
}

func TestThrownGrenadeLandsOnItsFloor(t *testing.T) {
	w := newWorld(nil)
	e := factory.CreateMunition(w, cfg.MunitionGrenade, factory.Launch{
		From:   center,
		Facing: direction.Right,
		Floor:  center.Y + 13,
		Height: 15,
	})

	bounced := false
	for i := 0; i < 400 && !bounced; i++ {
		step(w, 0.01)
		if IsReadyForFloorCollision(e) && DistanceFromFloor(e) <= 0 {
			MunitionHitFloor(w, e)
			bounced = true
		}
	}
	assert.True(t, bounced)
	assert.False(t, components.Throwable.Get(e).FloorHitTimer.RanOut())
	assert.Equal(t, direction.Up, components.Movable.Get(e).Secondary, "bounced back up")
}

func TestWallDropSendsHatchetDown(t *testing.T) {
	w := newWorld(nil)
	e := factory.CreateMunition(w, cfg.MunitionHatchet, factory.Launch{
		From:   center,
		Facing: direction.Right,
		Floor:  center.Y + 13,
		Height: 10,
	})

	HitWall(w, e, positionOf(e))

	m := components.Movable.Get(e)
	assert.Equal(t, direction.Left, m.Primary)
	assert.Equal(t, cfg.Physics.WallDropSpeed, m.PrimarySpeed)
	assert.Equal(t, direction.Down, m.Secondary)
	assert.True(t, hatchetHitWall(e))
}

func TestWallBounce(t *testing.T) {
	left := (cfg.Munitions[cfg.MunitionGrenade].MaxRange - 100) * cfg.Physics.WallBounceDecay
	tests := []struct {
		name      string
		primary   direction.Direction
		want      direction.Direction
		wantFloor func(components.Walls, float64) float64 // Floor before the hit is passed in
	}{
		{"right", direction.Right, direction.Left, func(_ components.Walls, f float64) float64 { return f }},
		{"left", direction.Left, direction.Right, func(_ components.Walls, f float64) float64 { return f }},
		{"up off the top wall", direction.Up, direction.Down, func(w components.Walls, _ float64) float64 { return w.Top + left }},
		{"down off the bottom wall", direction.Down, direction.Up, func(w components.Walls, _ float64) float64 { return w.Bottom - left }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(nil)
			e := landedGrenade(w, tt.primary, direction.None, 200, 0)
			components.Projectile.Get(e).DistanceTravelled = 100
			floor := components.Throwable.Get(e).Floor

			HitWall(w, e, positionOf(e))

			m := components.Movable.Get(e)
			assert.Equal(t, tt.want, m.Primary)
			assert.Equal(t, 200*cfg.Physics.WallBounceDecay, m.PrimarySpeed)
			assert.InDelta(t, tt.wantFloor(arenaData(w).Walls, floor), components.Throwable.Get(e).Floor, 1e-9)
			assert.False(t, components.Projectile.Get(e).WallHitTimer.RanOut())
			assert.Equal(t, cfg.SoundHitWall, components.Sound.Get(e).Token)
		})
	}
}

func TestGrenadeBouncesOffActors(t *testing.T) {
	tests := []struct {
		name  string
		actor func(donburi.World) *donburi.Entry
	}{
		{"player", func(w donburi.World) *donburi.Entry { return factory.CreatePlayer(w, center.Add(dmath.Vec2{X: 10, Y: 40})) }},
		{"enemy", func(w donburi.World) *donburi.Entry {
			return newEnemy(w, cfg.EnemyWanderer, center.Add(dmath.Vec2{X: 10, Y: -40}), direction.Left)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(nil)
			actor := tt.actor(w)
			health := components.Actor.Get(actor).Health
			e := landedGrenade(w, direction.Right, direction.Down, 200, 40)

			MunitionHitActor(w, e, actor)

			m := components.Movable.Get(e)
			assert.Equal(t, components.Alive, m.Status)
			assert.Equal(t, direction.Left, m.Primary)
			assert.InDelta(t, 200*cfg.Grenade.SpeedRemaining, m.PrimarySpeed, 1e-9)
			assert.False(t, m.HitTimer.RanOut())
			assert.Equal(t, Feet(actor), components.Throwable.Get(e).Floor)
			assert.Equal(t, cfg.SoundHitActor, components.Sound.Get(e).Token)

			assert.True(t, IsStunned(actor))
			assert.Equal(t, cfg.Grenade.StunTime, components.Actor.Get(actor).StunTimer.TimeLeft())
			assert.Equal(t, health, components.Actor.Get(actor).Health, "a live grenade only stuns")
		})
	}
}
