package systems

import (
	"math"
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestBulletStopsAtItsRange(t *testing.T) {
	defer patchMunition(cfg.MunitionBullet, func(m *cfg.MunitionConfig) { m.MaxRange = 120 })()
	w := newWorld(nil)
	bullet := launch(w, cfg.MunitionBullet, dmath.Vec2{X: 200, Y: 300}, direction.Right)
	start := positionOf(bullet)

	// 300 px/s for 0.4 s, 40 steps of 0.01 s
	for i := 1; i < 40; i++ {
		step(w, 0.01)
		require.Equal(t, components.Alive, statusOf(bullet), "step %d", i)
	}
	step(w, 0.01)
	assert.Equal(t, components.Dead, statusOf(bullet))
	assert.Equal(t, 120.0, components.Projectile.Get(bullet).DistanceTravelled)
	assert.Equal(t, start.X+120, positionOf(bullet).X)
}

func TestDistanceTravelledFollowsPosition(t *testing.T) {
	kinds := []cfg.MunitionKind{cfg.MunitionArrow, cfg.MunitionBullet, cfg.MunitionRocket}
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(t, "kind")
		facing := rapid.SampledFrom(direction.All[:]).Draw(t, "facing")
		steps := rapid.IntRange(1, 200).Draw(t, "steps")

		w := newWorld(nil)
		e := launch(w, kind, center, facing)
		start := positionOf(e)
		maxRange := cfg.Munitions[kind].MaxRange

		for i := 0; i < steps && statusOf(e) == components.Alive; i++ {
			dt := rapid.Float64Range(0.001, cfg.Arena.MaxDeltaTime()).Draw(t, "dt")
			step(w, dt)

			pos := positionOf(e)
			moved := math.Abs(pos.X - start.X)
			if facing.IsVertical() {
				moved = math.Abs(pos.Y - start.Y)
			}
			travelled := components.Projectile.Get(e).DistanceTravelled
			if math.Abs(moved-travelled) > 1e-6 {
				t.Fatalf("moved %v but counted %v", moved, travelled)
			}
			if alive := statusOf(e) == components.Alive; alive != (travelled < maxRange) {
				t.Fatalf("status %v after %v of %v", statusOf(e), travelled, maxRange)
			}
		}
	})
}

func TestStuckArrowFollowsItsTarget(t *testing.T) {
	w := newWorld(nil)
	enemy := newEnemy(w, cfg.EnemyWanderer, dmath.Vec2{X: 300, Y: 300}, direction.Left)
	arrow := launch(w, cfg.MunitionArrow, dmath.Vec2{X: 280, Y: 300}, direction.Right)

	MunitionHitActor(w, arrow, enemy)
	require.Equal(t, components.Dying, statusOf(arrow))
	attached := components.Projectile.Get(arrow).Attached
	require.NotNil(t, attached)
	offset := attached.Offset

	components.Movable.Get(enemy).Position = dmath.Vec2{X: 320, Y: 310}
	step(w, 0.01)
	assert.Equal(t, positionOf(enemy).Add(offset), positionOf(arrow))
	assert.Equal(t, components.Movable.Get(enemy).DyingTimer.TimeLeft(), components.Movable.Get(arrow).DyingTimer.TimeLeft(),
		"a stuck arrow lasts as long as its target")

	TakeDamage(w, enemy, 1000, false)
	require.Equal(t, components.Dying, statusOf(enemy))
	step(w, 0.01)
	assert.True(t, components.Projectile.Get(arrow).Attached.StartedDying)

	w.Remove(enemy.Entity())
	step(w, 0.01)
	assert.Nil(t, components.Projectile.Get(arrow).Attached, "the arrow lets go of a removed target")
}

func TestArrowOvershootIsPulledBack(t *testing.T) {
	w := newWorld(nil)
	enemy := newEnemy(w, cfg.EnemyWanderer, dmath.Vec2{X: 300, Y: 300}, direction.Left)
	// Fired from point blank, the tip is already past the enemy's far edge
	arrow := launch(w, cfg.MunitionArrow, dmath.Vec2{X: 305, Y: 300}, direction.Right)

	MunitionHitActor(w, arrow, enemy)
	ew, _ := Footprint(enemy)
	aw, _ := Footprint(arrow)
	assert.LessOrEqual(t, positionOf(arrow).X+aw/2, positionOf(enemy).X+ew/2)
}

func TestRocketExplodesOnWall(t *testing.T) {
	w := newWorld(nil)
	walls := arenaData(w).Walls
	rocket := launch(w, cfg.MunitionRocket, dmath.Vec2{X: walls.Right - 30, Y: 300}, direction.Right)

	for i := 0; i < 30 && statusOf(rocket) == components.Alive; i++ {
		step(w, 0.01)
		collide(w)
	}
	assert.Equal(t, components.Dying, statusOf(rocket))
	assert.Equal(t, cfg.SoundExplode, components.Sprite.Get(rocket).Visual)
	assert.True(t, IsExploding(rocket))
}
