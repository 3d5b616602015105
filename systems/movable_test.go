package systems

import (
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestStatusOnlyMovesForward(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newWorld(nil)
		e := newEnemy(w, cfg.EnemyWanderer, center, direction.Down)
		last := statusOf(e)

		ops := rapid.IntRange(1, 300).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				dt := rapid.Float64Range(0.001, cfg.Arena.MaxDeltaTime()).Draw(t, "dt")
				UpdateMovable(e, dt)
				run(w, dt, UpdateAudio)
			case 1:
				if statusOf(e) == components.Alive {
					TakeDamage(w, e, rapid.Float64Range(0, 60).Draw(t, "damage"), rapid.Bool().Draw(t, "reset"))
				}
			case 2:
				if IsReadyForWallCollision(e) {
					HitWall(w, e, positionOf(e))
				}
			case 3:
				RestoreHealth(e, 10)
			}
			now := statusOf(e)
			if now < last {
				t.Fatalf("status went from %v back to %v", last, now)
			}
			last = now
		}
	})
}

func TestDyingWaitsForItsClip(t *testing.T) {
	w := newWorld(nil)
	e := newEnemy(w, cfg.EnemyWanderer, center, direction.Down)
	clip, ok := cfg.ClipLength(cfg.Enemies[cfg.EnemyWanderer].Bank, cfg.SoundDying)
	require.True(t, ok)
	require.Less(t, clip, cfg.Actors.DyingTime)

	TakeDamage(w, e, 1000, false)
	require.Equal(t, components.Dying, statusOf(e))

	// Timer first, the clip is shorter
	elapsed := 0.0
	for statusOf(e) == components.Dying && elapsed < 10 {
		UpdateMovable(e, 0.01)
		run(w, 0.01, UpdateAudio)
		elapsed += 0.01
	}
	assert.Equal(t, components.Dead, statusOf(e))
	assert.InDelta(t, cfg.Actors.DyingTime, elapsed, 0.05)

	// A playing clip holds the entity in Dying after the timer ran out
	e2 := newEnemy(w, cfg.EnemyWanderer, center, direction.Down)
	TakeDamage(w, e2, 1000, false)
	components.Movable.Get(e2).DyingTimer.Reset(0)
	UpdateMovable(e2, 0.01)
	assert.Equal(t, components.Dying, statusOf(e2))
	StopSound(e2)
	UpdateMovable(e2, 0.01)
	assert.Equal(t, components.Dead, statusOf(e2))
}

func TestMoveUsesBothAxes(t *testing.T) {
	w := newWorld(nil)
	e := newEnemy(w, cfg.EnemyWanderer, dmath.Vec2{X: 100, Y: 100}, direction.Down)
	m := components.Movable.Get(e)
	m.Primary, m.Secondary = direction.Left, direction.Down
	m.PrimarySpeed, m.SecondarySpeed = 50, 20

	Move(w, e, 0.5)

	assert.Equal(t, dmath.Vec2{X: 75, Y: 110}, positionOf(e))
	assert.Equal(t, cfg.SoundMoving, components.Sound.Get(e).Token)

	m.Primary = direction.None
	Move(w, e, 0.5)
	assert.Equal(t, dmath.Vec2{X: 75, Y: 110}, positionOf(e))
	assert.False(t, SoundPlaying(e))
}

func TestNegativeSpeedPanics(t *testing.T) {
	m := &components.MovableData{}
	assert.Panics(t, func() { setPrimarySpeed(m, -1) })
}
