package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var from = dmath.Vec2{X: 300, Y: 300}

func newArena(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	CreateArena(w, ArenaOptions{
		Walls:      DefaultWalls(),
		Difficulty: 1,
		Rand:       rand.New(rand.NewSource(12345)),
	})
	return w
}

func TestStraightLaunch(t *testing.T) {
	w := newArena(t)
	conf := cfg.Munitions[cfg.MunitionBullet]

	for _, d := range direction.All {
		e := CreateMunition(w, cfg.MunitionBullet, Launch{From: from, Facing: d})

		m := components.Movable.Get(e)
		assert.Equal(t, from.Add(conf.SpawnOffsets[d]), m.Position, d.String())
		assert.Equal(t, conf.Speed, m.PrimarySpeed)
		assert.Equal(t, direction.None, m.Secondary)
		assert.Equal(t, spawnRotations[d], components.Sprite.Get(e).Rotation)
		assert.Equal(t, components.Alive, m.Status)
	}
}

func TestSpreadSpeedsInRange(t *testing.T) {
	w := newArena(t)
	conf := cfg.Munitions[cfg.MunitionPellet]

	for range 50 {
		e := CreateMunition(w, cfg.MunitionPellet, Launch{From: from, Facing: direction.Left})

		m := components.Movable.Get(e)
		assert.GreaterOrEqual(t, m.PrimarySpeed, conf.MinSpeed)
		assert.LessOrEqual(t, m.PrimarySpeed, conf.MaxSpeed)
		assert.GreaterOrEqual(t, m.SecondarySpeed, 0.0)
		assert.LessOrEqual(t, m.SecondarySpeed, conf.MaxSecondarySpeed)
		assert.True(t, m.Secondary.IsVertical(), "pellets fan out across the firing line")
	}
}

func TestParabolicLaunch(t *testing.T) {
	conf := cfg.Munitions[cfg.MunitionGrenade]
	size := cfg.Sprites[conf.Bank][conf.Name]
	bottom := gamemath.HalfOf(size.H) - cfg.Physics.BottomAdjustment
	const height = 13.5
	want := gamemath.SolveLaunch(cfg.Physics.Gravity, conf.MaxRange, height-bottom, conf.MaxHeight)

	t.Run("sideways", func(t *testing.T) {
		w := newArena(t)
		e := CreateMunition(w, cfg.MunitionGrenade, Launch{From: from, Facing: direction.Right, Floor: 320, Height: height})

		m := components.Movable.Get(e)
		assert.InDelta(t, want.HorizontalSpeed, m.PrimarySpeed, 1e-9)
		assert.Equal(t, direction.Up, m.Secondary)
		assert.InDelta(t, want.VerticalSpeed, m.SecondarySpeed, 1e-9)
		assert.Equal(t, 320.0, components.Throwable.Get(e).Floor)
		assert.Equal(t, from, m.Position, "thrown from the hand without an offset")
		assert.True(t, e.HasComponent(components.Fuse))
	})

	t.Run("up the screen", func(t *testing.T) {
		w := newArena(t)
		e := CreateMunition(w, cfg.MunitionGrenade, Launch{From: from, Facing: direction.Up, Floor: 320, Height: height})

		m := components.Movable.Get(e)
		assert.Equal(t, direction.None, m.Secondary)
		assert.InDelta(t, -want.VerticalSpeed, m.SecondarySpeed, 1e-9)
		assert.InDelta(t, from.Y+bottom-conf.MaxRange, components.Throwable.Get(e).Floor, 1e-9)
		assert.True(t, components.Sprite.Get(e).FlipH)
	})

	t.Run("above the apex", func(t *testing.T) {
		w := newArena(t)
		assert.Panics(t, func() {
			CreateMunition(w, cfg.MunitionGrenade, Launch{From: from, Facing: direction.Right, Height: conf.MaxHeight + bottom + 1})
		})
	})
}

func TestMunitionContracts(t *testing.T) {
	w := newArena(t)
	assert.Panics(t, func() {
		CreateMunition(w, cfg.MunitionBullet, Launch{From: from, Facing: direction.None})
	})
	assert.Panics(t, func() {
		CreateMunition(w, cfg.MunitionKind(99), Launch{From: from, Facing: direction.Up})
	})
}

func TestCreateArena(t *testing.T) {
	w := newArena(t)

	a := components.Arena.Get(components.Arena.MustFirst(w))
	assert.Equal(t, cfg.Arena.LevelTime, a.TimeLeft.TimeLeft())
	assert.Equal(t, cfg.Arena.FirstWaveDelay, a.WaveTimer.TimeLeft())
	assert.Equal(t, cfg.Arena.HealthPackTime(1), a.HealthPackTimer.TimeLeft())
	assert.Equal(t, 67.0, a.Walls.Top)
	assert.Equal(t, 630.0, a.Walls.Right)

	tests := []struct {
		name string
		opts ArenaOptions
	}{
		{"no random source", ArenaOptions{Walls: DefaultWalls()}},
		{"difficulty too high", ArenaOptions{Walls: DefaultWalls(), Difficulty: cfg.Arena.Difficulties, Rand: rand.New(rand.NewSource(1))}},
		{"empty walls", ArenaOptions{Walls: components.Walls{Top: 10, Bottom: 10, Left: 0, Right: 5}, Rand: rand.New(rand.NewSource(1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() { CreateArena(donburi.NewWorld(), tt.opts) })
		})
	}
}

func TestCreatePlayerLoadout(t *testing.T) {
	w := newArena(t)
	player := CreatePlayer(w, from)

	lo := components.Loadout.Get(player)
	require.Len(t, lo.Weapons, len(cfg.Loadout))
	for i, entity := range lo.Weapons {
		wd := components.Weapon.Get(w.Entry(entity))
		assert.Equal(t, cfg.Loadout[i], wd.Kind)
		assert.Equal(t, cfg.Weapons[wd.Kind].Capacity, wd.Ammo)
		assert.Equal(t, player.Entity(), wd.Owner)
	}
	assert.Equal(t, cfg.Player.MaxHealth, components.Actor.Get(player).Health)
	assert.Equal(t, direction.Down, components.Actor.Get(player).Facing)
}
