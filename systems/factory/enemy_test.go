package factory

import (
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestGateSpawn(t *testing.T) {
	walls := DefaultWalls()
	tests := []struct {
		facing direction.Direction
		behind func(pos dmath.Vec2, w, h float64) float64 // Trailing edge to the wall behind
	}{
		{direction.Up, func(p dmath.Vec2, _, h float64) float64 { return walls.Bottom - (p.Y + h/2) }},
		{direction.Down, func(p dmath.Vec2, _, h float64) float64 { return p.Y - h/2 - walls.Top }},
		{direction.Left, func(p dmath.Vec2, w, _ float64) float64 { return walls.Right - (p.X + w/2) }},
		{direction.Right, func(p dmath.Vec2, w, _ float64) float64 { return p.X - w/2 - walls.Left }},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			w := newArena(t)

			e := CreateEnemy(w, cfg.EnemyWanderer, from, tt.facing)

			width, height := components.Sprite.Get(e).Footprint()
			em := components.Emergence.Get(e)
			assert.Equal(t, from, em.From)
			assert.Equal(t, from, components.Movable.Get(e).Position)
			assert.True(t, em.OutOfGround)
			assert.False(t, em.OutOfGate)
			assert.InDelta(t, tt.behind(from, width, height), em.GateExit, 1e-9)
			assert.GreaterOrEqual(t, em.GateCover, em.GateExit)
			assert.LessOrEqual(t, em.GateCover, em.GateExit+float64(cfg.Actors.GateExtraMax))
			assert.GreaterOrEqual(t, em.GateWander, gamemath.HalfOf(cfg.Arena.TileSize)-1)
			assert.LessOrEqual(t, em.GateWander, cfg.Arena.TileSize)
		})
	}
}

func TestGroundSpawn(t *testing.T) {
	w := newArena(t)

	e := CreateEnemy(w, cfg.EnemyObstructer, from, direction.Left)

	_, height := components.Sprite.Get(e).Footprint()
	ground := from.Y + gamemath.HalfOf(cfg.Arena.TileSize) - cfg.Actors.GroundLine
	em := components.Emergence.Get(e)
	assert.True(t, em.OutOfGate)
	assert.False(t, em.OutOfGround)
	assert.Equal(t, ground+height/2, components.Movable.Get(e).Position.Y, "top at the ground line")
	assert.Equal(t, components.Movable.Get(e).Position, em.From)
	assert.Zero(t, em.Risen())
	assert.True(t, em.StageTimer.RanOut(), "the first stage climbs right away")
}
