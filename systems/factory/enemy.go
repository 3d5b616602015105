package factory

import (
	"github.com/automoto/gridfire/archetypes"
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy at pos. Walking enemies set off in the
// direction they face, stationary ones only stand there. Enemies from a
// gate start at pos, enemies from the ground start below the ground line
// of the tile centered on pos.
func CreateEnemy(w donburi.World, kind cfg.EnemyKind, pos dmath.Vec2, facing direction.Direction) *donburi.Entry {
	conf, ok := cfg.Enemies[kind]
	contract.Require(ok, "unknown enemy kind")
	contract.Require(facing != direction.None, "enemies always face a direction")

	primary := facing
	if conf.Stationary {
		primary = direction.None
	}
	e := archetypes.Enemy.Spawn(w)
	setupActor(e, conf, pos, primary, facing)
	components.Enemy.SetValue(e, components.EnemyData{Kind: kind})

	switch conf.Spawn {
	case cfg.SpawnFromGate:
		spawnFromGate(w, e)
	case cfg.SpawnFromGround:
		spawnFromGround(e)
	default:
		contract.Failf("unknown spawn kind %d", conf.Spawn)
	}
	return e
}

// spawnFromGate starts an enemy inside its gate. Hits land once its back
// has cleared the wall behind it, and it is let go a little further on.
func spawnFromGate(w donburi.World, e *donburi.Entry) {
	a := components.Arena.Get(components.Arena.MustFirst(w))
	width, height := components.Sprite.Get(e).Footprint()
	from := components.Movable.Get(e).Position

	var exit float64
	switch facing := components.Actor.Get(e).Facing; facing {
	case direction.Up:
		exit = gamemath.AxisDistance(from.Y+gamemath.HalfOf(height), a.Walls.Bottom)
	case direction.Down:
		exit = gamemath.AxisDistance(from.Y-gamemath.HalfOf(height), a.Walls.Top)
	case direction.Left:
		exit = gamemath.AxisDistance(from.X+gamemath.HalfOf(width), a.Walls.Right)
	case direction.Right:
		exit = gamemath.AxisDistance(from.X-gamemath.HalfOf(width), a.Walls.Left)
	default:
		contract.Failf("unknown direction %d", facing)
	}

	tile := int(cfg.Arena.TileSize)
	components.Emergence.SetValue(e, components.EmergenceData{
		From:        from,
		OutOfGround: true,
		GateExit:    exit,
		GateCover:   exit + float64(gamemath.RandInt(a.Rand, 0, cfg.Actors.GateExtraMax)),
		GateWander:  float64(gamemath.RandInt(a.Rand, tile/2, tile)),
	})
}

// spawnFromGround hides an enemy below the ground line of its tile. It
// climbs the first stage on its first update and the rest a stage time
// apart.
func spawnFromGround(e *donburi.Entry) {
	width, height := components.Sprite.Get(e).Footprint()
	contract.Require(width <= cfg.Arena.TileSize && height <= cfg.Arena.TileSize, "enemy too big to rise from the ground")

	m := components.Movable.Get(e)
	ground := m.Position.Y + gamemath.HalfOf(cfg.Arena.TileSize) - cfg.Actors.GroundLine
	m.Position.Y = ground + gamemath.HalfOf(height)

	components.Emergence.SetValue(e, components.EmergenceData{
		From:      m.Position,
		OutOfGate: true,
	})
}
