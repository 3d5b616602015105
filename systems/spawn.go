package systems

import (
	"log"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Gives up placing a health pack after this many unlucky angles.
const maxSpawnAttempts = 64

// ObstructerLimit is how many large enemies a level may bring.
func ObstructerLimit(difficulty int) int {
	return difficulty + 1
}

// UpdateSpawns runs the health pack and enemy wave timers. Waves only come
// while the gates are open.
func UpdateSpawns(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	a := arenaData(w)

	if a.HealthPackTimer.RanOut() {
		if player, ok := tags.Player.First(w); ok {
			spawnHealthPack(w, components.Movable.Get(player).Position)
		}
		a.HealthPackTimer.Reset(cfg.Arena.HealthPackTime(a.Difficulty))
	} else {
		a.HealthPackTimer.Decrement(dt)
	}

	if !gatesOpen(w) {
		return
	}
	if a.WaveTimer.RanOut() {
		a.WaveTimer.Reset(cfg.Arena.WaveDelay)
		spawnWave(w)
	} else {
		a.WaveTimer.Decrement(dt)
	}
}

// spawnHealthPack drops a pack on a ring around the player, retrying angles
// until it lands inside the walls.
func spawnHealthPack(w donburi.World, around dmath.Vec2) {
	pack := factory.CreateHealthPack(w, around)
	width, height := Footprint(pack)
	walls := arenaData(w).Walls
	minX, maxX := walls.Left+gamemath.HalfOf(width), walls.Right-gamemath.HalfOf(width)
	minY, maxY := walls.Top+gamemath.HalfOf(height), walls.Bottom-gamemath.HalfOf(height)

	for range maxSpawnAttempts {
		angle := gamemath.RandAngleOfMultiple(random(w), cfg.HealthPack.SpawnAngle)
		pos := gamemath.PointOnCircle(around, cfg.HealthPack.SpawnDistance, angle)
		if pos.X >= minX && pos.X <= maxX && pos.Y >= minY && pos.Y <= maxY {
			components.Collectable.Get(pack).Position = pos
			PlaySound(w, pack, cfg.SoundSpawn, false)
			return
		}
	}
	log.Printf("Warning: no room for a health pack around (%.0f, %.0f)", around.X, around.Y)
	w.Remove(pack.Entity())
}

// spawnWave sends a few wanderers through the gate at every spawn point.
// Every few waves a large enemy starts rising somewhere on the board as
// well. It makes itself heard once it is out of the ground.
func spawnWave(w donburi.World) {
	a := arenaData(w)
	rng := random(w)
	a.Waves++

	shift := int(gamemath.HalfOf(cfg.Arena.TileSize))
	center := dmath.Vec2{
		X: gamemath.HalfOf(a.Walls.Left + a.Walls.Right),
		Y: gamemath.HalfOf(a.Walls.Top + a.Walls.Bottom),
	}
	for _, p := range a.EnemySpawns {
		facing, _ := WhereIs(p, center)
		n := gamemath.RandInt(rng, cfg.Arena.MinWaveSize, cfg.Arena.MaxWaveSize)
		for range n {
			pos := p.Add(dmath.Vec2{
				X: float64(gamemath.RandInt(rng, -shift, shift)),
				Y: float64(gamemath.RandInt(rng, -shift, shift)),
			})
			e := factory.CreateEnemy(w, cfg.EnemyWanderer, pos, facing)
			PlaySound(w, e, cfg.SoundSpawn, false)
		}
	}

	if a.Waves%cfg.Arena.ObstructerEveryWave != 0 || a.Obstructers >= ObstructerLimit(a.Difficulty) {
		return
	}
	col := rng.Intn(cfg.Arena.BoardTiles)
	row := rng.Intn(cfg.Arena.BoardTiles)
	pos := dmath.Vec2{
		X: a.Walls.Left + (float64(col)+0.5)*cfg.Arena.TileSize,
		Y: a.Walls.Top + (float64(row)+0.5)*cfg.Arena.TileSize,
	}
	factory.CreateEnemy(w, cfg.EnemyObstructer, pos, direction.Random(rng))
	a.Obstructers++
}
