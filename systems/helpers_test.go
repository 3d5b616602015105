package systems

import (
	"math/rand"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/events"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var center = dmath.Vec2{X: 346, Y: 347}

// newWorld returns a world holding only the level singleton, seeded the
// same way every time.
func newWorld(l events.Listener) donburi.World {
	w := donburi.NewWorld()
	factory.CreateArena(w, factory.ArenaOptions{
		Walls:       factory.DefaultWalls(),
		PlayerSpawn: center,
		Difficulty:  1,
		Rand:        rand.New(rand.NewSource(12345)),
		Listener:    l,
	})
	return w
}

// patchMunition edits one munition's tuning and returns a func restoring it.
func patchMunition(kind cfg.MunitionKind, edit func(*cfg.MunitionConfig)) func() {
	old := cfg.Munitions[kind]
	m := old
	edit(&m)
	cfg.Munitions[kind] = m
	return func() { cfg.Munitions[kind] = old }
}

func launch(w donburi.World, kind cfg.MunitionKind, from dmath.Vec2, facing direction.Direction) *donburi.Entry {
	return factory.CreateMunition(w, kind, factory.Launch{From: from, Facing: facing})
}

// newEnemy returns an enemy standing at pos that is already out of its
// gate or the ground.
func newEnemy(w donburi.World, kind cfg.EnemyKind, pos dmath.Vec2, facing direction.Direction) *donburi.Entry {
	e := factory.CreateEnemy(w, kind, pos, facing)
	em := components.Emergence.Get(e)
	em.OutOfGate, em.OutOfGround = true, true
	components.Movable.Get(e).Position = pos
	return e
}

func statusOf(e *donburi.Entry) components.HealthStatus {
	return components.Movable.Get(e).Status
}

func positionOf(e *donburi.Entry) dmath.Vec2 {
	return components.Movable.Get(e).Position
}

// run simulates one frame of dt seconds through the given systems only.
func run(w donburi.World, dt float64, systems ...ecs.System) {
	arenaData(w).Delta = dt
	e := ecs.NewECS(w)
	for _, system := range systems {
		system(e)
	}
}

// step runs the systems that move munitions and voices.
func step(w donburi.World, dt float64) {
	run(w, dt, UpdateProjectiles, UpdateAudio)
}

// collide runs the whole collision pass the way the arena scene does.
func collide(w donburi.World) {
	run(w, frameTime(w), DetectCollisions, WithLevelInPlay(DetectPlayerContacts))
}
