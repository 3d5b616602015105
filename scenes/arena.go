package scenes

import (
	"math/rand"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/events"
	"github.com/automoto/gridfire/shared/leveldata"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/automoto/gridfire/systems"
	"github.com/automoto/gridfire/systems/factory"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ArenaConfig holds everything needed to start one level.
type ArenaConfig struct {
	Layout     *leveldata.ArenaData // Nil uses the built-in walls
	Difficulty int
	Seed       int64
	Listener   events.Listener
	Pilot      bool // Let the autopilot play the player
	PilotSkill cfg.PilotSkill
}

// ArenaScene owns one level's world and runs its frames in a fixed order.
type ArenaScene struct {
	ecs   *ecs.ECS
	frame int
}

// NewArenaScene builds the world for a level: the level singleton first,
// then the player at its spawn.
func NewArenaScene(conf ArenaConfig) *ArenaScene {
	w := donburi.NewWorld()

	opts := factory.ArenaOptions{
		Walls:      factory.DefaultWalls(),
		Difficulty: conf.Difficulty,
		Rand:       rand.New(rand.NewSource(conf.Seed)),
		Listener:   conf.Listener,
	}
	opts.PlayerSpawn = math.Vec2{
		X: (opts.Walls.Left + opts.Walls.Right) / 2,
		Y: (opts.Walls.Top + opts.Walls.Bottom) / 2,
	}
	if l := conf.Layout; l != nil {
		opts.Walls = components.Walls{Top: l.Top(), Bottom: l.Bottom(), Left: l.Left(), Right: l.Right()}
		opts.PlayerSpawn = math.Vec2{X: l.PlayerSpawn.X, Y: l.PlayerSpawn.Y}
		for _, p := range l.EnemySpawns {
			opts.EnemySpawns = append(opts.EnemySpawns, math.Vec2{X: p.X, Y: p.Y})
		}
	} else {
		opts.EnemySpawns = defaultEnemySpawns(opts.Walls)
	}
	factory.CreateArena(w, opts)

	if conf.Pilot {
		player := factory.CreatePlayer(w, opts.PlayerSpawn, components.Pilot)
		components.Pilot.SetValue(player, components.PilotData{
			Skill:         conf.PilotSkill,
			DecisionTimer: timer.New(0),
		})
	} else {
		factory.CreatePlayer(w, opts.PlayerSpawn)
	}

	s := &ArenaScene{ecs: ecs.NewECS(w)}
	s.ecs.
		AddSystem(systems.UpdateSpawns).
		AddSystem(systems.UpdateGates).
		AddSystem(systems.UpdatePilot).
		AddSystem(systems.UpdatePlayer).
		AddSystem(systems.UpdateEnemies).
		AddSystem(systems.UpdateProjectiles).
		AddSystem(systems.UpdateCollectables).
		AddSystem(systems.UpdateAudio).
		AddSystem(systems.DetectCollisions).
		AddSystem(systems.WithLevelInPlay(systems.DetectPlayerContacts)).
		AddSystem(systems.UpdateLevelState).
		AddSystem(systems.UpdateDeaths).
		AddSystem(systems.UpdateBurnChannel)
	return s
}

// defaultEnemySpawns puts a spawn half a tile inside the middle of each wall.
func defaultEnemySpawns(walls components.Walls) []math.Vec2 {
	inset := cfg.Arena.TileSize / 2
	cx := (walls.Left + walls.Right) / 2
	cy := (walls.Top + walls.Bottom) / 2
	return []math.Vec2{
		{X: cx, Y: walls.Top + inset},
		{X: walls.Left + inset, Y: cy},
		{X: walls.Right - inset, Y: cy},
		{X: cx, Y: walls.Bottom - inset},
	}
}

// Update simulates one frame. Long frames are cut to the frame rate so
// nothing moves through a wall between two collision passes.
func (s *ArenaScene) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.frame++
	a := s.State()
	a.Frame = s.frame
	a.Delta = min(dt, cfg.Arena.MaxDeltaTime())
	s.ecs.Update()
}

// AddRenderer registers a draw function for a layer. Layers draw in order.
func (s *ArenaScene) AddRenderer(l ecs.LayerID, r any) {
	s.ecs.AddRenderer(l, r)
}

// Draw runs every renderer registered for screen's type.
func (s *ArenaScene) Draw(screen any) {
	s.ecs.Draw(screen)
}

func (s *ArenaScene) World() donburi.World {
	return s.ecs.World
}

func (s *ArenaScene) Frame() int {
	return s.frame
}

// Player returns the player entity. The player is never removed.
func (s *ArenaScene) Player() *donburi.Entry {
	return tags.Player.MustFirst(s.World())
}

// State returns the level singleton.
func (s *ArenaScene) State() *components.ArenaData {
	return components.Arena.Get(components.Arena.MustFirst(s.World()))
}

// Over reports whether the level is settled and its closing cue played out.
func (s *ArenaScene) Over() bool {
	return systems.LevelOver(s.World())
}

// Health is the player's remaining health.
func (s *ArenaScene) Health() float64 {
	return components.Actor.Get(s.Player()).Health
}
