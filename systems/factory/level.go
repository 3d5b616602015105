package factory

import (
	"math/rand"

	"github.com/automoto/gridfire/archetypes"
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/events"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ArenaOptions describes one level before it starts.
type ArenaOptions struct {
	Walls       components.Walls
	PlayerSpawn math.Vec2
	EnemySpawns []math.Vec2
	Difficulty  int
	Rand        *rand.Rand
	Listener    events.Listener // Optional
}

// DefaultWalls are the walls of the built-in board.
func DefaultWalls() components.Walls {
	return components.Walls{
		Top:    cfg.Arena.TopWall,
		Bottom: cfg.Arena.BottomWall,
		Left:   cfg.Arena.LeftWall,
		Right:  cfg.Arena.RightWall,
	}
}

// CreateArena spawns the level singleton, the shared burn channel and the
// gates, which start open. It must run before anything else is created in
// the world.
func CreateArena(w donburi.World, opts ArenaOptions) *donburi.Entry {
	contract.Require(opts.Rand != nil, "an arena needs a random source")
	contract.Require(opts.Difficulty >= 0 && opts.Difficulty < cfg.Arena.Difficulties, "difficulty out of range")
	contract.Require(opts.Walls.Top < opts.Walls.Bottom && opts.Walls.Left < opts.Walls.Right, "walls enclose nothing")

	arena := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(arena, components.ArenaData{
		Walls:           opts.Walls,
		Rand:            opts.Rand,
		Listener:        opts.Listener,
		Difficulty:      opts.Difficulty,
		TimeLeft:        timer.New(cfg.Arena.LevelTime),
		EnemySpawns:     opts.EnemySpawns,
		PlayerSpawn:     opts.PlayerSpawn,
		WaveTimer:       timer.New(cfg.Arena.FirstWaveDelay),
		HealthPackTimer: timer.New(cfg.Arena.HealthPackTime(opts.Difficulty)),
	})
	components.Sound.SetValue(arena, components.SoundData{Bank: cfg.ArenaBank})

	channel := archetypes.BurnChannel.Spawn(w)
	components.Sound.SetValue(channel, components.SoundData{Bank: cfg.BurnBank})

	gate := archetypes.Gate.Spawn(w)
	components.Gate.SetValue(gate, components.GateData{
		Status: components.GateOpen,
		Frame:  cfg.Arena.GateFrames,
		Timer:  timer.New(cfg.Arena.GateOpenTime(opts.Difficulty)),
	})
	components.Sound.SetValue(gate, components.SoundData{Bank: cfg.GateBank})

	return arena
}
