package main

import (
	"context"
	"fmt"
	"runtime/debug"

	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/scenes"
	"github.com/automoto/gridfire/shared/events"
	"github.com/automoto/gridfire/shared/leveldata"
	"github.com/automoto/gridfire/systems"
	"github.com/google/uuid"
)

// Options configures a batch of headless runs.
type Options struct {
	TickRate   int
	Frames     int
	Seed       int64
	Runs       int
	Difficulty int
	Skill      cfg.PilotSkill
	Layout     *leveldata.ArenaData
}

// Summary is the outcome of one run.
type Summary struct {
	ID     string
	Seed   int64
	Frames int
	Won    bool
	Lost   bool
	Kills  int
	Score  int // Kill points
	Total  int // Kill points plus the time bonus of a win
	Waves  int
	Health float64
	Sounds map[string]int
}

// Name is how the run shows up in a highscore table.
func (s Summary) Name() string {
	return "sim-" + s.ID[:6]
}

func (s Summary) Outcome() string {
	switch {
	case s.Won:
		return "won"
	case s.Lost:
		return "lost"
	default:
		return "unfinished"
	}
}

// runArena plays one level with the autopilot until it is over or the frame
// budget is spent. Contract violations inside the simulation come back as
// errors carrying the panic's stack, so main can log them and exit.
func runArena(ctx context.Context, opts Options, seed int64) (summary Summary, err error) {
	summary = Summary{ID: uuid.NewString(), Seed: seed}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run %s (seed %d) panicked at frame %d: %v\n%s", summary.ID, seed, summary.Frames, r, debug.Stack())
		}
	}()

	counter := events.NewCounter()
	scene := scenes.NewArenaScene(scenes.ArenaConfig{
		Layout:     opts.Layout,
		Difficulty: opts.Difficulty,
		Seed:       seed,
		Listener:   counter,
		Pilot:      true,
		PilotSkill: opts.Skill,
	})

	dt := 1.0 / float64(opts.TickRate)
	for summary.Frames < opts.Frames && !scene.Over() {
		if summary.Frames%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}
		scene.Update(dt)
		summary.Frames++
	}

	state := scene.State()
	summary.Won = state.Won
	summary.Lost = state.Lost
	summary.Kills = state.Kills
	summary.Score = counter.Score
	summary.Total = systems.LevelScore(state)
	summary.Waves = state.Waves
	summary.Health = scene.Health()
	summary.Sounds = counter.Sounds
	return summary, nil
}
