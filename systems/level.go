package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	timePoints     = 100 // Per full minute left
	timeMultiplier = 5
)

// KillsToWin is the number of kills that wins a level on the difficulty.
func KillsToWin(difficulty int) int {
	return cfg.Arena.KillsToWin[difficulty]
}

// UpdateLevelState settles the level once. It is won on enough kills and
// lost when the clock runs out or the player dies.
func UpdateLevelState(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	arena := components.Arena.MustFirst(w)
	a := components.Arena.Get(arena)
	if a.Won || a.Lost {
		return
	}

	if a.Kills >= KillsToWin(a.Difficulty) {
		a.Won = true
		PlaySound(w, arena, cfg.SoundWin, false)
		return
	}

	if !a.TimeLeft.RanOut() {
		a.TimeLeft.Decrement(dt)
	}
	player, ok := tags.Player.First(w)
	if a.TimeLeft.RanOut() || !ok || components.Movable.Get(player).Status != components.Alive {
		a.Lost = true
		PlaySound(w, arena, cfg.SoundLose, false)
	}
}

// IsLevelSettled reports whether the level has been won or lost.
func IsLevelSettled(w donburi.World) bool {
	a := arenaData(w)
	return a.Won || a.Lost
}

// WithLevelInPlay wraps a system to skip it once the level is settled.
func WithLevelInPlay(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelSettled(e.World) {
			return
		}
		system(e)
	}
}

// LevelOver reports whether the level was settled and its closing cue has
// finished.
func LevelOver(w donburi.World) bool {
	arena := components.Arena.MustFirst(w)
	a := components.Arena.Get(arena)
	return (a.Won || a.Lost) && !SoundPlaying(arena)
}

// TimeScore rewards every full minute left on the clock.
func TimeScore(difficulty int, timeLeft float64) int {
	mult := 1
	if difficulty > 0 {
		mult = timeMultiplier * difficulty
	}
	return mult * int(timeLeft/60) * timePoints
}

// LevelScore is the level's total. The time bonus only counts for a win.
func LevelScore(a *components.ArenaData) int {
	score := a.KillsScore
	if a.Won {
		score += TimeScore(a.Difficulty, a.TimeLeft.TimeLeft())
	}
	return score
}
