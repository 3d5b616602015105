// Package viewer is the ebiten debug window for a single arena. It draws
// footprints instead of sprites and lets a keyboard drive the player.
package viewer

import (
	"image/color"
	"log"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/highscores"
	"github.com/automoto/gridfire/scenes"
	"github.com/automoto/gridfire/shared/leveldata"
	"github.com/automoto/gridfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures the viewer.
type Options struct {
	Layout     *leveldata.ArenaData
	Difficulty int
	Seed       int64
	ConfigPath string // Reloaded on change when set
	Pilot      bool
	Name       string             // Name entered into the highscore table
	Scores     highscores.Storage // Nil keeps no highscores
}

type Game struct {
	opts     Options
	scene    *scenes.ArenaScene
	input    Input
	watcher  *Watcher
	runs     int64
	recorded bool
	newBest  bool
	best     []highscores.Entry
}

func NewGame(opts Options) *Game {
	g := &Game{opts: opts}
	if opts.ConfigPath != "" {
		w, err := NewWatcher(opts.ConfigPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", opts.ConfigPath, err)
		} else {
			g.watcher = w
		}
	}
	g.restart()
	return g
}

// restart starts a fresh level. Each restart gets its own seed so levels
// differ but a session can still be replayed.
func (g *Game) restart() {
	g.scene = scenes.NewArenaScene(scenes.ArenaConfig{
		Layout:     g.opts.Layout,
		Difficulty: g.opts.Difficulty,
		Seed:       g.opts.Seed + g.runs,
		Pilot:      g.opts.Pilot,
		PilotSkill: cfg.PilotSteady,
	})
	g.scene.AddRenderer(cfg.Default, drawArena)
	g.scene.AddRenderer(cfg.HUD, drawHUD)
	g.runs++
	g.recorded = false
	g.newBest = false
}

// recordScore enters a finished level into the highscore table once.
// Autopilot levels are not recorded.
func (g *Game) recordScore() {
	if g.recorded || !g.scene.Over() {
		return
	}
	g.recorded = true
	if g.opts.Scores == nil || g.opts.Pilot {
		return
	}
	g.best, g.newBest = highscores.Record(g.opts.Scores, g.opts.Name, systems.LevelScore(g.scene.State()))
}

func (g *Game) Update() error {
	g.reloadConfig()
	g.input.Poll()

	if g.input.JustPressed(ActionRestart) {
		g.restart()
		return nil
	}
	if g.input.JustPressed(ActionTogglePilot) {
		g.opts.Pilot = !g.opts.Pilot
		g.restart()
		return nil
	}

	player := g.scene.Player()
	if !g.opts.Pilot && components.Movable.Get(player).Status == components.Alive {
		g.input.apply(g.scene.World(), player)
	}
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	g.recordScore()
	return nil
}

// reloadConfig applies the override file after it was saved. Values take
// effect for entities created from then on.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Changed:
		if err := cfg.LoadOverrides(g.opts.ConfigPath); err != nil {
			log.Printf("Warning: Could not reload %s: %v", g.opts.ConfigPath, err)
			return
		}
		log.Printf("Reloaded %s", g.opts.ConfigPath)
	case err := <-g.watcher.Errors:
		log.Printf("Warning: watching %s: %v", g.opts.ConfigPath, err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scene.Draw(screen)
	if g.recorded && g.best != nil {
		drawHighscores(screen, g.best, g.newBest)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	size := cfg.Arena.WindowSize()
	return size, size
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
