package main

import (
	"flag"
	"log"

	"github.com/automoto/gridfire/assets"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/highscores"
	"github.com/automoto/gridfire/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding tunable values, reloaded on save")
	arenaPath := flag.String("arena", "", "Tiled arena file (empty = built-in)")
	seed := flag.Int64("seed", 1, "Random seed of the first level")
	pilot := flag.Bool("pilot", false, "Let the autopilot play")
	name := flag.String("name", "player", "Name for the highscore table")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *arenaPath == "" {
		*arenaPath = cfg.Arena.ArenaFile
	}
	layout, err := assets.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	scores, err := highscores.Open("gridfire")
	if err != nil {
		log.Printf("Warning: Highscores disabled: %v", err)
	}

	game := viewer.NewGame(viewer.Options{
		Layout:     layout,
		Difficulty: cfg.Arena.Difficulty,
		Seed:       *seed,
		ConfigPath: *configPath,
		Pilot:      *pilot,
		Name:       *name,
		Scores:     scores,
	})
	defer game.Close()

	size := cfg.Arena.WindowSize()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("gridfire")
	ebiten.SetTPS(cfg.Arena.FrameRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
