package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/automoto/gridfire/assets"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/highscores"
	"golang.org/x/sync/errgroup"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.Arena.FrameRate, "Simulated frames per second")
	frames := flag.Int("frames", cfg.Arena.FrameRate*int(cfg.Arena.LevelTime+10), "Frame budget per run")
	seed := flag.Int64("seed", 1, "Seed of the first run, later runs add their index")
	runs := flag.Int("runs", 4, "Number of arenas to simulate")
	difficulty := flag.Int("difficulty", -1, "Difficulty 0-2 (-1 = config value)")
	skill := flag.Int("skill", int(cfg.PilotSteady), "Autopilot skill 0-2")
	configPath := flag.String("config", "", "YAML file overriding tunable values")
	arenaPath := flag.String("arena", "", "Tiled arena file (empty = built-in)")
	record := flag.Bool("record", false, "Enter the runs into the saved highscore table")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *arenaPath == "" {
		*arenaPath = cfg.Arena.ArenaFile
	}
	if *difficulty < 0 {
		*difficulty = cfg.Arena.Difficulty
	}
	if *difficulty >= cfg.Arena.Difficulties {
		log.Fatalf("Difficulty %d out of range [0, %d)", *difficulty, cfg.Arena.Difficulties)
	}
	if *tickRate < cfg.Arena.FrameRate {
		log.Printf("Warning: tick rate %d is below %d, frames will be capped", *tickRate, cfg.Arena.FrameRate)
	}
	if *runs < 1 || *frames < 1 || *tickRate < 1 {
		log.Fatalf("runs, frames and tickrate must be positive")
	}
	if _, ok := cfg.Pilot.Skills[cfg.PilotSkill(*skill)]; !ok {
		log.Fatalf("Unknown autopilot skill %d", *skill)
	}

	layout, err := assets.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := Options{
		TickRate:   *tickRate,
		Frames:     *frames,
		Seed:       *seed,
		Runs:       *runs,
		Difficulty: *difficulty,
		Skill:      cfg.PilotSkill(*skill),
		Layout:     layout,
	}
	log.Printf("Simulating %d arenas (difficulty %d, %d frames at %d/s)", opts.Runs, opts.Difficulty, opts.Frames, opts.TickRate)

	var scores highscores.Storage
	if *record {
		if scores, err = highscores.Open("gridfire"); err != nil {
			log.Fatalf("Failed to open highscores: %v", err)
		}
	}
	entered := 0
	summaries, err := runAll(ctx, opts, func(s Summary) error {
		logRun(s)
		if scores == nil {
			return nil
		}
		if _, added := highscores.Record(scores, s.Name(), s.Total); added {
			entered++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	report(summaries)
	if scores != nil {
		log.Printf("%d runs entered the highscore table", entered)
	}
}

// runAll plays the arenas one after another on a producer goroutine and
// hands each summary to consume as soon as it is done. The simulation
// packages keep their queries in package state, so two arenas must never
// update at the same time. A consume error stops the batch.
func runAll(ctx context.Context, opts Options, consume func(Summary) error) ([]Summary, error) {
	done := make(chan Summary)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(done)
		for i := range opts.Runs {
			s, err := runArena(ctx, opts, opts.Seed+int64(i))
			if err != nil {
				return err
			}
			select {
			case done <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	summaries := make([]Summary, 0, opts.Runs)
	eg.Go(func() error {
		for s := range done {
			summaries = append(summaries, s)
			if consume == nil {
				continue
			}
			if err := consume(s); err != nil {
				return fmt.Errorf("run %s: %w", s.ID, err)
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func logRun(s Summary) {
	log.Printf("Run %s seed=%d %s after %d frames: kills=%d score=%d waves=%d health=%.0f",
		s.ID, s.Seed, s.Outcome(), s.Frames, s.Kills, s.Score, s.Waves, s.Health)

	keys := make([]string, 0, len(s.Sounds))
	for k := range s.Sounds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Printf("  %s x%d", k, s.Sounds[k])
	}
}

func report(summaries []Summary) {
	won := 0
	for _, s := range summaries {
		if s.Won {
			won++
		}
	}
	log.Printf("Won %d of %d runs", won, len(summaries))

	var best []highscores.Entry
	for _, s := range summaries {
		if highscores.Qualifies(best, s.Total) {
			best = highscores.Insert(best, s.Name(), s.Total)
		}
	}
	for i, e := range best {
		log.Printf("#%d %s %d", i+1, e.Name, e.Score)
	}
}
