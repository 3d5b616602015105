package main

import (
	"context"
	"errors"
	"testing"

	cfg "github.com/automoto/gridfire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortOptions() Options {
	return Options{
		TickRate:   cfg.Arena.FrameRate,
		Frames:     120,
		Seed:       12345,
		Runs:       2,
		Difficulty: 0,
		Skill:      cfg.PilotSteady,
	}
}

func TestRunArenaIsDeterministic(t *testing.T) {
	opts := shortOptions()

	a, err := runArena(context.Background(), opts, opts.Seed)
	require.NoError(t, err)
	b, err := runArena(context.Background(), opts, opts.Seed)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
	assert.Equal(t, opts.Frames, a.Frames)
	assert.Equal(t, 1, a.Waves, "the first wave arrives after one second")
}

func TestRunAll(t *testing.T) {
	opts := shortOptions()

	var consumed []int64
	summaries, err := runAll(context.Background(), opts, func(s Summary) error {
		consumed = append(consumed, s.Seed)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, summaries, opts.Runs)
	assert.Equal(t, []int64{opts.Seed, opts.Seed + 1}, consumed)
	for i, s := range summaries {
		assert.Equal(t, opts.Seed+int64(i), s.Seed)
		assert.Equal(t, "unfinished", s.Outcome())
		assert.Equal(t, s.Score, s.Total, "no time bonus without a win")
		assert.Len(t, s.Name(), len("sim-")+6)
	}
}

// Runs in a batch must come out exactly as they do alone. Run with -race
// to catch two arenas touching shared query state.
func TestRunAllMatchesSingleRuns(t *testing.T) {
	opts := shortOptions()
	opts.Runs = 3

	summaries, err := runAll(context.Background(), opts, nil)
	require.NoError(t, err)
	require.Len(t, summaries, opts.Runs)
	for i, s := range summaries {
		alone, err := runArena(context.Background(), opts, opts.Seed+int64(i))
		require.NoError(t, err)
		s.ID, alone.ID = "", ""
		assert.Equal(t, alone, s)
	}
}

func TestRunAllStopsOnConsumeError(t *testing.T) {
	opts := shortOptions()
	opts.Runs = 5
	full := errors.New("table full")

	calls := 0
	_, err := runAll(context.Background(), opts, func(Summary) error {
		calls++
		return full
	})
	assert.ErrorIs(t, err, full)
	assert.Equal(t, 1, calls)
}

func TestRunArenaReportsPanics(t *testing.T) {
	opts := shortOptions()
	opts.Difficulty = cfg.Arena.Difficulties

	_, err := runArena(context.Background(), opts, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked at frame 0")
	assert.Contains(t, err.Error(), "runtime/debug.Stack")
}

func TestRunArenaStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runArena(ctx, shortOptions(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
