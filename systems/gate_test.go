package systems

import (
	"testing"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestGateCycle(t *testing.T) {
	w := newWorld(nil)
	a := arenaData(w)
	gate := tags.Gate.MustFirst(w)
	g := components.Gate.Get(gate)
	require.True(t, g.IsOpen(), "levels start with the gates open")
	require.Equal(t, cfg.Arena.GateOpenTime(a.Difficulty), g.Timer.TimeLeft())

	// Runs out the current timer, then takes the frame that acts on it
	next := func() {
		run(w, g.Timer.TimeLeft(), UpdateGates, UpdateAudio)
		run(w, 0.01, UpdateGates)
	}

	a.WaveTimer.Reset(cfg.Arena.WaveDelay)
	next()
	assert.Equal(t, components.GateClosing, g.Status)
	assert.Equal(t, cfg.Arena.GateFrames-1, g.Frame)
	assert.Equal(t, cfg.Arena.GateFrameTime, g.Timer.TimeLeft())
	assert.Equal(t, cfg.SoundGateMoving, components.Sound.Get(gate).Token)
	assert.True(t, components.Sound.Get(gate).Loop)
	assert.Equal(t, cfg.Arena.FirstWaveDelay, a.WaveTimer.TimeLeft(), "closing restarts the wave countdown")

	for range cfg.Arena.GateFrames - 1 {
		next()
	}
	assert.Equal(t, components.GateClosed, g.Status)
	assert.Zero(t, g.Frame)
	assert.Equal(t, cfg.Arena.GateClosedTime(a.Difficulty), g.Timer.TimeLeft())
	assert.Equal(t, cfg.SoundGateClosed, components.Sound.Get(gate).Token)

	next()
	assert.Equal(t, components.GateOpening, g.Status)
	assert.Equal(t, 1, g.Frame)
	assert.False(t, g.IsOpen())
	assert.Equal(t, cfg.SoundGateMoving, components.Sound.Get(gate).Token)

	for range cfg.Arena.GateFrames - 1 {
		next()
	}
	assert.True(t, g.IsOpen())
	assert.Equal(t, cfg.Arena.GateFrames, g.Frame)
	assert.Equal(t, cfg.Arena.GateOpenTime(a.Difficulty), g.Timer.TimeLeft())
	assert.Equal(t, cfg.SoundGateOpen, components.Sound.Get(gate).Token)
}

func TestGateTimesFollowDifficulty(t *testing.T) {
	for d := 1; d < cfg.Arena.Difficulties; d++ {
		assert.Greater(t, cfg.Arena.GateOpenTime(d), cfg.Arena.GateOpenTime(d-1))
		assert.Less(t, cfg.Arena.GateClosedTime(d), cfg.Arena.GateClosedTime(d-1))
		assert.Greater(t, cfg.Arena.GateClosedTime(d), 0.0)
	}
}

func TestWorldWithoutGatesKeepsThemOpen(t *testing.T) {
	w := donburi.NewWorld()
	assert.True(t, gatesOpen(w))
}
