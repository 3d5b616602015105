package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.ScoreAwarded(50)
	c.ScoreAwarded(100)
	c.SoundStarted("Rocket", "Explode")
	c.SoundStarted("Rocket", "Explode")

	assert.Equal(t, 150, c.Score)
	assert.Equal(t, 2, c.Kills)
	assert.Equal(t, 2, c.Sounds["Rocket/Explode"])
}

func TestNopSatisfiesListener(t *testing.T) {
	var l Listener = Nop{}
	assert.NotPanics(t, func() {
		l.ScoreAwarded(1)
		l.SoundStarted("Player", "Hit")
	})
}
