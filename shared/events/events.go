// Package events is the narrow outbound surface of the arena: scoring and
// sound cues leave the simulation through a Listener.
package events

//go:generate go run go.uber.org/mock/mockgen -destination=mock_events/mock_events.go -package=mock_events . Listener

// Listener receives notifications raised while a frame is simulated.
type Listener interface {
	// ScoreAwarded fires when an enemy starts dying from a projectile hit.
	ScoreAwarded(points int)
	// SoundStarted fires whenever an entity starts a sound token.
	SoundStarted(bank, token string)
}

// Nop ignores every event.
type Nop struct{}

func (Nop) ScoreAwarded(int) {}
func (Nop) SoundStarted(string, string) {}

// Counter tallies events, used by the headless simulator for run summaries.
type Counter struct {
	Score  int
	Kills  int
	Sounds map[string]int
}

func NewCounter() *Counter {
	return &Counter{Sounds: make(map[string]int)}
}

func (c *Counter) ScoreAwarded(points int) {
	c.Score += points
	c.Kills++
}

func (c *Counter) SoundStarted(bank, token string) {
	c.Sounds[bank+"/"+token]++
}
