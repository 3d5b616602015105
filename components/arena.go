package components

import (
	"math/rand"

	"github.com/automoto/gridfire/shared/events"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Walls are the four boundary lines of the play area.
type Walls struct {
	Top, Bottom, Left, Right float64
}

// ArenaData is the singleton holding level-wide state.
type ArenaData struct {
	Walls       Walls
	Rand        *rand.Rand
	Listener    events.Listener
	Difficulty  int
	KillsScore  int
	Kills       int
	Won         bool
	Lost        bool
	TimeLeft    timer.Timer
	Frame       int
	Delta       float64 // Seconds the current frame simulates
	EnemySpawns []math.Vec2
	PlayerSpawn math.Vec2

	WaveTimer       timer.Timer
	Waves           int
	Obstructers     int
	HealthPackTimer timer.Timer
	BurningFlames   bool // A flame burned during the previous frame
}

var Arena = donburi.NewComponentType[ArenaData]()
