package components

import (
	"github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Kind           config.EnemyKind
	DirectionTimer timer.Timer // Next time the enemy reconsiders where to go
	SeesPlayer     bool
	HearsPlayer    bool
}

// EmergenceData follows an enemy from its spawn point until it is fully in
// the arena. Enemies from a gate walk out of it, enemies from the ground
// climb out in stages.
type EmergenceData struct {
	From        math.Vec2 // Where the enemy spawned
	OutOfGate   bool
	OutOfGround bool

	GateExit   float64 // Distance from the spawn at which hits start to land
	GateCover  float64 // Walked this far it may leave once it notices the player
	GateWander float64 // Further distance walked when it notices nothing

	Stages     int // Ground stages climbed
	StageTimer timer.Timer
}

// Emerged reports whether the enemy has left both its gate and the ground.
func (e *EmergenceData) Emerged() bool {
	return e.OutOfGate && e.OutOfGround
}

// Risen is the share of the enemy above the ground line.
func (e *EmergenceData) Risen() float64 {
	if e.OutOfGround {
		return 1
	}
	return float64(e.Stages) / float64(config.Actors.GroundStages)
}

var (
	Enemy     = donburi.NewComponentType[EnemyData]()
	Emergence = donburi.NewComponentType[EmergenceData]()
)
