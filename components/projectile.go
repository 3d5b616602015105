package components

import (
	"github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Attachment links a spent projectile to the actor it is stuck in. Target
// is a handle, the projectile checks it is still valid every frame.
type Attachment struct {
	Target       donburi.Entity
	Offset       math.Vec2
	StartedDying bool
}

type ProjectileData struct {
	Kind              config.MunitionKind
	DistanceTravelled float64
	WallHitTimer      timer.Timer
	SpawnRotation     float64
	Attached          *Attachment
}

var Projectile = donburi.NewComponentType[ProjectileData]()
