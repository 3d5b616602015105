package config

import (
	"github.com/automoto/gridfire/shared/direction"
	dmath "github.com/yohamta/donburi/features/math"
)

// MunitionKind identifies a flying projectile type
type MunitionKind int

const (
	MunitionArrow MunitionKind = iota
	MunitionBullet
	MunitionPellet
	MunitionRocket
	MunitionFlame
	MunitionGrenade
	MunitionHatchet
	MunitionFireBottle
)

// Trajectory is the launch shape of a munition
type Trajectory int

const (
	TrajectoryStraight Trajectory = iota
	TrajectorySpread
	TrajectoryParabolic
)

// DirectionalOffsets holds one offset per facing direction
type DirectionalOffsets map[direction.Direction]dmath.Vec2

// MunitionConfig contains the tuning for one munition kind
type MunitionConfig struct {
	Name       string
	Bank       string // Sprite and sound bank
	Trajectory Trajectory

	// Straight flight
	Speed float64

	// Spread cone
	MinSpeed          float64
	MaxSpeed          float64
	MaxSecondarySpeed float64

	// Parabolic arc
	MaxHeight float64 // Apex height above the floor

	DyingTime    float64
	Damage       int
	MaxRange     float64
	Explosive    bool
	RotationRate float64 // Degrees per second of spin while flying

	SpawnOffsets DirectionalOffsets // Thrown munitions spawn at the hold position instead
}

// GrenadeConfig contains grenade-only behaviour
type GrenadeConfig struct {
	DetonationTime float64
	StunTime       float64
	SpeedRemaining float64 // Fraction of speed kept after bouncing off an actor
}

// HatchetConfig contains hatchet-only behaviour
type HatchetConfig struct {
	WallHitSpeed     float64 // Primary speed at or below which the hatchet counts as having hit a wall
	InActorRotations map[direction.Direction]float64
	InFloorRotations map[direction.Direction]float64
	OnFloorFlipAngle float64 // Dropped hatchets spun past this lie mirrored
}

// FireBottleConfig contains fire bottle-only behaviour
type FireBottleConfig struct {
	Flames      int
	FlameRadius float64
	BurnTime    float64
}

// FlameConfig contains flame-only behaviour
type FlameConfig struct {
	HitActorBurnTime float64
	ScaleDelay       float64
	AliveScaleRate   float64
	DyingScaleMin    float64
	DyingScaleMax    float64
	DyingRateMin     int
	DyingRateMax     int
}

var Munitions map[MunitionKind]MunitionConfig
var Grenade GrenadeConfig
var Hatchet HatchetConfig
var FireBottle FireBottleConfig
var Flame FlameConfig

func (k MunitionKind) String() string {
	if m, ok := Munitions[k]; ok {
		return m.Name
	}
	return "Unknown"
}

func init() {
	Munitions = map[MunitionKind]MunitionConfig{
		MunitionArrow: {
			Name:       "Arrow",
			Bank:       "Projectiles/Arrow",
			Trajectory: TrajectoryStraight,
			Speed:      400,
			DyingTime:  0.3,
			Damage:     50,
			MaxRange:   600,
			SpawnOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -13},
				direction.Down:  {X: 0, Y: 5},
				direction.Left:  {X: -8, Y: 0},
				direction.Right: {X: 8, Y: 0},
			},
		},
		MunitionBullet: {
			Name:       "Bullet",
			Bank:       "Projectiles/Bullet",
			Trajectory: TrajectoryStraight,
			Speed:      300,
			DyingTime:  0.1,
			Damage:     60,
			MaxRange:   600,
			SpawnOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -1},
				direction.Down:  {X: 0, Y: 2},
				direction.Left:  {X: -3, Y: -2},
				direction.Right: {X: 3, Y: -2},
			},
		},
		MunitionPellet: {
			Name:              "Pellet",
			Bank:              "Projectiles/Pellet",
			Trajectory:        TrajectorySpread,
			MinSpeed:          250,
			MaxSpeed:          350,
			MaxSecondarySpeed: 50,
			DyingTime:         0.15,
			Damage:            35,
			MaxRange:          180,
			SpawnOffsets: DirectionalOffsets{
				direction.Up:    {X: -1, Y: -4},
				direction.Down:  {X: -1, Y: 4},
				direction.Left:  {X: -10, Y: -2},
				direction.Right: {X: 10, Y: -2},
			},
		},
		MunitionRocket: {
			Name:       "Rocket",
			Bank:       "Projectiles/Rocket",
			Trajectory: TrajectoryStraight,
			Speed:      250,
			DyingTime:  0.25,
			Damage:     400,
			MaxRange:   600,
			Explosive:  true,
			SpawnOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -18},
				direction.Down:  {X: 0, Y: 20},
				direction.Left:  {X: -24, Y: -1},
				direction.Right: {X: 24, Y: -1},
			},
		},
		MunitionFlame: {
			Name:              "Flame",
			Bank:              "Projectiles/Flame",
			Trajectory:        TrajectorySpread,
			MinSpeed:          250,
			MaxSpeed:          300,
			MaxSecondarySpeed: 50,
			DyingTime:         0.25,
			Damage:            30,
			MaxRange:          120,
			Explosive:         true,
			SpawnOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -8},
				direction.Down:  {X: 0, Y: 10},
				direction.Left:  {X: -16, Y: -3},
				direction.Right: {X: 16, Y: -3},
			},
		},
		MunitionGrenade: {
			Name:         "Grenade",
			Bank:         "Projectiles/Grenade",
			Trajectory:   TrajectoryParabolic,
			MaxHeight:    25,
			DyingTime:    0.2,
			Damage:       250,
			MaxRange:     230,
			Explosive:    true,
			RotationRate: 700,
		},
		MunitionHatchet: {
			Name:         "Hatchet",
			Bank:         "Projectiles/Hatchet",
			Trajectory:   TrajectoryParabolic,
			MaxHeight:    15,
			DyingTime:    2.7,
			Damage:       150,
			MaxRange:     155,
			RotationRate: 800,
		},
		MunitionFireBottle: {
			Name:         "FireBottle",
			Bank:         "Projectiles/FireBottle",
			Trajectory:   TrajectoryParabolic,
			MaxHeight:    20,
			DyingTime:    0.01,
			Damage:       10,
			MaxRange:     200,
			RotationRate: 115,
		},
	}

	Grenade = GrenadeConfig{
		DetonationTime: 2.5,
		StunTime:       0.4,
		SpeedRemaining: 0.4,
	}

	Hatchet = HatchetConfig{
		WallHitSpeed: 60,
		InActorRotations: map[direction.Direction]float64{
			direction.Up:    155,
			direction.Down:  155,
			direction.Left:  65,
			direction.Right: -65,
		},
		InFloorRotations: map[direction.Direction]float64{
			direction.Up:    70,
			direction.Down:  -110,
			direction.Left:  -20,
			direction.Right: 20,
		},
		OnFloorFlipAngle: 180,
	}

	FireBottle = FireBottleConfig{
		Flames:      6,
		FlameRadius: 20,
		BurnTime:    3.0,
	}

	Flame = FlameConfig{
		HitActorBurnTime: 1.5,
		ScaleDelay:       0.01,
		AliveScaleRate:   20,
		DyingScaleMin:    1.0,
		DyingScaleMax:    1.5,
		DyingRateMin:     4,
		DyingRateMax:     7,
	}
}
