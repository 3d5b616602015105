package config

// EnemyKind identifies a hostile agent type
type EnemyKind int

const (
	EnemyWanderer EnemyKind = iota
	EnemyObstructer
)

// SpawnKind is how an enemy enters the arena
type SpawnKind int

const (
	SpawnFromGate SpawnKind = iota
	SpawnFromGround
)

// ActorConfig contains values shared by the player and enemy types
type ActorConfig struct {
	Name           string
	Bank           string
	MaxHealth      float64
	PrimarySpeed   float64
	SecondarySpeed float64

	// Enemy only
	AttackDamage     float64
	KillPoints       int
	HearingDistance  float64
	ForwardVision    float64
	PeripheralVision float64 // Width of the vision cone at the enemy itself
	Stationary       bool    // Only turns to face the player, never walks
	Spawn            SpawnKind
}

// ActorRulesConfig contains lifecycle values common to every actor
type ActorRulesConfig struct {
	DyingTime       float64
	AnimDelay       float64
	AnimFrames      int
	AttackTime      float64 // Enemy re-aims sooner after touching the player
	SpeedBoost      float64 // Added to an enemy's speed while chasing
	WanderTime      float64
	FollowSightTime float64
	FollowNoiseTime float64
	TurnDelay       float64 // Stationary enemies re-face the player this often
	VisionAngle     float64 // Half-angle widening of the vision cone in degrees
	MinSideDistance float64 // Enemies only move diagonally when further than this off-axis
	NoiseTime       float64 // Player stays audible this long after a loud shot

	// Spawning
	GroundStages   int     // Steps an enemy takes to climb out of the ground
	GroundRiseTime float64 // Seconds from the first step to the last
	GroundLine     float64 // Height of the ground line above the spawn tile's bottom edge
	GateExtraMax   int     // Random extra distance walked before leaving a gate
}

// GroundStageTime is the delay between two steps out of the ground. The
// last step is already fully out, so it takes no time of its own.
func (a ActorRulesConfig) GroundStageTime() float64 {
	return a.GroundRiseTime / float64(a.GroundStages-1)
}

// CollectableConfig contains pickup spawning and effect values
type CollectableConfig struct {
	Name          string
	Bank          string
	DespawnTime   float64
	HealthValue   float64
	SpawnDistance float64
	SpawnAngle    float64 // Spawn points are multiples of this angle around the player
}

var Player ActorConfig
var Enemies map[EnemyKind]ActorConfig
var Actors ActorRulesConfig
var HealthPack CollectableConfig

func (k EnemyKind) String() string {
	if e, ok := Enemies[k]; ok {
		return e.Name
	}
	return "Unknown"
}

func init() {
	Player = ActorConfig{
		Name:           "Player",
		Bank:           "Actors/Player",
		MaxHealth:      1000,
		PrimarySpeed:   105,
		SecondarySpeed: 90,
	}

	Enemies = map[EnemyKind]ActorConfig{
		EnemyWanderer: {
			Name:             "Wanderer",
			Bank:             "Actors/Wanderer",
			MaxHealth:        100,
			PrimarySpeed:     25,
			SecondarySpeed:   20,
			AttackDamage:     25,
			KillPoints:       50,
			HearingDistance:  380,
			ForwardVision:    250,
			PeripheralVision: 40,
		},
		EnemyObstructer: {
			Name:             "Obstructer",
			Bank:             "Actors/Obstructer",
			MaxHealth:        900,
			AttackDamage:     150,
			KillPoints:       500,
			HearingDistance:  600,
			ForwardVision:    400,
			PeripheralVision: 300,
			Stationary:       true,
			Spawn:            SpawnFromGround,
		},
	}

	Actors = ActorRulesConfig{
		DyingTime:       2.0,
		AnimDelay:       0.2,
		AnimFrames:      2,
		AttackTime:      0.15,
		SpeedBoost:      15,
		WanderTime:      1.5,
		FollowSightTime: 1.0,
		FollowNoiseTime: 3.0,
		TurnDelay:       1.0,
		VisionAngle:     15,
		MinSideDistance: 10,
		NoiseTime:       1.0,

		GroundStages:   6,
		GroundRiseTime: 2.0,
		GroundLine:     5,
		GateExtraMax:   10,
	}

	HealthPack = CollectableConfig{
		Name:          "HealthPack",
		Bank:          "Collectables/HealthPack",
		DespawnTime:   10,
		HealthValue:   200,
		SpawnDistance: 5 * 63,
		SpawnAngle:    45,
	}
}
