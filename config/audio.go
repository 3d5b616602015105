package config

// Asset tokens shared by several banks. A token names an image and a clip
// alike, an entity switching to "HitWall" shows and plays whatever its bank
// has under that name.
const (
	SoundMoving     = "Moving"
	SoundHit        = "Hit"
	SoundDying      = "Dying"
	SoundHitWall    = "HitWall"
	SoundHitFloor   = "HitFloor"
	SoundHitActor   = "HitActor"
	SoundExplode    = "Explode"
	SoundShot       = "Shot"
	SoundThrow      = "Throw"
	SoundReload     = "Reload"
	SoundSpawn      = "Spawn"
	SoundDespawn    = "Despawn"
	SoundCollect    = "Collect"
	SoundStaticBurn = "StaticBurn"
	SoundGoOut      = "StaticGoOut"
	SoundWin        = "Win"
	SoundLose       = "Lose"
	SoundBurn       = "Burn"
	SoundInFloor    = "InFloor"
	SoundOnFloor    = "OnFloor"
	SoundSmash      = "Smash"
	SoundGateOpen   = "Open"
	SoundGateClosed = "Closed"
	SoundGateMoving = "Opening-Closing"
)

// BurnBank is the bank of the shared flame loop.
const BurnBank = "Effects/Flame"

// ArenaBank is the bank of level-wide cues.
const ArenaBank = "Arena"

// GateBank is the bank every gate plays through together.
const GateBank = "Arena/Gates"

// SoundConfig maps a bank to the clip length in seconds of each token it has
type SoundConfig struct {
	Banks map[string]map[string]float64
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		Banks: map[string]map[string]float64{
			"Actors/Player": {
				SoundMoving: 0.4,
				SoundHit:    0.3,
				SoundDying:  1.2,
			},
			"Actors/Wanderer": {
				SoundMoving: 0.5,
				SoundHit:    0.3,
				SoundDying:  1.0,
				SoundSpawn:  0.6,
			},
			"Actors/Obstructer": {
				SoundHit:   0.4,
				SoundDying: 1.6,
				SoundSpawn: 1.0,
			},
			"Projectiles/Arrow": {
				SoundHitWall:  0.25,
				SoundHitActor: 0.2,
			},
			"Projectiles/Bullet": {
				SoundHitWall:  0.15,
				SoundHitActor: 0.15,
			},
			"Projectiles/Pellet": {
				SoundHitWall: 0.1,
			},
			"Projectiles/Rocket": {
				SoundMoving:  0.8,
				SoundExplode: 1.1,
			},
			"Projectiles/Grenade": {
				SoundHitWall:  0.15,
				SoundHitFloor: 0.15,
				SoundHitActor: 0.15,
				SoundExplode:  1.3,
			},
			"Projectiles/Hatchet": {
				SoundHitWall:  0.2,
				SoundHitActor: 0.25,
				SoundInFloor:  0.3,
				SoundOnFloor:  0.3,
			},
			"Projectiles/FireBottle": {
				SoundSmash: 0.7,
			},
			"Collectables/HealthPack": {
				SoundSpawn:   0.4,
				SoundDespawn: 0.4,
				SoundCollect: 0.5,
			},
			"Weapons/Pistol": {
				SoundShot:   0.2,
				SoundReload: 0.6,
			},
			"Weapons/Bow": {
				SoundShot:   0.2,
				SoundReload: 0.2,
			},
			"Weapons/Shotgun": {
				SoundShot:   0.4,
				SoundReload: 0.7,
			},
			"Weapons/RocketLauncher": {
				SoundShot:   0.5,
				SoundReload: 1.0,
			},
			"Weapons/Flamethrower": {
				SoundShot:   0.1,
				SoundReload: 0.8,
			},
			"Weapons/Grenade": {
				SoundThrow:  0.25,
				SoundReload: 0.3,
			},
			"Weapons/Hatchet": {
				SoundThrow: 0.25,
			},
			"Weapons/FireBottle": {
				SoundThrow: 0.25,
			},
			BurnBank: {
				SoundStaticBurn: 2.0,
				SoundGoOut:      0.6,
			},
			ArenaBank: {
				SoundWin:  2.5,
				SoundLose: 2.5,
			},
			GateBank: {
				SoundGateOpen:   0.8,
				SoundGateClosed: 0.8,
				SoundGateMoving: 0.5,
			},
		},
	}
}

// ClipLength returns the clip length for token and whether the bank has it.
func ClipLength(bank, token string) (float64, bool) {
	l, ok := Sound.Banks[bank][token]
	return l, ok
}
