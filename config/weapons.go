package config

import "github.com/automoto/gridfire/shared/direction"

// WeaponKind identifies an inventory weapon
type WeaponKind int

const (
	WeaponPistol WeaponKind = iota
	WeaponBow
	WeaponShotgun
	WeaponRocketLauncher
	WeaponFlamethrower
	WeaponGrenade
	WeaponHatchet
	WeaponFireBottle
)

// WeaponConfig contains the tuning for one inventory weapon
type WeaponConfig struct {
	Name     string
	Bank     string
	Munition MunitionKind
	Throwing bool // Throwables launch a parabolic arc instead of firing
	Silent   bool // Using it does not make the player audible to enemies
	Looped   bool // The shot clip loops while the trigger is held

	PerUse      int // Munitions spawned per shot or throw
	Capacity    int
	ReloadDelay float64
	ShotDelay   float64 // Shooters only

	HoldOffsets   DirectionalOffsets
	ReloadOffsets DirectionalOffsets // Extra offset while reloading
	HoldRotations map[direction.Direction]float64
}

const DefaultShotDelay = 0.5

var Weapons map[WeaponKind]WeaponConfig

// Loadout is the weapon order the player cycles through.
var Loadout []WeaponKind

func (k WeaponKind) String() string {
	if w, ok := Weapons[k]; ok {
		return w.Name
	}
	return "Unknown"
}

func init() {
	Weapons = map[WeaponKind]WeaponConfig{
		WeaponPistol: {
			Name:        "Pistol",
			Bank:        "Weapons/Pistol",
			Munition:    MunitionBullet,
			PerUse:      1,
			Capacity:    12,
			ReloadDelay: 1.5,
			ShotDelay:   0.3,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -13},
				direction.Down:  {X: 0, Y: 5},
				direction.Left:  {X: -7, Y: 5},
				direction.Right: {X: 7, Y: 5},
			},
		},
		WeaponBow: {
			Name:        "Bow",
			Bank:        "Weapons/Bow",
			Munition:    MunitionArrow,
			Silent:      true,
			PerUse:      1,
			Capacity:    1,
			ReloadDelay: 0.2,
			ShotDelay:   DefaultShotDelay,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -7},
				direction.Down:  {X: 0, Y: 6},
				direction.Left:  {X: -6, Y: 3},
				direction.Right: {X: 6, Y: 3},
			},
			ReloadOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: 8},
				direction.Down:  {X: 0, Y: -1},
				direction.Left:  {X: 1, Y: 0},
				direction.Right: {X: -1, Y: 0},
			},
			HoldRotations: map[direction.Direction]float64{
				direction.Down: 90,
			},
		},
		WeaponShotgun: {
			Name:        "Shotgun",
			Bank:        "Weapons/Shotgun",
			Munition:    MunitionPellet,
			PerUse:      10,
			Capacity:    2,
			ReloadDelay: 1.3,
			ShotDelay:   0.4,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -15},
				direction.Down:  {X: 0, Y: 7},
				direction.Left:  {X: -5, Y: 4},
				direction.Right: {X: 5, Y: 4},
			},
		},
		WeaponRocketLauncher: {
			Name:        "RocketLauncher",
			Bank:        "Weapons/RocketLauncher",
			Munition:    MunitionRocket,
			PerUse:      1,
			Capacity:    1,
			ReloadDelay: 3.5,
			ShotDelay:   DefaultShotDelay,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 8, Y: -13},
				direction.Down:  {X: -8, Y: 5},
				direction.Left:  {X: -6, Y: 3},
				direction.Right: {X: 6, Y: 3},
			},
			ReloadOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: 7},
				direction.Down:  {X: 0, Y: -7},
				direction.Left:  {X: 9, Y: 0},
				direction.Right: {X: -9, Y: 0},
			},
		},
		WeaponFlamethrower: {
			Name:        "Flamethrower",
			Bank:        "Weapons/Flamethrower",
			Munition:    MunitionFlame,
			Looped:      true,
			PerUse:      4,
			Capacity:    100,
			ReloadDelay: 2.0,
			ShotDelay:   0.1,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 0, Y: -19},
				direction.Down:  {X: 0, Y: 12},
				direction.Left:  {X: -15, Y: 6},
				direction.Right: {X: 15, Y: 6},
			},
			ReloadOffsets: DirectionalOffsets{
				direction.Left:  {X: 0, Y: -2},
				direction.Right: {X: 0, Y: -2},
			},
		},
		WeaponGrenade: {
			Name:        "Grenade",
			Bank:        "Weapons/Grenade",
			Munition:    MunitionGrenade,
			Throwing:    true,
			Silent:      true,
			PerUse:      1,
			Capacity:    1,
			ReloadDelay: 1.5,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 10, Y: -1},
				direction.Down:  {X: -7, Y: 1},
				direction.Left:  {X: 2, Y: 0},
				direction.Right: {X: -2, Y: 0},
			},
		},
		WeaponHatchet: {
			Name:        "Hatchet",
			Bank:        "Weapons/Hatchet",
			Munition:    MunitionHatchet,
			Throwing:    true,
			Silent:      true,
			PerUse:      1,
			Capacity:    1,
			ReloadDelay: 2.0,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 10, Y: 2},
				direction.Down:  {X: -10, Y: 2},
				direction.Left:  {X: 3, Y: 0},
				direction.Right: {X: -3, Y: 0},
			},
			HoldRotations: map[direction.Direction]float64{
				direction.Up:    45,
				direction.Left:  45,
				direction.Down:  -45,
				direction.Right: -45,
			},
		},
		WeaponFireBottle: {
			Name:        "FireBottle",
			Bank:        "Weapons/FireBottle",
			Munition:    MunitionFireBottle,
			Throwing:    true,
			Silent:      true,
			PerUse:      1,
			Capacity:    1,
			ReloadDelay: 2.5,
			HoldOffsets: DirectionalOffsets{
				direction.Up:    {X: 11, Y: -4},
				direction.Down:  {X: -9, Y: 0},
				direction.Left:  {X: 7, Y: -2},
				direction.Right: {X: -7, Y: -2},
			},
			HoldRotations: map[direction.Direction]float64{
				direction.Up:    30,
				direction.Left:  30,
				direction.Down:  -30,
				direction.Right: -30,
			},
		},
	}

	Loadout = []WeaponKind{
		WeaponPistol,
		WeaponBow,
		WeaponShotgun,
		WeaponRocketLauncher,
		WeaponFlamethrower,
		WeaponGrenade,
		WeaponHatchet,
		WeaponFireBottle,
	}
}
