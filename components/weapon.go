package components

import (
	"github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WeaponData is a weapon in the player's inventory. It never flies itself,
// using it spawns separate projectile or throwable entities.
type WeaponData struct {
	Kind        config.WeaponKind
	Owner       donburi.Entity
	Position    math.Vec2
	Facing      direction.Direction
	Rotation    float64
	Ammo        int
	ReloadTimer timer.Timer
	ShotTimer   timer.Timer
}

// LoadoutData is the player's weapon list and the equipped slot.
type LoadoutData struct {
	Weapons  []donburi.Entity
	Equipped int
}

var Weapon = donburi.NewComponentType[WeaponData]()
var Loadout = donburi.NewComponentType[LoadoutData]()
