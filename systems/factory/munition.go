package factory

import (
	"math"

	"github.com/automoto/gridfire/archetypes"
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/shared/timer"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Launch is where and how a munition leaves its weapon.
type Launch struct {
	From   dmath.Vec2
	Facing direction.Direction
	// Thrown munitions only
	Floor    float64 // Y of the thrower's feet
	Height   float64 // Release height above the floor
	Rotation float64 // Hold rotation of the weapon
}

// spawnRotations points straight munitions along their flight, their images
// face right.
var spawnRotations = map[direction.Direction]float64{
	direction.Up:    -90,
	direction.Down:  90,
	direction.Left:  180,
	direction.Right: 0,
}

// CreateMunition spawns one munition of the given kind into the world.
func CreateMunition(w donburi.World, kind cfg.MunitionKind, l Launch) *donburi.Entry {
	conf, ok := cfg.Munitions[kind]
	contract.Require(ok, "unknown munition kind")
	contract.Require(l.Facing != direction.None, "munitions cannot be launched without a direction")

	var e *donburi.Entry
	switch {
	case conf.Trajectory == cfg.TrajectoryParabolic && kind == cfg.MunitionGrenade:
		e = archetypes.Throwable.Spawn(w, components.Fuse)
		components.Fuse.SetValue(e, components.FuseData{Timer: timer.New(cfg.Grenade.DetonationTime)})
	case conf.Trajectory == cfg.TrajectoryParabolic:
		e = archetypes.Throwable.Spawn(w)
	case kind == cfg.MunitionFlame:
		e = archetypes.Projectile.Spawn(w, components.Flame)
		components.Flame.SetValue(e, components.FlameData{Growing: true})
	default:
		e = archetypes.Projectile.Spawn(w)
	}

	setupMunition(e, kind, l.From, l.Facing)
	m := components.Movable.Get(e)
	sp := components.Sprite.Get(e)
	p := components.Projectile.Get(e)

	if conf.Trajectory == cfg.TrajectoryParabolic {
		// Thrown from the hand as it is held
		p.SpawnRotation = l.Rotation
		sp.Rotation = l.Rotation
		if kind == cfg.MunitionGrenade && l.Facing == direction.Up {
			sp.FlipH = true
		}
		components.Throwable.SetValue(e, components.ThrowableData{Floor: l.Floor})
		makeParabolic(e, conf, l.Height)
		return e
	}

	m.Position = m.Position.Add(conf.SpawnOffsets[l.Facing])
	p.SpawnRotation = spawnRotations[l.Facing]
	sp.Rotation = p.SpawnRotation
	switch conf.Trajectory {
	case cfg.TrajectoryStraight:
		contract.Require(conf.Speed <= cfg.Physics.MaxProjectileSpeed, "projectile faster than the limit")
		m.PrimarySpeed = conf.Speed
	case cfg.TrajectorySpread:
		makeSpread(w, e, conf)
	}
	return e
}

// CreateFlame lights a flame at pos without launching it, used where a
// fire bottle smashes.
func CreateFlame(w donburi.World, pos dmath.Vec2, primary direction.Direction) *donburi.Entry {
	e := archetypes.Projectile.Spawn(w, components.Flame)
	components.Flame.SetValue(e, components.FlameData{Growing: true})
	setupMunition(e, cfg.MunitionFlame, pos, primary)
	return e
}

func setupMunition(e *donburi.Entry, kind cfg.MunitionKind, pos dmath.Vec2, primary direction.Direction) {
	conf := cfg.Munitions[kind]
	contract.Require(conf.DyingTime > 0, "munitions need a dying time")
	components.Movable.SetValue(e, components.MovableData{
		Position:   pos,
		Primary:    primary,
		DyingTimer: timer.New(conf.DyingTime),
		HitDelay:   cfg.Physics.ProjectileHitDelay,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Bank:   conf.Bank,
		Visual: conf.Name,
		ScaleX: 1,
		ScaleY: 1,
	})
	components.Sound.SetValue(e, components.SoundData{Bank: conf.Bank})
	components.Projectile.SetValue(e, components.ProjectileData{Kind: kind})
}

// makeSpread fans pellets and flames out at random speeds to either side of
// the firing line.
func makeSpread(w donburi.World, e *donburi.Entry, conf cfg.MunitionConfig) {
	contract.Require(conf.MinSpeed > 0, "spread speed must be positive")
	contract.Require(conf.MinSpeed < conf.MaxSpeed, "spread minimum speed above its maximum")
	contract.Require(conf.MaxSpeed <= cfg.Physics.MaxProjectileSpeed, "projectile faster than the limit")
	contract.Require(conf.MinSpeed >= cfg.Physics.MinSpreadSpeed, "spread slower than a throw")

	rng := components.Arena.Get(components.Arena.MustFirst(w)).Rand
	m := components.Movable.Get(e)
	if m.Primary.IsHorizontal() {
		m.Secondary = direction.RandomVertical(rng)
	} else {
		m.Secondary = direction.RandomHorizontal(rng)
	}
	m.PrimarySpeed = float64(gamemath.RandInt(rng, int(conf.MinSpeed), int(conf.MaxSpeed)))
	m.SecondarySpeed = float64(gamemath.RandInt(rng, 0, int(conf.MaxSecondarySpeed)))
}

// makeParabolic sets the release speeds of an arc that peaks at the
// munition's apex height and lands its full range away. Arcs thrown up or
// down the screen have no visible vertical motion, their landing point is
// moved along the floor instead.
func makeParabolic(e *donburi.Entry, conf cfg.MunitionConfig, height float64) {
	sp := components.Sprite.Get(e)
	_, h := sp.Footprint()
	bottom := gamemath.HalfOf(h) - cfg.Physics.BottomAdjustment
	height -= bottom

	contract.Require(conf.MaxRange >= 0, "projectile max range cannot be negative")
	contract.Require(height <= conf.MaxHeight, "throw starts above its apex")
	contract.Require(conf.MaxHeight <= cfg.Physics.TrajectoryMaxHeight, "apex above the trajectory limit")

	launch := gamemath.SolveLaunch(cfg.Physics.Gravity, conf.MaxRange, height, conf.MaxHeight)
	contract.Require(launch.HorizontalSpeed <= cfg.Physics.MaxThrowableSpeed, "throw too fast for an arc")

	m := components.Movable.Get(e)
	m.PrimarySpeed = launch.HorizontalSpeed
	if m.Primary.IsVertical() {
		m.Secondary = direction.None
		m.SecondarySpeed = -launch.VerticalSpeed
		landing := conf.MaxRange
		if m.Primary == direction.Up {
			landing = -landing
		}
		components.Throwable.Get(e).Floor = m.Position.Y + bottom + landing
		return
	}
	m.Secondary = direction.Up
	m.SecondarySpeed = math.Abs(launch.VerticalSpeed)
}
