package systems

import (
	"math"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BottomAdjustment is the distance from a throwable's position down to the
// point that touches the floor. Half the rotated height is used because the
// sprite origin moves as it spins.
func BottomAdjustment(e *donburi.Entry) float64 {
	_, h := Footprint(e)
	return gamemath.HalfOf(h) - cfg.Physics.BottomAdjustment
}

// DistanceFromFloor is positive while the throwable is above its floor and
// zero or negative once it touched it. Throwables flying up the screen have
// their floor above them so the sign flips.
func DistanceFromFloor(e *donburi.Entry) float64 {
	m := components.Movable.Get(e)
	height := components.Throwable.Get(e).Floor - (m.Position.Y + BottomAdjustment(e))
	if m.Primary == direction.Up {
		return -height
	}
	return height
}

func IsReadyForFloorCollision(e *donburi.Entry) bool {
	m := components.Movable.Get(e)
	return m.Primary != direction.None &&
		m.Status == components.Alive &&
		components.Throwable.Get(e).FloorHitTimer.RanOut()
}

func updateThrowable(w donburi.World, e *donburi.Entry, dt float64) {
	updateProjectile(w, e, dt)

	m := components.Movable.Get(e)
	if m.Status != components.Alive || m.Primary == direction.None {
		return
	}
	applyGravity(m, dt)
	t := components.Throwable.Get(e)
	if !t.FloorHitTimer.RanOut() {
		t.FloorHitTimer.Decrement(dt)
	}
}

// applyGravity accelerates the vertical component downwards. The apex is
// where it turns from rising to falling.
func applyGravity(m *components.MovableData, dt float64) {
	old := signedSecondary(m)
	speed := old + cfg.Physics.Gravity*dt
	if old < 0 && speed > 0 {
		m.Secondary = m.Secondary.Opposite()
	}
	if m.Secondary != direction.None {
		speed = math.Abs(speed)
	}
	m.SecondarySpeed = speed
}

func throwableHitFloor(w donburi.World, e *donburi.Entry) {
	PlaySound(w, e, cfg.SoundHitFloor, false)
	components.Throwable.Get(e).FloorHitTimer.Reset(components.Movable.Get(e).HitDelay)
}

func throwableHitWall(w donburi.World, e *donburi.Entry) {
	PlaySound(w, e, cfg.SoundHitWall, false)
	m := components.Movable.Get(e)
	components.Projectile.Get(e).WallHitTimer.Reset(m.HitDelay)
	m.Primary = m.Primary.Opposite()
}

// wallDrop kills most of the speed after a wall hit so the throwable falls
// to the floor next to the wall. It runs right after throwableHitWall so the
// primary direction already points away from the wall.
func wallDrop(w donburi.World, e *donburi.Entry) {
	contract.Require(!components.Projectile.Get(e).WallHitTimer.RanOut(), "wall drop outside of a wall hit")
	m := components.Movable.Get(e)
	switch {
	case m.Primary.IsHorizontal():
		setPrimarySpeed(m, cfg.Physics.WallDropSpeed)
		m.Secondary = direction.Down
		m.SecondarySpeed = cfg.Physics.WallDropFall
	case m.Primary.IsVertical():
		setPrimarySpeed(m, cfg.Physics.WallDropVertical)
		gap := float64(gamemath.RandInt(random(w), cfg.Physics.WallDropFloorMin, cfg.Physics.WallDropFloorMax))
		components.Throwable.Get(e).Floor = wallBehind(w, m.Primary) + gap
	}
}

// wallBounce reflects the throwable off a wall, losing speed. A vertical
// bounce lands proportionally closer to the wall.
func wallBounce(w donburi.World, e *donburi.Entry) {
	contract.Require(!components.Projectile.Get(e).WallHitTimer.RanOut(), "wall bounce outside of a wall hit")
	m := components.Movable.Get(e)
	setPrimarySpeed(m, m.PrimarySpeed*cfg.Physics.WallBounceDecay)
	if !m.Primary.IsVertical() {
		return
	}
	left := DistanceLeftToTravel(e) * cfg.Physics.WallBounceDecay
	if m.Primary == direction.Up {
		left = -left
	}
	components.Throwable.Get(e).Floor = wallBehind(w, m.Primary) + left
}

// wallBehind is the horizontal wall a vertically moving throwable just
// bounced off.
func wallBehind(w donburi.World, d direction.Direction) float64 {
	walls := arenaData(w).Walls
	if d == direction.Up {
		return walls.Bottom
	}
	return walls.Top
}

// floorBounce picks between stopping, rolling and bouncing off the floor
// depending on the speed left.
func floorBounce(e *donburi.Entry) {
	contract.Require(!components.Throwable.Get(e).FloorHitTimer.RanOut(), "floor bounce outside of a floor hit")
	m := components.Movable.Get(e)
	prim := m.PrimarySpeed
	sec := math.Abs(m.SecondarySpeed)
	if m.Primary.IsVertical() {
		sec = -sec
	}

	if prim <= cfg.Physics.RollSpeed {
		m.Secondary = direction.None
		if prim < cfg.Physics.StopSpeed {
			m.Primary = direction.None
		} else {
			setPrimarySpeed(m, prim*cfg.Physics.RollDecay)
		}
	} else {
		m.Secondary = m.Secondary.Opposite()
		setPrimarySpeed(m, prim*cfg.Physics.BounceDecay)
		m.SecondarySpeed = sec * cfg.Physics.BounceDecay
	}

	if m.Primary.IsVertical() {
		// Next touchdown, launched from the floor with the rebound speed
		tof := gamemath.PositiveRoot(gamemath.HalfOf(cfg.Physics.Gravity), -math.Abs(signedSecondary(m)), 0)
		components.Throwable.Get(e).Floor += signedPrimary(m) * tof
	}
}
