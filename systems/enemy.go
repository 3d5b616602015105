package systems

import (
	"math"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func enemyConfigOf(e *donburi.Entry) cfg.ActorConfig {
	return cfg.Enemies[components.Enemy.Get(e).Kind]
}

// UpdateEnemies runs every enemy's movement and senses, then lets it decide
// where to go next.
func UpdateEnemies(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	player, _ := tags.Player.First(w)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		updateEnemy(w, e, player, dt)
	})
}

func updateEnemy(w donburi.World, e, player *donburi.Entry, dt float64) {
	en := components.Enemy.Get(e)
	em := components.Emergence.Get(e)
	sawPlayer, heardPlayer := en.SeesPlayer, en.HearsPlayer

	// Still underground enemies hold still
	if em.OutOfGround {
		updateActor(w, e, dt)
	}
	if components.Movable.Get(e).Status != components.Alive {
		return
	}
	if !em.OutOfGate {
		leaveGate(e)
	}
	if !em.OutOfGround {
		riseFromGround(w, e, dt)
		return
	}
	if !en.DirectionTimer.RanOut() {
		en.DirectionTimer.Decrement(dt)
	}
	if player == nil {
		return
	}
	lookForPlayer(e, player)
	listenForPlayer(e, player)

	conf := enemyConfigOf(e)
	target := components.Movable.Get(player).Position
	if conf.Stationary {
		if (en.SeesPlayer || en.HearsPlayer) && en.DirectionTimer.RanOut() {
			TurnTowards(e, target)
			en.DirectionTimer.Reset(cfg.Actors.TurnDelay)
		}
		return
	}

	if !em.OutOfGate {
		return
	}
	switch {
	case en.SeesPlayer:
		if !sawPlayer || en.DirectionTimer.RanOut() {
			MoveTowards(w, e, target, conf.PrimarySpeed)
			en.DirectionTimer.Reset(cfg.Actors.FollowSightTime)
		}
	case en.HearsPlayer:
		if !heardPlayer || en.DirectionTimer.RanOut() {
			TurnTowards(e, target)
			en.DirectionTimer.Reset(cfg.Actors.FollowNoiseTime)
		}
	case en.DirectionTimer.RanOut():
		wander(w, e)
	}
}

// leaveGate lets an enemy loose once it has walked clear of its gate and
// either noticed the player or wandered on a little further.
func leaveGate(e *donburi.Entry) {
	em := components.Emergence.Get(e)
	en := components.Enemy.Get(e)
	covered := gamemath.Distance(em.From, components.Movable.Get(e).Position)
	if covered <= em.GateCover {
		return
	}
	if en.SeesPlayer || en.HearsPlayer || covered > em.GateCover+em.GateWander {
		em.OutOfGate = true
	}
}

// riseFromGround lifts an enemy one stage each time its timer runs out. It
// stands on the ground line after the last stage.
func riseFromGround(w donburi.World, e *donburi.Entry, dt float64) {
	em := components.Emergence.Get(e)
	if !em.StageTimer.RanOut() {
		em.StageTimer.Decrement(dt)
		return
	}
	_, height := Footprint(e)
	em.Stages++
	components.Movable.Get(e).Position.Y -= height / float64(cfg.Actors.GroundStages)
	if em.Stages >= cfg.Actors.GroundStages {
		em.OutOfGround = true
		PlaySound(w, e, cfg.SoundSpawn, false)
		return
	}
	em.StageTimer.Reset(cfg.Actors.GroundStageTime())
}

// WhereIs returns the two directions from one point towards another, the
// axis with the larger distance first. Ties go left and up.
func WhereIs(from, to dmath.Vec2) (direction.Direction, direction.Direction) {
	primary := direction.Left
	if to.X > from.X {
		primary = direction.Right
	}
	secondary := direction.Up
	if to.Y > from.Y {
		secondary = direction.Down
	}
	if gamemath.AxisDistance(from.Y, to.Y) > gamemath.AxisDistance(from.X, to.X) {
		return secondary, primary
	}
	return primary, secondary
}

// TurnTowards faces an idle enemy towards pos, a moving one walks that
// way instead.
func TurnTowards(e *donburi.Entry, pos dmath.Vec2) {
	m := components.Movable.Get(e)
	first, second := WhereIs(m.Position, pos)
	if m.Primary == direction.None {
		face(e, first)
		return
	}
	m.Primary = first
	if m.Secondary != direction.None && m.Secondary.IsVertical() == first.IsVertical() {
		m.Secondary = second
	}
}

// MoveTowards chases pos, cutting diagonally half of the time when far
// enough off the axis.
func MoveTowards(w donburi.World, e *donburi.Entry, pos dmath.Vec2, speed float64) {
	m := components.Movable.Get(e)
	first, second := WhereIs(m.Position, pos)
	m.Primary = first
	setPrimarySpeed(m, speed+cfg.Actors.SpeedBoost)

	if !gamemath.RandBool(random(w)) {
		m.Secondary = direction.None
		return
	}
	side := gamemath.AxisDistance(pos.X, m.Position.X)
	if first.IsHorizontal() {
		side = gamemath.AxisDistance(pos.Y, m.Position.Y)
	}
	if side > cfg.Actors.MinSideDistance {
		m.Secondary = second
	} else if m.Secondary.IsVertical() == first.IsVertical() {
		m.Secondary = direction.None
	}
}

func wander(w donburi.World, e *donburi.Entry) {
	m := components.Movable.Get(e)
	m.Primary = direction.Random(random(w))
	setPrimarySpeed(m, enemyConfigOf(e).PrimarySpeed)
	m.Secondary = direction.None
	components.Enemy.Get(e).DirectionTimer.Reset(cfg.Actors.WanderTime)
}

// lookForPlayer checks the vision cone in front of the enemy. A player
// already in sight stays seen while close, whichever way the enemy faces.
func lookForPlayer(e, player *donburi.Entry) {
	en := components.Enemy.Get(e)
	conf := enemyConfigOf(e)
	pos := components.Movable.Get(e).Position
	target := components.Movable.Get(player).Position
	dist := gamemath.Distance(pos, target)

	if en.SeesPlayer && dist <= gamemath.HalfOf(conf.ForwardVision) {
		return
	}
	en.SeesPlayer = false
	if dist > conf.ForwardVision {
		return
	}
	facing := components.Actor.Get(e).Facing
	first, second := WhereIs(pos, target)
	if facing != first && facing != second {
		return
	}
	forward := gamemath.AxisDistance(pos.X, target.X)
	side := gamemath.AxisDistance(pos.Y, target.Y)
	if facing.IsVertical() {
		forward, side = side, forward
	}
	maxSide := forward*math.Tan(gamemath.DegreesToRadians(cfg.Actors.VisionAngle)) + conf.PeripheralVision
	en.SeesPlayer = side <= maxSide
}

func listenForPlayer(e, player *donburi.Entry) {
	dist := gamemath.Distance(components.Movable.Get(e).Position, components.Movable.Get(player).Position)
	components.Enemy.Get(e).HearsPlayer = IsMakingNoise(player) && dist <= enemyConfigOf(e).HearingDistance
}

// AttackPlayer hurts the player on contact and makes the enemy re-aim
// sooner while it is close.
func AttackPlayer(w donburi.World, e, player *donburi.Entry) {
	TakeDamage(w, player, enemyConfigOf(e).AttackDamage, true)
	components.Enemy.Get(e).DirectionTimer.Reset(cfg.Actors.AttackTime)
}

// KillScore is the score for killing an enemy worth points on the given
// difficulty.
func KillScore(difficulty, points int) int {
	if difficulty == 0 {
		return points
	}
	return 2 * difficulty * points
}

func enemyHitWall(w donburi.World, e *donburi.Entry, p dmath.Vec2) {
	containActor(e, p)
	if player, ok := tags.Player.First(w); ok {
		TurnTowards(e, components.Movable.Get(player).Position)
	}
}
