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

// MaxCollisionDistance is half the diagonal of the largest footprint. Pairs
// further apart than this cannot touch.
func MaxCollisionDistance() float64 {
	return gamemath.HalfOf(math.Sqrt(2 * cfg.Physics.MaxFootprint * cfg.Physics.MaxFootprint))
}

// entriesOf snapshots the entities carrying a component so the pass can
// spawn or kill entities while it walks them.
func entriesOf[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var list []*donburi.Entry
	for e := range c.Iter(w) {
		list = append(list, e)
	}
	return list
}

// DetectCollisions runs the frame's collision pass after every entity has
// moved: walls, then floors, then projectiles against enemies.
func DetectCollisions(ecs *ecs.ECS) {
	w := ecs.World
	enemies := entriesOf(w, tags.Enemy)
	projectiles := entriesOf(w, tags.Projectile)

	if player, ok := tags.Player.First(w); ok && IsReadyForWallCollision(player) {
		collideWithWalls(w, player)
	}
	for _, e := range enemies {
		if IsReadyForWallCollision(e) {
			collideWithWalls(w, e)
		}
	}
	for _, p := range projectiles {
		if IsReadyForWallCollision(p) {
			collideWithWalls(w, p)
		}
	}

	for _, p := range projectiles {
		if p.HasComponent(components.Throwable) && IsReadyForFloorCollision(p) && DistanceFromFloor(p) <= 0 {
			MunitionHitFloor(w, p)
		}
	}

	a := arenaData(w)
	for _, e := range enemies {
		for _, p := range projectiles {
			if !IsReadyForCollision(e) || !IsReadyForCollision(p) || !withinReach(e, p) {
				continue
			}
			collideActorWithProjectile(w, e, p)
			if components.Movable.Get(e).Status == components.Dying {
				points := KillScore(a.Difficulty, enemyConfigOf(e).KillPoints)
				a.KillsScore += points
				a.Kills++
				listener(w).ScoreAwarded(points)
			}
		}
	}
}

// DetectPlayerContacts finishes the collision pass with everything touching
// the player: enemies, explosions and collectables.
func DetectPlayerContacts(ecs *ecs.ECS) {
	w := ecs.World
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	for _, e := range entriesOf(w, tags.Enemy) {
		if IsReadyForCollision(player) && IsReadyForCollision(e) && withinReach(player, e) {
			collidePlayerWithEnemy(w, player, e)
		}
	}
	for _, p := range entriesOf(w, tags.Projectile) {
		if IsReadyForCollision(player) && IsExploding(p) && IsReadyForCollision(p) && withinReach(player, p) {
			collideActorWithProjectile(w, player, p)
		}
	}
	for _, c := range entriesOf(w, tags.Collectable) {
		cd := components.Collectable.Get(c)
		if cd.Collected || cd.Despawned() {
			continue
		}
		if gamemath.Distance(components.Movable.Get(player).Position, cd.Position) <= MaxCollisionDistance() {
			collidePlayerWithCollectable(w, player, c)
		}
	}
}

func withinReach(a, b *donburi.Entry) bool {
	return gamemath.Distance(components.Movable.Get(a).Position, components.Movable.Get(b).Position) <= MaxCollisionDistance()
}

// wallOffsets returns how far inside each wall the entity's position may
// go. Projectiles are let closer to the top wall so they look like they hit
// it rather than the floor in front of it.
func wallOffsets(w donburi.World, e *donburi.Entry) (top, bottom, left, right float64) {
	width, height := Footprint(e)
	top, bottom = gamemath.HalfOf(height), -gamemath.HalfOf(height)
	left, right = gamemath.HalfOf(width), -gamemath.HalfOf(width)

	switch {
	case e.HasComponent(components.Projectile):
		top -= float64(gamemath.RandInt(random(w), cfg.Collision.ProjectileTopMin, cfg.Collision.ProjectileTopMax))
		bottom += cfg.Collision.ProjectileBottom
		left -= cfg.Collision.ProjectileSides
		right += cfg.Collision.ProjectileSides

		prim := components.Movable.Get(e).Primary
		if prim.IsHorizontal() {
			// Arcs never reach the top wall
			top -= cfg.Physics.TrajectoryMaxHeight
		} else if prim == direction.Up && DistanceLeftToTravel(e) < float64(cfg.Collision.ProjectileTopMax) {
			// Must not come to rest floating above the floor
			top = -cfg.Collision.ProjectileTopFinishing
		}
	case e.HasComponent(components.Actor):
		if height < gamemath.HalfOf(cfg.Arena.TileSize) {
			top = -gamemath.HalfOf(height)
		}
	}
	return top, bottom, left, right
}

// collideWithWalls keeps the entity inside the arena. Entities already
// heading away from a wall are left alone so a bounce is not undone.
func collideWithWalls(w donburi.World, e *donburi.Entry) {
	m := components.Movable.Get(e)
	walls := arenaData(w).Walls
	top, bottom, left, right := wallOffsets(w, e)

	if !(m.Primary.IsHorizontal() && m.Secondary == direction.None) {
		pos := m.Position
		topWall, bottomWall := walls.Top+top, walls.Bottom+bottom
		if m.Primary != direction.Down && pos.Y < topWall {
			HitWall(w, e, dmath.Vec2{X: pos.X, Y: topWall})
		} else if m.Primary != direction.Up && pos.Y > bottomWall {
			HitWall(w, e, dmath.Vec2{X: pos.X, Y: bottomWall})
		}
	}

	if !(m.Primary.IsVertical() && m.Secondary == direction.None) {
		pos := m.Position
		leftWall, rightWall := walls.Left+left, walls.Right+right
		if m.Primary != direction.Right && pos.X < leftWall {
			HitWall(w, e, dmath.Vec2{X: leftWall, Y: pos.Y})
		} else if m.Primary != direction.Left && pos.X > rightWall {
			HitWall(w, e, dmath.Vec2{X: rightWall, Y: pos.Y})
		}
	}
}

// collidePlayerWithEnemy needs a good part of the player inside the enemy's
// circle before the enemy lands an attack.
func collidePlayerWithEnemy(w donburi.World, player, enemy *donburi.Entry) {
	pw, ph := Footprint(player)
	ew, eh := Footprint(enemy)
	offsetW := gamemath.HalfOf(pw) - cfg.Collision.PlayerEnemyCoverage*pw
	offsetH := gamemath.HalfOf(ph) - cfg.Collision.PlayerEnemyCoverage*ph
	radius := max(gamemath.HalfOf(ew), gamemath.HalfOf(eh))

	enemyPos := components.Movable.Get(enemy).Position
	if gamemath.CollisionPointsInsideCircle(enemyPos, radius, components.Movable.Get(player).Position, offsetW, offsetH) {
		AttackPlayer(w, enemy, player)
	}
}

// collideActorWithProjectile tests an explosion as a circle against the
// actor's sample points and anything else as a box shrunk across its line
// of travel.
func collideActorWithProjectile(w donburi.World, actor, projectile *donburi.Entry) {
	aw, ah := Footprint(actor)
	pw, ph := Footprint(projectile)
	actorW, actorH := gamemath.HalfOf(aw), gamemath.HalfOf(ah)
	projW, projH := gamemath.HalfOf(pw), gamemath.HalfOf(ph)
	actorPos := components.Movable.Get(actor).Position
	m := components.Movable.Get(projectile)

	if IsExploding(projectile) {
		actorW -= aw * cfg.Collision.ExplosionCoverage
		actorH -= ah * cfg.Collision.ExplosionCoverage
		if gamemath.CollisionPointsInsideCircle(m.Position, max(projW, projH), actorPos, actorW, actorH) {
			MunitionHitActor(w, projectile, actor)
		}
		return
	}

	switch {
	case m.Primary.IsHorizontal():
		actorW -= aw * cfg.Collision.ActorHitCoverage
		projH -= ph * cfg.Collision.ProjectileHitCoverage
	case m.Primary.IsVertical():
		actorH -= ah * cfg.Collision.ActorHitCoverage
		projW -= pw * cfg.Collision.ProjectileHitCoverage
	}
	if gamemath.Overlaps(actorPos, m.Position, actorW+projW, actorH+projH) {
		MunitionHitActor(w, projectile, actor)
	}
}

func collidePlayerWithCollectable(w donburi.World, player, c *donburi.Entry) {
	pw, ph := Footprint(player)
	cw, ch := Footprint(c)
	if gamemath.Overlaps(components.Movable.Get(player).Position, components.Collectable.Get(c).Position,
		gamemath.HalfOf(pw+cw), gamemath.HalfOf(ph+ch)) {
		Collect(w, c, player)
	}
}
