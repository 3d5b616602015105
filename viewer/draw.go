package viewer

import (
	"fmt"
	"image/color"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/highscores"
	"github.com/automoto/gridfire/systems"
	"github.com/automoto/gridfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	wallColor        = color.RGBA{100, 100, 100, 255}
	closedColor      = color.RGBA{160, 60, 60, 255}
	playerColor      = color.RGBA{0, 0, 255, 255}
	enemyColor       = color.RGBA{255, 0, 0, 255}
	projectileColor  = color.RGBA{255, 255, 0, 255}
	explosionColor   = color.RGBA{255, 128, 0, 255}
	collectableColor = color.RGBA{0, 255, 0, 255}
	dyingColor       = color.RGBA{80, 80, 80, 255}
)

// drawArena outlines every footprint the collision pass works with.
func drawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	walls := components.Arena.Get(components.Arena.MustFirst(w)).Walls
	wc := wallColor
	if gate, ok := tags.Gate.First(w); ok && components.Gate.Get(gate).Status != components.GateOpen {
		wc = closedColor
	}
	vector.StrokeRect(screen,
		float32(walls.Left), float32(walls.Top),
		float32(walls.Right-walls.Left), float32(walls.Bottom-walls.Top),
		2, wc, false)

	for e := range components.Collectable.Iter(w) {
		c := components.Collectable.Get(e)
		if c.Collected || c.Despawned() {
			continue
		}
		drawFootprint(screen, e, c.Position, collectableColor)
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		drawEnemy(screen, e)
	})
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		c := projectileColor
		if systems.IsExploding(e) {
			c = explosionColor
		}
		drawMovable(screen, e, c)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		drawMovable(screen, e, playerColor)
	})
}

func drawMovable(screen *ebiten.Image, e *donburi.Entry, c color.Color) {
	m := components.Movable.Get(e)
	if m.Status != components.Alive && !e.HasComponent(components.Projectile) {
		c = dyingColor
	}
	drawFootprint(screen, e, m.Position, c)
}

// drawEnemy shows a rising enemy only above the ground line.
func drawEnemy(screen *ebiten.Image, e *donburi.Entry) {
	em := components.Emergence.Get(e)
	if em.OutOfGround {
		drawMovable(screen, e, enemyColor)
		return
	}
	w, h := systems.Footprint(e)
	pos := components.Movable.Get(e).Position
	visible := h * em.Risen()
	vector.FillRect(screen, float32(pos.X-w/2), float32(pos.Y-h/2), float32(w), float32(visible), enemyColor, false)
}

func drawFootprint(screen *ebiten.Image, e *donburi.Entry, center math.Vec2, c color.Color) {
	w, h := systems.Footprint(e)
	x, y := center.X-w/2, center.Y-h/2
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

// drawHUD prints the level state in the top-left corner.
func drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	a := components.Arena.Get(components.Arena.MustFirst(w))
	player := tags.Player.MustFirst(w)
	actor := components.Actor.Get(player)
	weapon := systems.EquippedWeapon(w, player)
	wd := components.Weapon.Get(weapon)

	status := "playing"
	switch {
	case a.Won:
		status = "WON - R to restart"
	case a.Lost:
		status = "LOST - R to restart"
	case player.HasComponent(components.Pilot):
		status = "autopilot"
	}
	gates := "open"
	if gate, ok := tags.Gate.First(w); ok && !components.Gate.Get(gate).IsOpen() {
		gates = "shut"
	}
	reload := ""
	if systems.IsReloading(weapon) {
		reload = " (reloading)"
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f  Kills %d/%d  Score %d  Time %.0f  %s",
		actor.Health, actor.MaxHealth,
		a.Kills, systems.KillsToWin(a.Difficulty), a.KillsScore, a.TimeLeft.TimeLeft(), status), 8, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d/%d%s  Wave %d  Gates %s  Difficulty %d",
		cfg.Weapons[wd.Kind].Name, wd.Ammo, cfg.Weapons[wd.Kind].Capacity, reload, a.Waves, gates, a.Difficulty), 8, 20)
}

func drawHighscores(screen *ebiten.Image, table []highscores.Entry, newBest bool) {
	title := "Highscores"
	if newBest {
		title = "New highscore!"
	}
	size := cfg.Arena.WindowSize()
	x, y := size/2-80, size/2-100
	ebitenutil.DebugPrintAt(screen, title, x, y)
	for i, e := range table {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%2d. %-10s %7d", i+1, e.Name, e.Score), x, y+20+16*i)
	}
}
