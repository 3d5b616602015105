package systems

import (
	"math"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/automoto/gridfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// burn sets a flame alight where it is. A zero time keeps the dying time
// the flame already has.
func burn(w donburi.World, e *donburi.Entry, t float64) {
	m := components.Movable.Get(e)
	if t != 0 {
		m.DyingTimer.Reset(t)
	}
	sp := components.Sprite.Get(e)
	sp.ScaleX, sp.ScaleY = 1, 1
	StartDying(w, e, cfg.SoundBurn)
}

// updateFlame grows a flame while it flies and makes it flicker between
// two sizes while it burns.
func updateFlame(w donburi.World, e *donburi.Entry, dt float64) {
	f := components.Flame.Get(e)
	if !f.ScaleTimer.RanOut() {
		f.ScaleTimer.Decrement(dt)
		return
	}

	sp := components.Sprite.Get(e)
	switch components.Movable.Get(e).Status {
	case components.Alive:
		scaleSpriteBy(sp, dt*cfg.Flame.AliveScaleRate)
	case components.Dying:
		sx, sy := math.Abs(sp.ScaleX), math.Abs(sp.ScaleY)
		if sx < cfg.Flame.DyingScaleMin || sy < cfg.Flame.DyingScaleMin {
			f.Growing = true
		} else if sx > cfg.Flame.DyingScaleMax || sy > cfg.Flame.DyingScaleMax {
			f.Growing = false
		}
		rate := float64(gamemath.RandInt(random(w), cfg.Flame.DyingRateMin, cfg.Flame.DyingRateMax))
		if !f.Growing {
			rate = -rate
		}
		scaleSpriteBy(sp, dt*rate)
	}
	f.ScaleTimer.Reset(cfg.Flame.ScaleDelay)
}

// UpdateBurnChannel keeps the shared fire loop playing while any flame
// exists and lets it go out with the last one.
func UpdateBurnChannel(ecs *ecs.ECS) {
	w := ecs.World
	channel, ok := tags.BurnChannel.First(w)
	if !ok {
		return
	}
	burning := false
	for range components.Flame.Iter(w) {
		burning = true
		break
	}

	a := arenaData(w)
	switch {
	case burning && !a.BurningFlames:
		PlaySound(w, channel, cfg.SoundStaticBurn, true)
	case !burning && a.BurningFlames:
		PlaySound(w, channel, cfg.SoundGoOut, false)
	}
	a.BurningFlames = burning
}
