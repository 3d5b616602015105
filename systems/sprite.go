package systems

import (
	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/yohamta/donburi"
)

// SetVisual swaps the sprite image. A new image starts unrotated and
// unflipped but keeps its scale. Missing images leave the sprite as it was.
func SetVisual(e *donburi.Entry, token string) bool {
	sp := components.Sprite.Get(e)
	if !cfg.HasImage(sp.Bank, token) {
		return false
	}
	sp.Visual = token
	sp.Rotation = 0
	sp.FlipH = false
	sp.FlipV = false
	return true
}

func HasImage(e *donburi.Entry, token string) bool {
	return cfg.HasImage(components.Sprite.Get(e).Bank, token)
}

// Footprint returns the entity's current width and height on screen.
func Footprint(e *donburi.Entry) (float64, float64) {
	return components.Sprite.Get(e).Footprint()
}

// scaleSpriteBy grows both scale magnitudes by delta, shrinking for negative
// delta. Mirrored axes stay mirrored.
func scaleSpriteBy(sp *components.SpriteData, delta float64) {
	if sp.ScaleX < 0 {
		sp.ScaleX -= delta
	} else {
		sp.ScaleX += delta
	}
	if sp.ScaleY < 0 {
		sp.ScaleY -= delta
	} else {
		sp.ScaleY += delta
	}
}
