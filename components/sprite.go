package components

import (
	"math"

	"github.com/automoto/gridfire/config"
	"github.com/automoto/gridfire/shared/contract"
	"github.com/automoto/gridfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteData is the visual state the collision pass measures footprints
// from. Rotation is in degrees, clockwise on screen.
type SpriteData struct {
	Bank     string
	Visual   string
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	FlipH    bool
	FlipV    bool
}

// Footprint returns the axis-aligned width and height the sprite covers
// after scaling and rotation.
func (s *SpriteData) Footprint() (float64, float64) {
	size, ok := config.Sprites[s.Bank][s.Visual]
	contract.Require(ok, "sprite has no image assigned")
	w, h := gamemath.RotatedBounds(size.W*math.Abs(s.ScaleX), size.H*math.Abs(s.ScaleY), s.Rotation)
	contract.Require(w > 0 && h > 0, "sprite footprint is empty")
	contract.Require(w <= config.Physics.MaxFootprint && h <= config.Physics.MaxFootprint, "sprite footprint exceeds the maximum size")
	return w, h
}

var Sprite = donburi.NewComponentType[SpriteData]()
