package config

// Size is the unrotated, unscaled extent of a sprite in pixels
type Size struct {
	W, H float64
}

// Sprites maps a bank to the sizes of its images. Each bank's default image
// uses the bank's base name as its token, projectiles are drawn pointing right.
var Sprites map[string]map[string]Size

func init() {
	Sprites = map[string]map[string]Size{
		"Actors/Player": {
			"Player": {W: 20, H: 27},
			"Dying":  {W: 20, H: 27},
		},
		"Actors/Wanderer": {
			"Wanderer": {W: 22, H: 22},
			"Dying":    {W: 22, H: 22},
		},
		"Actors/Obstructer": {
			"Obstructer": {W: 50, H: 56},
			"Dying":      {W: 50, H: 56},
		},
		"Projectiles/Arrow": {
			"Arrow":    {W: 28, H: 5},
			"HitWall":  {W: 20, H: 5},
			"HitActor": {W: 14, H: 5},
		},
		"Projectiles/Bullet": {
			"Bullet":   {W: 6, H: 3},
			"HitWall":  {W: 6, H: 6},
			"HitActor": {W: 8, H: 8},
		},
		"Projectiles/Pellet": {
			"Pellet":   {W: 3, H: 3},
			"HitWall":  {W: 4, H: 4},
			"HitActor": {W: 5, H: 5},
		},
		"Projectiles/Rocket": {
			"Rocket":  {W: 26, H: 8},
			"Explode": {W: 64, H: 64},
		},
		"Projectiles/Flame": {
			"Flame": {W: 10, H: 8},
			"Burn":  {W: 14, H: 18},
		},
		"Projectiles/Grenade": {
			"Grenade": {W: 9, H: 11},
			"Explode": {W: 96, H: 96},
		},
		"Projectiles/Hatchet": {
			"Hatchet":  {W: 16, H: 15},
			"InFloor":  {W: 12, H: 10},
			"OnFloor":  {W: 16, H: 8},
			"HitActor": {W: 12, H: 10},
		},
		"Projectiles/FireBottle": {
			"FireBottle": {W: 8, H: 16},
			"Smash":      {W: 20, H: 12},
		},
		"Collectables/HealthPack": {
			"HealthPack": {W: 18, H: 16},
		},
	}
}

// HasImage reports whether the bank contains an image for token.
func HasImage(bank, token string) bool {
	_, ok := Sprites[bank][token]
	return ok
}
