package config

import "github.com/yohamta/donburi/ecs"

// Draw layers of the arena scene, drawn in order
const (
	Default ecs.LayerID = iota
	HUD
)
