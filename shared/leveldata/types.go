// Package leveldata parses arena layouts drawn in Tiled.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

// Rect is an axis aligned box in world pixels, X and Y at its top left.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn location in world pixels.
type Point struct {
	X, Y float64
	Name string
}

// ArenaData holds everything the simulation needs from an arena file.
type ArenaData struct {
	Walls       Rect
	PlayerSpawn Point
	EnemySpawns []Point
	MapWidth    int
	MapHeight   int
}

// Top, Bottom, Left and Right are the wall lines of the play area.
func (a *ArenaData) Top() float64    { return a.Walls.Y }
func (a *ArenaData) Bottom() float64 { return a.Walls.Y + a.Walls.H }
func (a *ArenaData) Left() float64   { return a.Walls.X }
func (a *ArenaData) Right() float64  { return a.Walls.X + a.Walls.W }
