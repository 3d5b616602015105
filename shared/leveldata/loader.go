package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group and class names the loader understands.
const (
	wallsGroup  = "Walls"
	spawnsGroup = "Spawns"
	playerClass = "player"
	enemyClass  = "enemy"
)

var (
	ErrNoWalls       = errors.New("arena has no walls")
	ErrNoPlayerSpawn = errors.New("arena has no player spawn")
)

// LoadArena parses a TMX file. The "Walls" object group holds one rectangle
// bounding the play area, the "Spawns" group holds point objects of class
// "player" or "enemy". It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	hasWalls, hasPlayer := false, false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case wallsGroup:
			if len(og.Objects) != 1 {
				return nil, fmt.Errorf("%s: want one wall rectangle, found %d", tmxPath, len(og.Objects))
			}
			o := og.Objects[0]
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("%s: wall object %d is empty", tmxPath, o.ID)
			}
			data.Walls = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			hasWalls = true
		case spawnsGroup:
			for _, o := range og.Objects {
				p := Point{X: o.X, Y: o.Y, Name: o.Name}
				switch objectClass(o) {
				case playerClass:
					data.PlayerSpawn = p
					hasPlayer = true
				case enemyClass:
					data.EnemySpawns = append(data.EnemySpawns, p)
				default:
					return nil, fmt.Errorf("%s: spawn %q has unknown class %q", tmxPath, o.Name, objectClass(o))
				}
			}
		}
	}

	if !hasWalls {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoWalls)
	}
	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	for _, p := range append([]Point{data.PlayerSpawn}, data.EnemySpawns...) {
		if !data.Contains(p) {
			return nil, fmt.Errorf("%s: spawn %q at (%.1f, %.1f) is outside the walls", tmxPath, p.Name, p.X, p.Y)
		}
	}

	// Sort for a stable wave order regardless of how the file was edited
	sort.Slice(data.EnemySpawns, func(i, j int) bool {
		a, b := data.EnemySpawns[i], data.EnemySpawns[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return data, nil
}

// Contains reports whether p lies inside the walls, edges included.
func (a *ArenaData) Contains(p Point) bool {
	return p.X >= a.Left() && p.X <= a.Right() && p.Y >= a.Top() && p.Y <= a.Bottom()
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}
