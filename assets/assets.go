package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/gridfire/shared/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

// DefaultArena is the embedded arena file, loaded when no path is given.
const DefaultArena = "arenas/arena.tmx"

// LoadArena loads path from disk, or the embedded default arena when path
// is empty.
func LoadArena(path string) (*leveldata.ArenaData, error) {
	var fsys fs.FS = arenaFS
	name := DefaultArena
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}
	data, err := leveldata.LoadArena(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return data, nil
}

// MustLoadArena panics on a broken arena file.
func MustLoadArena(path string) *leveldata.ArenaData {
	data, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return data
}
