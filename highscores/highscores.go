// Package highscores keeps the best level totals in the player's data
// directory. The simulation never calls it, the viewer and the simulator
// record finished levels.
package highscores

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata"
)

const (
	MaxEntries = 10
	MaxScore   = 9999999 // Seven digits fit the HUD
	itemKey    = "highscores"
)

// Entry is one line of the best-scores table.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Storage is the part of a gdata manager the table needs.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Open opens the per-user data directory for appName.
func Open(appName string) (Storage, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open score storage: %w", err)
	}
	return m, nil
}

// Qualifies reports whether score earns a place in the table. Scores are
// capped the way Insert stores them.
func Qualifies(table []Entry, score int) bool {
	score = min(score, MaxScore)
	return len(table) < MaxEntries || score > table[len(table)-1].Score
}

// Insert adds a score to a table sorted best first. Older entries
// keep their place over equal new ones and the lowest falls off a full
// table.
func Insert(table []Entry, name string, score int) []Entry {
	score = min(score, MaxScore)
	i, _ := slices.BinarySearchFunc(table, score, func(e Entry, s int) int {
		if e.Score >= s {
			return -1
		}
		return 1
	})
	table = slices.Insert(table, i, Entry{Name: name, Score: score})
	if len(table) > MaxEntries {
		table = table[:MaxEntries]
	}
	return table
}

// Load reads the table. A missing table is an empty one.
func Load(s Storage) ([]Entry, error) {
	data, err := s.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load highscores: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var table []Entry
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse highscores: %w", err)
	}
	return table, nil
}

// Save replaces the stored table.
func Save(s Storage, table []Entry) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("serialize highscores: %w", err)
	}
	if err := s.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save highscores: %w", err)
	}
	return nil
}

// Record loads the table, adds score when it qualifies and saves it again.
// It returns the table as it now stands and whether it changed.
func Record(s Storage, name string, score int) ([]Entry, bool) {
	table, err := Load(s)
	if err != nil {
		log.Printf("Warning: %v", err)
		return nil, false
	}
	if !Qualifies(table, score) {
		return table, false
	}
	table = Insert(table, name, score)
	if err := Save(s, table); err != nil {
		log.Printf("Warning: %v", err)
	}
	return table, true
}
