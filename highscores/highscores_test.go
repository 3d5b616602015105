package highscores

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type memStorage struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStorage) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestInsert(t *testing.T) {
	var table []Entry
	table = Insert(table, "ann", 300)
	table = Insert(table, "bob", 500)
	table = Insert(table, "cid", 300)
	table = Insert(table, "dee", 100)

	assert.Equal(t, []Entry{
		{Name: "bob", Score: 500},
		{Name: "ann", Score: 300},
		{Name: "cid", Score: 300},
		{Name: "dee", Score: 100},
	}, table, "equal scores keep the older entry first")

	table = Insert(table, "max", MaxScore+1)
	assert.Equal(t, Entry{Name: "max", Score: MaxScore}, table[0])
}

func TestTableStaysSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scores := rapid.SliceOf(rapid.IntRange(0, MaxScore)).Draw(t, "scores")
		var table []Entry
		for _, s := range scores {
			if Qualifies(table, s) {
				table = Insert(table, "p", s)
			}
		}
		if len(table) > MaxEntries {
			t.Fatalf("table holds %d entries", len(table))
		}
		for i := 1; i < len(table); i++ {
			if table[i-1].Score < table[i].Score {
				t.Fatalf("entry %d beats entry %d", i, i-1)
			}
		}
	})
}

func TestQualifies(t *testing.T) {
	var full []Entry
	for i := range MaxEntries {
		full = append(full, Entry{Name: "p", Score: 1000 - i*10})
	}
	last := full[len(full)-1].Score

	assert.True(t, Qualifies(nil, 0))
	assert.True(t, Qualifies(full[:3], 0))
	assert.False(t, Qualifies(full, last))
	assert.True(t, Qualifies(full, last+1))
}

func TestQualifiesCapsScore(t *testing.T) {
	var full []Entry
	for range MaxEntries {
		full = Insert(full, "max", MaxScore)
	}

	assert.False(t, Qualifies(full, MaxScore+1), "a capped score only ties the table")
	assert.Len(t, Insert(full, "late", MaxScore+1), MaxEntries)
	assert.Equal(t, "max", Insert(full, "late", MaxScore+1)[MaxEntries-1].Name)
}

func TestRecord(t *testing.T) {
	s := &memStorage{}

	table, added := Record(s, "ann", 400)
	require.True(t, added)
	assert.Len(t, table, 1)

	loaded, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)

	s.loadErr = errors.New("disk gone")
	_, added = Record(s, "bob", 900)
	assert.False(t, added)
}

func TestLoadRejectsGarbage(t *testing.T) {
	s := &memStorage{items: map[string][]byte{itemKey: []byte("{nope")}}
	_, err := Load(s)
	assert.ErrorContains(t, err, "parse highscores")
}
