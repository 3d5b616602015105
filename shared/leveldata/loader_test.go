package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="11" height="11" tilewidth="63" tileheight="63" infinite="0">
`

func tmx(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(header + body + "</map>\n")}
}

const walls = ` <objectgroup id="1" name="Walls">
  <object id="1" x="63" y="67" width="567" height="561"/>
 </objectgroup>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arena.tmx": tmx(walls + ` <objectgroup id="2" name="Spawns">
  <object id="2" name="p" class="player" x="346.5" y="347.5"><point/></object>
  <object id="3" name="south" class="enemy" x="346.5" y="596.5"><point/></object>
  <object id="4" name="north" type="enemy" x="346.5" y="98.5"><point/></object>
 </objectgroup>
`),
	}

	data, err := LoadArena(fsys, "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 67.0, data.Top())
	assert.Equal(t, 628.0, data.Bottom())
	assert.Equal(t, 63.0, data.Left())
	assert.Equal(t, 630.0, data.Right())
	assert.Equal(t, 11*63, data.MapWidth)
	assert.Equal(t, Point{X: 346.5, Y: 347.5, Name: "p"}, data.PlayerSpawn)
	require.Len(t, data.EnemySpawns, 2)
	assert.Equal(t, "north", data.EnemySpawns[0].Name, "spawns are sorted top to bottom")
	assert.Equal(t, "south", data.EnemySpawns[1].Name)
}

func TestLoadArenaErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "no walls",
			body: ` <objectgroup id="2" name="Spawns">
  <object id="2" class="player" x="100" y="100"><point/></object>
 </objectgroup>
`,
			want: ErrNoWalls,
		},
		{
			name: "no player",
			body: walls,
			want: ErrNoPlayerSpawn,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArena(fstest.MapFS{"a.tmx": tmx(tt.body)}, "a.tmx")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("spawn outside walls", func(t *testing.T) {
		body := walls + ` <objectgroup id="2" name="Spawns">
  <object id="2" class="player" x="10" y="10"><point/></object>
 </objectgroup>
`
		_, err := LoadArena(fstest.MapFS{"a.tmx": tmx(body)}, "a.tmx")
		assert.ErrorContains(t, err, "outside the walls")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
		assert.Error(t, err)
	})
}
