package assets

import (
	"testing"

	cfg "github.com/automoto/gridfire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArenaMatchesBuiltInWalls(t *testing.T) {
	data, err := LoadArena("")
	require.NoError(t, err)

	assert.Equal(t, cfg.Arena.TopWall, data.Top())
	assert.Equal(t, cfg.Arena.BottomWall, data.Bottom())
	assert.Equal(t, cfg.Arena.LeftWall, data.Left())
	assert.Equal(t, cfg.Arena.RightWall, data.Right())
	assert.Len(t, data.EnemySpawns, 4)
}
