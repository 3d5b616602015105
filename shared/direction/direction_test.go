package direction

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{None, None},
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Opposite())
			assert.Equal(t, tt.in, tt.in.Opposite().Opposite())
		})
	}
}

func TestAxis(t *testing.T) {
	assert.True(t, Up.IsVertical())
	assert.True(t, Down.IsVertical())
	assert.False(t, Left.IsVertical())
	assert.True(t, Left.IsHorizontal())
	assert.True(t, Right.IsHorizontal())
	assert.False(t, None.IsVertical())
	assert.False(t, None.IsHorizontal())
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Up.Sign())
	assert.Equal(t, -1.0, Left.Sign())
	assert.Equal(t, 1.0, Down.Sign())
	assert.Equal(t, 1.0, Right.Sign())
	assert.Equal(t, 0.0, None.Sign())
}

func TestUnknownDirectionPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Direction(9).Opposite() })
	assert.Panics(t, func() { _ = Direction(-1).String() })
}

func TestRandomStaysOnAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 100; i++ {
		assert.True(t, RandomVertical(rng).IsVertical())
		assert.True(t, RandomHorizontal(rng).IsHorizontal())
		assert.NotEqual(t, None, Random(rng))
	}
}
