package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestRotatedBounds(t *testing.T) {
	tests := []struct {
		name         string
		w, h, deg    float64
		wantW, wantH float64
	}{
		{"unrotated", 30, 10, 0, 30, 10},
		{"quarter turn", 30, 10, 90, 10, 30},
		{"negative quarter turn", 30, 10, -90, 10, 30},
		{"half turn", 30, 10, 180, 30, 10},
		{"square at 45", 10, 10, 45, 14.142135623730951, 14.142135623730951},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := RotatedBounds(tt.w, tt.h, tt.deg)
			assert.InDelta(t, tt.wantW, w, 1e-9)
			assert.InDelta(t, tt.wantH, h, 1e-9)
		})
	}
}

func TestPointOnCircle(t *testing.T) {
	c := dmath.Vec2{X: 100, Y: 100}
	p := PointOnCircle(c, 20, 90)
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 120, p.Y, 1e-9)

	p = PointOnCircle(c, 20, 0)
	assert.InDelta(t, 120, p.X, 1e-9)
	assert.InDelta(t, 100, p.Y, 1e-9)
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 270.0, NormalizeDegrees(-90))
	assert.Equal(t, 10.0, NormalizeDegrees(370))
	assert.Equal(t, 0.0, NormalizeDegrees(360))
}

func TestRandInt(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := RandInt(rng, 3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "both bounds are reachable")
	assert.Panics(t, func() { RandInt(rng, 5, 3) })
}

func TestRandAngleOfMultiple(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 200; i++ {
		a := RandAngleOfMultiple(rng, 90)
		assert.Contains(t, []float64{0, 90, 180, 270}, a)
	}
	assert.Panics(t, func() { RandAngleOfMultiple(rng, 0) })
}
