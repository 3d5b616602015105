package gamemath

import (
	"math/rand"

	"github.com/automoto/gridfire/shared/contract"
)

// RandInt returns an integer in [min, max], both inclusive.
func RandInt(rng *rand.Rand, min, max int) int {
	contract.Require(min <= max, "random range is inverted")
	return min + rng.Intn(max-min+1)
}

func RandBool(rng *rand.Rand) bool {
	return rng.Intn(2) == 1
}

// RandAngleOfMultiple returns a random angle in [0, 360) that is a multiple
// of the given step.
func RandAngleOfMultiple(rng *rand.Rand, multiple float64) float64 {
	contract.Require(multiple > 0 && multiple <= 360, "angle multiple must be in (0, 360]")
	possible := int(360 / multiple)
	return float64(RandInt(rng, 0, possible-1)) * multiple
}
