// Package direction holds the four movement directions plus None.
package direction

import (
	"math/rand"

	"github.com/automoto/gridfire/shared/contract"
)

type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// All lists the four real directions in a stable order.
var All = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	contract.Failf("unknown direction %d", int(d))
	return ""
}

// Opposite returns the direction pointing the other way. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case None:
		return None
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	contract.Failf("unknown direction %d", int(d))
	return None
}

func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Sign is -1 for Up and Left, 1 for Down and Right and 0 for None.
func (d Direction) Sign() float64 {
	switch d {
	case None:
		return 0
	case Up, Left:
		return -1
	case Down, Right:
		return 1
	}
	contract.Failf("unknown direction %d", int(d))
	return 0
}

// Random picks one of the four real directions.
func Random(rng *rand.Rand) Direction {
	return All[rng.Intn(len(All))]
}

// RandomVertical picks Up or Down.
func RandomVertical(rng *rand.Rand) Direction {
	if rng.Intn(2) == 0 {
		return Down
	}
	return Up
}

// RandomHorizontal picks Left or Right.
func RandomHorizontal(rng *rand.Rand) Direction {
	if rng.Intn(2) == 0 {
		return Right
	}
	return Left
}
