// Package timer provides the countdown used for every debounce, reload and
// lifetime window in the arena. The zero Timer has already run out.
package timer

import "github.com/automoto/gridfire/shared/contract"

type Timer struct {
	time float64
}

// New returns a timer counting down from v seconds.
func New(v float64) Timer {
	contract.Require(v >= 0, "timer cannot start below zero")
	return Timer{time: v}
}

// RanOut reports whether the countdown reached zero.
func (t *Timer) RanOut() bool {
	return t.time <= 0
}

// TimeLeft returns the remaining seconds, never less than zero.
func (t *Timer) TimeLeft() float64 {
	if t.RanOut() {
		return 0
	}
	return t.time
}

func (t *Timer) Decrement(dt float64) {
	contract.Require(dt > 0, "timer decrement must be positive")
	t.time -= dt
}

func (t *Timer) Reset(v float64) {
	contract.Require(v >= 0, "timer cannot reset below zero")
	t.time = v
}
