package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	assert.NotPanics(t, func() { Require(true, "fine") })
	assert.PanicsWithValue(t, "contract violation: speed must not be negative", func() {
		Require(false, "speed must not be negative")
	})
}

func TestFailf(t *testing.T) {
	assert.PanicsWithValue(t, "contract violation: unknown direction 7", func() {
		Failf("unknown direction %d", 7)
	})
}
