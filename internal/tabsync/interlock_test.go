package tabsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatchHoldsUntilReleased(t *testing.T) {
	var l Latch
	assert.False(t, l.Held())

	l.Hold()
	for range 3 {
		assert.True(t, l.Held())
	}

	l.Release()
	assert.False(t, l.Held())
}

func TestOneShotSuppressesOnce(t *testing.T) {
	var o OneShot
	assert.False(t, o.Consume())

	o.Arm()
	o.Arm()
	assert.True(t, o.Armed())
	assert.True(t, o.Consume())
	assert.False(t, o.Armed())
	assert.False(t, o.Consume())
}
