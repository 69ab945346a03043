package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestKeyRepeat(t *testing.T) {
	const frame = 10 * time.Millisecond

	r := engine.NewKeyRepeat()
	assert.True(t, r.Update(true, true, frame), "initial press")

	var fired []int
	for i := 1; i <= 40; i++ {
		if r.Update(false, true, frame) {
			fired = append(fired, i)
		}
	}
	assert.Equal(t, []int{20, 25, 30, 35, 40}, fired)

	assert.False(t, r.Update(false, false, frame))
	assert.True(t, r.Update(true, true, frame))
	assert.False(t, r.Update(false, true, frame))
}

func TestKeyRepeatLongFrameFiresOnce(t *testing.T) {
	r := &engine.KeyRepeat{Delay: 100 * time.Millisecond, Rate: 20 * time.Millisecond}
	r.Update(true, true, 0)

	assert.True(t, r.Update(false, true, time.Second))
	assert.False(t, r.Update(false, true, 10*time.Millisecond))
	assert.True(t, r.Update(false, true, 10*time.Millisecond))
}

func TestKeyRepeatReleaseResets(t *testing.T) {
	r := engine.NewKeyRepeat()
	r.Update(true, true, 0)
	r.Update(false, true, 150*time.Millisecond)
	r.Update(false, false, 0)

	r.Update(true, true, 0)
	assert.False(t, r.Update(false, true, 150*time.Millisecond))
	assert.True(t, r.Update(false, true, 50*time.Millisecond))
}
