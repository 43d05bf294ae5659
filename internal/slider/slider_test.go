package slider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceWraps(t *testing.T) {
	s := New(3)
	s.Advance()
	s.Advance()
	assert.Equal(t, 2, s.Index())
	s.Advance()
	assert.Equal(t, 0, s.Index())
}

func TestShowIgnoresOutOfRange(t *testing.T) {
	s := New(3)
	assert.True(t, s.Show(2))
	assert.False(t, s.Show(3))
	assert.False(t, s.Show(-1))
	assert.Equal(t, 2, s.Index())
}

func TestEmptySlider(t *testing.T) {
	s := New(-4)
	assert.Equal(t, 0, s.Count())
	assert.NotPanics(t, s.Advance)
	assert.False(t, s.Show(0))
}

func TestTimerRestartInvalidatesOldTicks(t *testing.T) {
	timer := NewTimer(0)
	assert.Equal(t, DefaultInterval, timer.Interval())
	assert.False(t, timer.Accept(0), "stopped timer accepts nothing")

	first := timer.Restart()
	assert.True(t, timer.Accept(first))

	second := timer.Restart()
	assert.False(t, timer.Accept(first))
	assert.True(t, timer.Accept(second))

	timer.Stop()
	assert.False(t, timer.Running())
	assert.False(t, timer.Accept(second))
}

func TestTimerCustomInterval(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, NewTimer(250*time.Millisecond).Interval())
}
