// Package slider holds hero slider state and the restartable auto-advance timer.
package slider

import "time"

// DefaultInterval is the auto-advance period.
const DefaultInterval = 4 * time.Second

// Slider tracks the active slide out of a fixed count.
type Slider struct {
	count int
	index int
}

// New returns a slider over count slides starting at the first.
func New(count int) *Slider {
	if count < 0 {
		count = 0
	}
	return &Slider{count: count}
}

// Count returns the number of slides.
func (s *Slider) Count() int {
	return s.count
}

// Index returns the active slide.
func (s *Slider) Index() int {
	return s.index
}

// Show activates slide i. Out-of-range values are ignored.
func (s *Slider) Show(i int) bool {
	if i < 0 || i >= s.count {
		return false
	}
	s.index = i
	return true
}

// Advance moves to the next slide, wrapping at the end.
func (s *Slider) Advance() {
	if s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
}

// Timer is a cancellable repeating task handle. Each Restart issues a new
// generation; ticks carrying an older generation are stale and must be dropped.
type Timer struct {
	interval   time.Duration
	generation int
	running    bool
}

// NewTimer creates a stopped timer. Non-positive intervals fall back to DefaultInterval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{interval: interval}
}

// Interval returns the tick period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Restart cancels outstanding ticks and returns the generation of the new run.
func (t *Timer) Restart() int {
	t.generation++
	t.running = true
	return t.generation
}

// Stop cancels outstanding ticks.
func (t *Timer) Stop() {
	t.generation++
	t.running = false
}

// Running reports whether the timer has an active run.
func (t *Timer) Running() bool {
	return t.running
}

// Accept reports whether a tick from generation gen belongs to the active run.
func (t *Timer) Accept(gen int) bool {
	return t.running && gen == t.generation
}
