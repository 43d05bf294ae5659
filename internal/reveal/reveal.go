package reveal

// DefaultThreshold is the visible fraction that triggers a reveal.
const DefaultThreshold = 0.12

// Span is a vertical extent in rows.
type Span struct {
	Top    int
	Height int
}

// Ratio returns the fraction of s that lies inside viewport.
func Ratio(s, viewport Span) float64 {
	if s.Height <= 0 {
		return 0
	}
	top := max(s.Top, viewport.Top)
	bottom := min(s.Top+s.Height, viewport.Top+viewport.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(s.Height)
}

// Tracker reveals items once they scroll into view. A revealed item is never
// observed again.
type Tracker struct {
	threshold float64
	revealed  map[string]bool
}

// NewTracker creates a tracker. Thresholds outside (0, 1] fall back to DefaultThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, revealed: make(map[string]bool)}
}

// Observe records item id at span within viewport and reports whether this
// call revealed it.
func (t *Tracker) Observe(id string, span, viewport Span) bool {
	if t.revealed[id] {
		return false
	}
	if Ratio(span, viewport) < t.threshold {
		return false
	}
	t.revealed[id] = true
	return true
}

// Revealed reports whether id has been revealed.
func (t *Tracker) Revealed(id string) bool {
	return t.revealed[id]
}

// Count returns how many items have been revealed.
func (t *Tracker) Count() int {
	return len(t.revealed)
}
