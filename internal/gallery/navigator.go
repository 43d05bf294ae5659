package gallery

import (
	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

// Navigator is the lightbox state machine over {Closed, Open(index)}.
//
// The index points into the visible set that was current when it was last
// assigned. When the visible set changes while open, the navigator keeps its
// index and the item it last displayed until the next Open, Next or Previous
// call; Follow is the opt-in alternative that re-anchors by identity.
type Navigator struct {
	open  bool
	index int
	shown catalog.Item
}

// IsOpen reports whether the lightbox is open.
func (n *Navigator) IsOpen() bool {
	return n.open
}

// Index returns the open index. ok is false when closed.
func (n *Navigator) Index() (int, bool) {
	if !n.open {
		return 0, false
	}
	return n.index, true
}

// Shown returns the item the lightbox last displayed.
func (n *Navigator) Shown() (catalog.Item, bool) {
	if !n.open {
		return catalog.Item{}, false
	}
	return n.shown, true
}

// Open shows the item with the given id. Items outside the visible set leave
// the navigator untouched.
func (n *Navigator) Open(id string, visible VisibleSet) bool {
	i, ok := visible.IndexOf(id)
	if !ok {
		return false
	}
	return n.OpenAt(i, visible)
}

// OpenAt shows the visible item at position i. Out-of-range positions are ignored.
func (n *Navigator) OpenAt(i int, visible VisibleSet) bool {
	item, ok := visible.At(i)
	if !ok {
		return false
	}
	n.open = true
	n.index = i
	n.shown = item
	return true
}

// Next advances with wraparound.
func (n *Navigator) Next(visible VisibleSet) bool {
	return n.step(visible, 1)
}

// Previous steps back with wraparound.
func (n *Navigator) Previous(visible VisibleSet) bool {
	return n.step(visible, -1)
}

func (n *Navigator) step(visible VisibleSet, delta int) bool {
	size := visible.Len()
	if !n.open || size == 0 {
		return false
	}
	// A stale index can exceed size; reduce it first so the result stays in range.
	i := ((n.index % size) + delta + size) % size
	return n.OpenAt(i, visible)
}

// Close transitions to Closed from any state.
func (n *Navigator) Close() bool {
	wasOpen := n.open
	n.open = false
	n.index = 0
	n.shown = catalog.Item{}
	return wasOpen
}

// Follow re-anchors an open navigator on the item it displays: it moves to the
// item's new position, or closes when the item is no longer visible.
func (n *Navigator) Follow(visible VisibleSet) bool {
	if !n.open {
		return false
	}
	i, ok := visible.IndexOf(n.shown.ID)
	if !ok {
		return n.Close()
	}
	if i == n.index {
		return false
	}
	n.index = i
	return true
}
