package gallery

import (
	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

// VisibleSet is the catalog-ordered subsequence of items passing the current filter.
// It is a derived view; the catalog and FilterState stay authoritative.
type VisibleSet struct {
	items     []catalog.Item
	positions map[string]int
}

// Recompute derives the visible set from scratch. It is pure and may return an empty set.
func Recompute(c *catalog.Catalog, f FilterState) VisibleSet {
	v := VisibleSet{positions: make(map[string]int)}
	if c == nil {
		return v
	}

	for i := 0; i < c.Len(); i++ {
		item := c.At(i)
		if !f.Matches(item) {
			continue
		}
		v.positions[item.ID] = len(v.items)
		v.items = append(v.items, item)
	}

	return v
}

// Len returns the number of visible items.
func (v VisibleSet) Len() int {
	return len(v.items)
}

// At returns the visible item at position i.
func (v VisibleSet) At(i int) (catalog.Item, bool) {
	if i < 0 || i >= len(v.items) {
		return catalog.Item{}, false
	}
	return v.items[i], true
}

// IndexOf returns the position of the item with the given id.
func (v VisibleSet) IndexOf(id string) (int, bool) {
	i, ok := v.positions[id]
	return i, ok
}

// Contains reports whether the item with the given id is visible.
func (v VisibleSet) Contains(id string) bool {
	_, ok := v.positions[id]
	return ok
}

// Items returns a copy of the visible items in catalog order.
func (v VisibleSet) Items() []catalog.Item {
	out := make([]catalog.Item, len(v.items))
	copy(out, v.items)
	return out
}

// IDs returns the visible item ids in order.
func (v VisibleSet) IDs() []string {
	ids := make([]string, len(v.items))
	for i, item := range v.items {
		ids[i] = item.ID
	}
	return ids
}
