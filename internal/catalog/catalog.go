package catalog

// Catalog is the ordered, read-only list of gallery items for a session.
type Catalog struct {
	name       string
	items      []Item
	categories []Category
	slides     []Slide
	index      map[string]int
}

// New builds a catalog from items in display order. Callers are expected to have
// validated the input; duplicate ids keep their first position.
func New(name string, categories []Category, slides []Slide, items []Item) *Catalog {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	c := &Catalog{
		name:       name,
		items:      make([]Item, len(items)),
		categories: make([]Category, len(categories)),
		slides:     make([]Slide, len(slides)),
		index:      make(map[string]int, len(items)),
	}
	copy(c.items, items)
	copy(c.categories, categories)
	copy(c.slides, slides)

	for i, item := range c.items {
		if _, exists := c.index[item.ID]; !exists {
			c.index[item.ID] = i
		}
	}

	return c
}

// Name returns the catalog title.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at position i in catalog order.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Categories returns the enumerated categories, excluding the wildcard.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Slides returns the hero slides.
func (c *Catalog) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// KnownCategory reports whether cat is the wildcard or one of the enumerated categories.
func (c *Catalog) KnownCategory(cat Category) bool {
	if cat == All {
		return true
	}
	for _, known := range c.categories {
		if known == cat {
			return true
		}
	}
	return false
}
