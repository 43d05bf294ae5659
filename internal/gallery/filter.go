package gallery

import (
	"strings"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

// FilterState holds the active category selector and the normalized search query.
// Category and query compose conjunctively: an item is shown only when both match.
type FilterState struct {
	ActiveCategory catalog.Category
	Query          string
}

// NewFilterState returns the initial state: every category, empty query.
func NewFilterState() FilterState {
	return FilterState{ActiveCategory: catalog.All}
}

// SetCategory stores cat as-is. A category that no item carries simply matches nothing.
func (f *FilterState) SetCategory(cat catalog.Category) {
	f.ActiveCategory = cat
}

// SetQuery stores the trimmed, case-folded form of q.
func (f *FilterState) SetQuery(q string) {
	f.Query = NormalizeQuery(q)
}

// NormalizeQuery trims surrounding whitespace and lower-cases q.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchesCategory reports whether item passes the category selector.
func (f FilterState) MatchesCategory(item catalog.Item) bool {
	return f.ActiveCategory == catalog.All || item.Category == f.ActiveCategory
}

// MatchesQuery reports whether item's title contains the query, ignoring case.
func (f FilterState) MatchesQuery(item catalog.Item) bool {
	if f.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), f.Query)
}

// Matches reports whether item passes both the category and the query.
func (f FilterState) Matches(item catalog.Item) bool {
	return f.MatchesCategory(item) && f.MatchesQuery(item)
}

// ShouldRender is the per-item render signal.
func (f FilterState) ShouldRender(item catalog.Item) bool {
	return f.Matches(item)
}
