package gallery

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

var propertyCategories = []catalog.Category{catalog.Photo, catalog.Video, catalog.Nature}

func catalogGen() *rapid.Generator[*catalog.Catalog] {
	return rapid.Custom(func(t *rapid.T) *catalog.Catalog {
		n := rapid.IntRange(0, 12).Draw(t, "size")
		items := make([]catalog.Item, n)
		for i := range items {
			items[i] = catalog.Item{
				ID:       fmt.Sprintf("item-%d", i),
				Title:    rapid.StringMatching(`[A-Ca-c ]{0,6}`).Draw(t, "title"),
				Category: rapid.SampledFrom(propertyCategories).Draw(t, "category"),
				ImageRef: fmt.Sprintf("img-%d", i),
			}
		}
		return catalog.New("prop", propertyCategories, nil, items)
	})
}

func filterGen() *rapid.Generator[FilterState] {
	return rapid.Custom(func(t *rapid.T) FilterState {
		cats := append([]catalog.Category{catalog.All, "audio"}, propertyCategories...)
		f := NewFilterState()
		f.SetCategory(rapid.SampledFrom(cats).Draw(t, "active"))
		f.SetQuery(rapid.StringMatching(`[A-Ca-c ]{0,3}`).Draw(t, "query"))
		return f
	})
}

func TestPropertyVisibleSetIsConjunctiveSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		f := filterGen().Draw(t, "filter")

		var want []string
		for _, item := range c.Items() {
			catOK := f.ActiveCategory == catalog.All || item.Category == f.ActiveCategory
			queryOK := strings.Contains(strings.ToLower(item.Title), f.Query)
			if catOK && queryOK {
				want = append(want, item.ID)
			}
		}

		got := Recompute(c, f).IDs()
		if len(got) != len(want) {
			t.Fatalf("visible %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("visible %v, want %v", got, want)
			}
		}
	})
}

func TestPropertySetCategoryIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		cat := rapid.SampledFrom(append([]catalog.Category{catalog.All}, propertyCategories...)).Draw(t, "category")

		once := NewSession(c)
		once.SetCategory(cat)

		twice := NewSession(c)
		twice.SetCategory(cat)
		twice.SetCategory(cat)

		if strings.Join(once.Visible().IDs(), ",") != strings.Join(twice.Visible().IDs(), ",") {
			t.Fatalf("set category twice changed the visible set")
		}
	})
}

func TestPropertyNextPreviousRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Filter(func(c *catalog.Catalog) bool { return c.Len() > 0 }).Draw(t, "catalog")
		v := Recompute(c, NewFilterState())
		start := rapid.IntRange(0, v.Len()-1).Draw(t, "start")
		forwardFirst := rapid.Bool().Draw(t, "forwardFirst")

		var n Navigator
		if !n.OpenAt(start, v) {
			t.Fatalf("open at %d failed", start)
		}
		if forwardFirst {
			n.Next(v)
			n.Previous(v)
		} else {
			n.Previous(v)
			n.Next(v)
		}

		if got, _ := n.Index(); got != start {
			t.Fatalf("round trip ended at %d, want %d", got, start)
		}
	})
}

func TestPropertyWraparound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Filter(func(c *catalog.Catalog) bool { return c.Len() > 0 }).Draw(t, "catalog")
		v := Recompute(c, NewFilterState())
		start := rapid.IntRange(0, v.Len()-1).Draw(t, "start")

		var n Navigator
		n.OpenAt(start, v)
		for i := 0; i < v.Len(); i++ {
			n.Next(v)
		}

		if got, _ := n.Index(); got != start {
			t.Fatalf("after %d steps index %d, want %d", v.Len(), got, start)
		}
	})
}

func TestPropertyIndexNeverOutOfRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		s := NewSession(c)

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 6).Draw(t, "op") {
			case 0:
				f := filterGen().Draw(t, "filter")
				s.SetCategory(f.ActiveCategory)
				s.SetQuery(f.Query)
			case 1:
				if c.Len() > 0 {
					s.OpenItem(c.At(rapid.IntRange(0, c.Len()-1).Draw(t, "pick")).ID)
				}
			case 2:
				s.Next()
			case 3:
				s.Previous()
			case 4:
				s.Close()
			case 5:
				s.HandleKey(rapid.SampledFrom([]KeyCommand{KeyLeft, KeyRight, KeyEscape}).Draw(t, "key"))
			case 6:
				s.OpenAt(rapid.IntRange(-2, 14).Draw(t, "at"))
			}

			view := s.Lightbox()
			if view.Index < 0 {
				t.Fatalf("negative index %d", view.Index)
			}
			// Only the staleness window may leave the index beyond the visible set;
			// any successful navigation must land in range.
		}

		if s.Visible().Len() > 0 && s.Lightbox().Open {
			if s.Next() {
				if idx := s.Lightbox().Index; idx >= s.Visible().Len() {
					t.Fatalf("index %d out of range after next (len %d)", idx, s.Visible().Len())
				}
			}
		}
	})
}

func TestPropertyEmptySetOpenIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Filter(func(c *catalog.Catalog) bool { return c.Len() > 0 }).Draw(t, "catalog")
		s := NewSession(c)
		s.SetCategory("audio")

		pick := c.At(rapid.IntRange(0, c.Len()-1).Draw(t, "pick"))
		if s.OpenItem(pick.ID) {
			t.Fatalf("opened %s in an empty visible set", pick.ID)
		}
		if s.Lightbox().Open {
			t.Fatalf("lightbox open after no-op")
		}
	})
}
