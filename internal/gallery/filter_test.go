package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	return catalog.New("sample", []catalog.Category{catalog.Photo, catalog.Video}, nil, []catalog.Item{
		{ID: "A", Title: "Alpine", Category: catalog.Photo, ImageRef: "a.jpg"},
		{ID: "B", Title: "Boat", Category: catalog.Video, ImageRef: "b.mp4"},
		{ID: "C", Title: "Cliff", Category: catalog.Photo, ImageRef: "c.jpg"},
	})
}

func TestSetQueryNormalizes(t *testing.T) {
	f := NewFilterState()
	f.SetQuery("  BoAt \t")
	assert.Equal(t, "boat", f.Query)
}

func TestMatchesIsConjunctive(t *testing.T) {
	item := catalog.Item{ID: "B", Title: "Boat", Category: catalog.Video}

	tests := []struct {
		name     string
		category catalog.Category
		query    string
		want     bool
	}{
		{"wildcard and empty query", catalog.All, "", true},
		{"category match only", catalog.Video, "", true},
		{"query match only", catalog.All, "bo", true},
		{"both match", catalog.Video, "OAT", true},
		{"category mismatch with query match", catalog.Photo, "b", false},
		{"category match with query mismatch", catalog.Video, "cliff", false},
		{"unknown category", catalog.Category("audio"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilterState()
			f.SetCategory(tt.category)
			f.SetQuery(tt.query)
			assert.Equal(t, tt.want, f.Matches(item))
			assert.Equal(t, tt.want, f.ShouldRender(item))
		})
	}
}

func TestRecomputeScenario(t *testing.T) {
	c := sampleCatalog()
	f := NewFilterState()

	assert.Equal(t, []string{"A", "B", "C"}, Recompute(c, f).IDs())

	f.SetCategory(catalog.Photo)
	assert.Equal(t, []string{"A", "C"}, Recompute(c, f).IDs())

	// B matches the query but is excluded by category.
	f.SetQuery("b")
	assert.Empty(t, Recompute(c, f).IDs())
}

func TestRecomputePreservesCatalogOrder(t *testing.T) {
	c := sampleCatalog()
	f := NewFilterState()
	f.SetQuery("i")

	v := Recompute(c, f)
	assert.Equal(t, []string{"A", "C"}, v.IDs())

	i, ok := v.IndexOf("C")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = v.IndexOf("B")
	assert.False(t, ok)
}

func TestRecomputeNilCatalog(t *testing.T) {
	v := Recompute(nil, NewFilterState())
	assert.Equal(t, 0, v.Len())
	_, ok := v.At(0)
	assert.False(t, ok)
}

func TestVisibleSetAtBounds(t *testing.T) {
	v := Recompute(sampleCatalog(), NewFilterState())

	_, ok := v.At(-1)
	assert.False(t, ok)
	_, ok = v.At(3)
	assert.False(t, ok)

	item, ok := v.At(2)
	require.True(t, ok)
	assert.Equal(t, "C", item.ID)
}
