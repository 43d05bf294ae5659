package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
	"github.com/alexisbeaulieu97/lumen/internal/prefs"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

func testCatalog() *catalog.Catalog {
	return catalog.New("Test Gallery",
		[]catalog.Category{catalog.Photo, catalog.Video},
		[]catalog.Slide{
			{Heading: "First", Subtitle: "one"},
			{Heading: "Second", Subtitle: "two"},
		},
		[]catalog.Item{
			{ID: "a", Title: "Alpine", Category: catalog.Photo, ImageRef: "img/a.jpg"},
			{ID: "b", Title: "Boat", Category: catalog.Video, ImageRef: "img/b.mp4", Caption: "Slow motion"},
			{ID: "c", Title: "Cliff", Category: catalog.Photo, ImageRef: "img/c.jpg"},
		},
	)
}

func newTestModel(t *testing.T, opts Options) (Model, *prefs.Memory) {
	t.Helper()
	store := prefs.NewMemory()
	opts.Autoplay = true
	m := NewModel(testCatalog(), store, opts)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40}), store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 40, m.height)
	assert.False(t, m.showError)
	assert.Equal(t, 3, m.reveal.Count(), "all cards fit on the first row")
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "Terminal too small")

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.False(t, m.showError, "size error clears once the terminal grows")
}

func TestUpdate_TabCyclesCategories(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, catalog.Photo, m.ActiveCategory())
	assert.Equal(t, []string{"a", "c"}, m.session.Visible().IDs())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, catalog.Video, m.ActiveCategory())
	assert.Equal(t, []string{"b"}, m.session.Visible().IDs())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, catalog.All, m.ActiveCategory())
	assert.Equal(t, 3, m.session.Visible().Len())
}

func TestUpdate_SearchFiltersAsYouType(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, runes("/"))
	require.Equal(t, focusSearch, m.focus)

	m = send(t, m, runes("CL"))
	assert.Equal(t, "cl", m.session.Filter().Query)
	assert.Equal(t, []string{"c"}, m.session.Visible().IDs())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, focusGrid, m.focus)
	assert.False(t, m.frame.lightbox.Open, "enter leaves the search box without opening")
}

func TestUpdate_SearchWithoutMatches(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, runes("/"))
	m = send(t, m, runes("zzz"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, 0, m.session.Visible().Len())
	assert.Contains(t, m.View(), "No items match")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.frame.lightbox.Open)
}

func TestUpdate_LightboxNavigation(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.cursor)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.frame.lightbox.Open)
	assert.Equal(t, "b", m.frame.lightbox.Item.ID)
	assert.Contains(t, m.View(), "Slow motion")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "c", m.frame.lightbox.Item.ID)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "a", m.frame.lightbox.Item.ID, "next wraps to the start")
	assert.Equal(t, 0, m.cursor, "grid cursor follows the lightbox")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "c", m.frame.lightbox.Item.ID, "previous wraps to the end")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.frame.lightbox.Open)
	assert.True(t, m.frame.lightbox.Hidden())
}

func TestUpdate_LightboxDownloadTarget(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(runes("d"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, StatusMsg{Text: "download: img/a.jpg"}, msg)
	m = send(t, m, msg)

	assert.Equal(t, "download: img/a.jpg", m.status)
	assert.Contains(t, m.View(), "download: img/a.jpg")
}

func TestUpdate_LightboxStaysOnStaleItem(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "a", m.frame.lightbox.Item.ID)

	// Switch to video behind the open lightbox; "a" is no longer visible.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.True(t, m.frame.lightbox.Open)
	assert.Equal(t, "a", m.frame.lightbox.Item.ID)
	assert.Contains(t, m.View(), "No longer in the current results")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "b", m.frame.lightbox.Item.ID, "navigation lands inside the new visible set")
}

func TestUpdate_LightboxPositionTracksVisibleSet(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "c", m.frame.lightbox.Item.ID)
	assert.Contains(t, m.View(), "3 / 3")

	// Narrowing to photos behind the overlay moves c to second place.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.frame.lightbox.Open)
	assert.Equal(t, 2, m.frame.lightbox.Total)
	assert.Equal(t, 2, m.frame.lightbox.Position)
	assert.Contains(t, m.View(), "2 / 2")
	assert.NotContains(t, m.View(), "3 / 2")
}

func TestUpdate_LightboxCategoryChangeRevealsCards(t *testing.T) {
	items := make([]catalog.Item, 0, 6)
	for i := 0; i < 3; i++ {
		items = append(items, catalog.Item{ID: "v" + string(rune('0'+i)), Title: "Video", Category: catalog.Video})
	}
	for i := 0; i < 3; i++ {
		items = append(items, catalog.Item{ID: "p" + string(rune('0'+i)), Title: "Photo", Category: catalog.Photo})
	}
	c := catalog.New("Split", []catalog.Category{catalog.Photo, catalog.Video}, nil, items)

	m := NewModel(c, prefs.NewMemory(), Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.False(t, m.reveal.Revealed("p0"), "photos start below the fold")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.frame.lightbox.Open)

	// Filtering to photos behind the overlay pulls them into the first row.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.frame.lightbox.Open)
	assert.True(t, m.reveal.Revealed("p0"))
	assert.True(t, m.reveal.Revealed("p2"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "· · ·", "no placeholders once the overlay closes")
}

func TestUpdate_LightboxFollowClosesOnDisappear(t *testing.T) {
	m, _ := newTestModel(t, Options{Follow: true})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.frame.lightbox.Open)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.frame.lightbox.Open, "a is still a photo")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.frame.lightbox.Open)
}

func TestUpdate_ThemeToggle(t *testing.T) {
	m, store := newTestModel(t, Options{})

	stored, ok := store.Get(theme.StorageKey)
	require.True(t, ok, "initial theme is persisted")
	assert.Equal(t, "dark", stored)

	m = send(t, m, runes("t"))
	assert.Equal(t, theme.Light, m.Theme())
	assert.Equal(t, theme.PaletteFor(theme.Light), m.styles.Palette)

	stored, _ = store.Get(theme.StorageKey)
	assert.Equal(t, "light", stored)

	m = send(t, m, runes("t"))
	assert.Equal(t, theme.Dark, m.Theme())
}

func TestNewModel_RestoresStoredTheme(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Set(theme.StorageKey, "light"))

	m := NewModel(testCatalog(), store, Options{})
	assert.Equal(t, theme.Light, m.Theme())
	assert.Equal(t, theme.PaletteFor(theme.Light), m.styles.Palette)
}

func TestUpdate_SlideTicks(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	cmd := m.Init()
	require.NotNil(t, cmd, "autoplay schedules a tick")
	gen := m.timer.Restart()

	m = send(t, m, SlideTickMsg{Generation: gen})
	assert.Equal(t, 1, m.slider.Index())

	m = send(t, m, SlideTickMsg{Generation: gen})
	assert.Equal(t, 0, m.slider.Index(), "slides wrap")

	// Picking a slide restarts the timer; ticks from the old run are dropped.
	m = send(t, m, runes("2"))
	assert.Equal(t, 1, m.slider.Index())

	m = send(t, m, SlideTickMsg{Generation: gen})
	assert.Equal(t, 1, m.slider.Index())
}

func TestUpdate_SlideKeyOutOfRange(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, runes("9"))
	assert.Equal(t, 0, m.slider.Index())
}

func TestUpdate_MouseParallax(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.InDelta(t, -5.0, m.parallax.X, 0.001)
	assert.InDelta(t, -3.0, m.parallax.Y, 0.001)
	assert.InDelta(t, 1.06, m.parallax.Scale, 0.001)

	m = send(t, m, tea.MouseMsg{X: 0, Y: heroHeight + 2, Action: tea.MouseActionMotion})
	assert.Equal(t, 1.0, m.parallax.Scale, "leaving the hero resets the transform")
	assert.Zero(t, m.parallax.X)
}

func TestUpdate_MouseClickOpensCardAndOverlayCloses(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	top := m.gridTop()
	m = send(t, m, tea.MouseMsg{X: cardWidth + cardGap + 2, Y: top + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.frame.lightbox.Open)
	assert.Equal(t, "b", m.frame.lightbox.Item.ID)

	// Clicking the centre of the screen lands on the panel and keeps it open.
	m = send(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.frame.lightbox.Open)

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.frame.lightbox.Open)
}

func TestUpdate_HelpView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, runes("?"))
	assert.Equal(t, ViewHelp, m.viewMode)
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m = send(t, m, runes("j"))
	assert.Equal(t, ViewGallery, m.viewMode)
}

func TestUpdate_ErrorMessages(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, ErrorMsg{Err: assert.AnError})
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), assert.AnError.Error())

	_, cmd := m.Update(runes("x"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, ClearErrorMsg{}, msg)

	m = send(t, m, msg)
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
