package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
	"github.com/alexisbeaulieu97/lumen/internal/gallery"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/parallax"
	"github.com/alexisbeaulieu97/lumen/internal/reveal"
	"github.com/alexisbeaulieu97/lumen/internal/slider"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

// Options configures a browser Model.
type Options struct {
	Follow          bool
	SlideInterval   time.Duration
	Autoplay        bool
	RevealThreshold float64
	Logger          *logger.Logger
}

// frame is the gallery.Renderer the session draws into. It lives behind a
// pointer so copies of Model made by bubbletea share the latest signals.
type frame struct {
	cards    []gallery.CardState
	lightbox gallery.LightboxView
}

func (f *frame) RenderCards(cards []gallery.CardState) {
	f.cards = cards
}

func (f *frame) RenderLightbox(view gallery.LightboxView) {
	f.lightbox = view
}

// Model is the gallery browser model
type Model struct {
	// Core data
	session  *gallery.Session
	frame    *frame
	switcher *theme.Switcher
	log      *logger.Logger

	// Filter state
	categories  []catalog.Category
	categoryIdx int
	search      textinput.Model
	focus       focusArea

	// Grid state
	viewMode     ViewMode
	cursor       int
	scrollOffset int
	reveal       *reveal.Tracker

	// Hero state
	slider   *slider.Slider
	timer    *slider.Timer
	autoplay bool
	parallax parallax.Transform

	// Chrome
	styles    *Styles
	keys      KeyMap
	help      help.Model
	status    string
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

// NewModel creates a browser over c. Theme preferences are read from and
// written to store.
func NewModel(c *catalog.Catalog, store theme.Store, opts Options) Model {
	if opts.SlideInterval <= 0 {
		opts.SlideInterval = slider.DefaultInterval
	}
	if opts.RevealThreshold <= 0 {
		opts.RevealThreshold = reveal.DefaultThreshold
	}

	fr := &frame{}
	session := gallery.NewSession(c,
		gallery.WithRenderer(fr),
		gallery.WithLogger(opts.Logger.With("component", "gallery")),
		gallery.WithFollow(opts.Follow),
	)

	styles := NewStyles(theme.PaletteFor(theme.Default))
	switcher := theme.NewSwitcher(store, func(_ theme.Theme, p theme.Palette) {
		styles = NewStyles(p)
	}, opts.Logger)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles"
	search.CharLimit = 64

	m := Model{
		session:    session,
		frame:      fr,
		switcher:   switcher,
		log:        opts.Logger,
		categories: append([]catalog.Category{catalog.All}, session.Catalog().Categories()...),
		search:     search,
		focus:      focusGrid,
		viewMode:   ViewGallery,
		reveal:     reveal.NewTracker(opts.RevealThreshold),
		slider:     slider.New(len(session.Catalog().Slides())),
		timer:      slider.NewTimer(opts.SlideInterval),
		autoplay:   opts.Autoplay,
		parallax:   parallax.Rest(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.styles = &styles

	if err := switcher.Init(); err != nil {
		m.showError = true
		m.errorMsg = "Theme not saved: " + err.Error()
	}
	m.observeReveal()

	return m
}

// Init starts the hero auto-advance
func (m Model) Init() tea.Cmd {
	return m.restartSlidesCmd()
}

// Helper Methods

// Session exposes the underlying gallery session.
func (m *Model) Session() *gallery.Session {
	return m.session
}

// Theme returns the applied theme.
func (m *Model) Theme() theme.Theme {
	return m.switcher.Current()
}

// VisibleCards returns the cards the session currently marks visible, in
// catalog order.
func (m *Model) VisibleCards() []gallery.CardState {
	out := make([]gallery.CardState, 0, len(m.frame.cards))
	for _, c := range m.frame.cards {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// GetSelectedItem returns the item under the grid cursor
func (m *Model) GetSelectedItem() (catalog.Item, bool) {
	return m.session.Visible().At(m.cursor)
}

// ActiveCategory returns the selected category tab.
func (m *Model) ActiveCategory() catalog.Category {
	return m.categories[m.categoryIdx]
}

// columns returns how many cards fit on one grid row.
func (m *Model) columns() int {
	cols := (m.width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// gridTop is the screen row where the card grid starts.
func (m *Model) gridTop() int {
	top := heroHeight + lipgloss.Height(m.renderTabs()) + lipgloss.Height(m.renderSearch())
	if m.showError {
		top += lipgloss.Height(m.renderErrorBanner())
	}
	return top
}

// gridRows is how many card rows fit on screen.
func (m *Model) gridRows() int {
	rows := (m.height - m.gridTop() - footerHeight) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// clampCursor keeps the cursor inside the visible set after it changes.
func (m *Model) clampCursor() {
	n := m.session.Visible().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls so the cursor row is on screen
func (m *Model) ensureCursorVisible() {
	row := m.cursor / m.columns()
	rows := m.gridRows()
	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+rows {
		m.scrollOffset = row - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// observeReveal reports every visible card's position to the reveal tracker.
func (m *Model) observeReveal() {
	cols := m.columns()
	viewport := reveal.Span{
		Top:    m.scrollOffset * cardHeight,
		Height: m.gridRows() * cardHeight,
	}
	for i, card := range m.VisibleCards() {
		span := reveal.Span{Top: (i / cols) * cardHeight, Height: cardHeight}
		if m.reveal.Observe(card.Item.ID, span, viewport) {
			m.log.Debug("card revealed", "item", card.Item.ID)
		}
	}
}

// setCategory selects tab idx and refilters.
func (m *Model) setCategory(idx int) {
	n := len(m.categories)
	m.categoryIdx = ((idx % n) + n) % n
	m.session.SetCategory(m.ActiveCategory())
	m.clampCursor()
}
