package gallery

import (
	"github.com/alexisbeaulieu97/lumen/internal/catalog"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
)

// KeyCommand is a lightbox keyboard shortcut.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// Session is the controller owning filter state, the visible-set cache and the
// lightbox navigator. It is not safe for concurrent use; a single event loop
// drives it.
type Session struct {
	catalog   *catalog.Catalog
	filter    FilterState
	visible   VisibleSet
	navigator Navigator

	renderer Renderer
	log      *logger.Logger
	follow   bool
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer routes render signals to r.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithFollow makes an open lightbox track its item by identity whenever the
// visible set changes, closing when the item disappears.
func WithFollow(follow bool) Option {
	return func(s *Session) {
		s.follow = follow
	}
}

// NewSession creates a session over c with the initial filter (all, "") and
// renders the initial state.
func NewSession(c *catalog.Catalog, opts ...Option) *Session {
	if c == nil {
		c = catalog.New("", nil, nil, nil)
	}

	s := &Session{
		catalog:  c,
		filter:   NewFilterState(),
		renderer: nopRenderer{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.visible = Recompute(s.catalog, s.filter)
	s.renderCards()
	s.renderLightbox()

	return s
}

// Catalog returns the session catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Filter returns a copy of the current filter state.
func (s *Session) Filter() FilterState {
	return s.filter
}

// Visible returns the current visible set.
func (s *Session) Visible() VisibleSet {
	return s.visible
}

// Lightbox returns the current lightbox view.
func (s *Session) Lightbox() LightboxView {
	view := LightboxView{Total: s.visible.Len()}
	if item, ok := s.navigator.Shown(); ok {
		index, _ := s.navigator.Index()
		view.Open = true
		view.Index = index
		view.Item = item
		if pos, ok := s.visible.IndexOf(item.ID); ok {
			view.Position = pos + 1
		}
	}
	return view
}

// Cards returns the render signal for every catalog item.
func (s *Session) Cards() []CardState {
	cards := make([]CardState, s.catalog.Len())
	for i := range cards {
		item := s.catalog.At(i)
		cards[i] = CardState{Item: item, Visible: s.visible.Contains(item.ID)}
	}
	return cards
}

// SetCategory changes the category selector and recomputes the visible set.
func (s *Session) SetCategory(cat catalog.Category) {
	if !s.catalog.KnownCategory(cat) {
		s.log.Warn("unknown category selected; nothing will match", "category", cat.String())
	}
	s.filter.SetCategory(cat)
	s.refresh()
}

// SetQuery changes the search query and recomputes the visible set.
func (s *Session) SetQuery(q string) {
	s.filter.SetQuery(q)
	s.refresh()
}

// OpenItem opens the lightbox on the item with the given id if it is visible.
func (s *Session) OpenItem(id string) bool {
	if !s.navigator.Open(id, s.visible) {
		s.log.Debug("open ignored; item not visible", "item", id)
		return false
	}
	s.renderLightbox()
	return true
}

// OpenAt opens the lightbox on visible position i.
func (s *Session) OpenAt(i int) bool {
	if !s.navigator.OpenAt(i, s.visible) {
		return false
	}
	s.renderLightbox()
	return true
}

// Next moves the lightbox forward.
func (s *Session) Next() bool {
	if !s.navigator.Next(s.visible) {
		return false
	}
	s.renderLightbox()
	return true
}

// Previous moves the lightbox backward.
func (s *Session) Previous() bool {
	if !s.navigator.Previous(s.visible) {
		return false
	}
	s.renderLightbox()
	return true
}

// Close closes the lightbox. Overlay clicks and the close control both land here.
func (s *Session) Close() bool {
	if !s.navigator.Close() {
		return false
	}
	s.renderLightbox()
	return true
}

// HandleKey maps left, right and escape onto Previous, Next and Close.
func (s *Session) HandleKey(k KeyCommand) bool {
	switch k {
	case KeyLeft:
		return s.Previous()
	case KeyRight:
		return s.Next()
	case KeyEscape:
		return s.Close()
	default:
		return false
	}
}

func (s *Session) refresh() {
	s.visible = Recompute(s.catalog, s.filter)
	s.log.Debug("visible set recomputed",
		"category", s.filter.ActiveCategory.String(),
		"query", s.filter.Query,
		"visible", s.visible.Len(),
	)
	s.renderCards()

	followed := s.follow && s.navigator.Follow(s.visible)
	if followed || s.navigator.IsOpen() {
		s.renderLightbox()
	}
}

func (s *Session) renderCards() {
	s.renderer.RenderCards(s.Cards())
}

func (s *Session) renderLightbox() {
	s.renderer.RenderLightbox(s.Lightbox())
}
