package browser

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/gallery"
	"github.com/alexisbeaulieu97/lumen/internal/parallax"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

const (
	minWidth  = 40
	minHeight = 20
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}

		m.ensureCursorVisible()
		m.observeReveal()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	// Hero auto-advance
	case SlideTickMsg:
		if !m.timer.Accept(msg.Generation) {
			return m, nil
		}
		m.slider.Advance()
		return m, slideTickCmd(msg.Generation, m.timer.Interval())

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Err.Error()
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keyboard input based on current view mode and focus
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.viewMode == ViewHelp {
		return m.handleHelpKeys(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKeys(msg)
	}
	if m.frame.lightbox.Open {
		return m.handleLightboxKeys(msg)
	}
	return m.handleGridKeys(msg)
}

// handleGridKeys handles keys while browsing the card grid
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.DismissErr):
		return m, clearErrorCmd

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextCat):
		m.setCategory(m.categoryIdx + 1)
		m.observeReveal()
		return m, nil

	case key.Matches(msg, m.keys.PrevCat):
		m.setCategory(m.categoryIdx - 1)
		m.observeReveal()
		return m, nil

	case key.Matches(msg, m.keys.Slide):
		return m, m.showSlide(msg)

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if item, ok := m.GetSelectedItem(); ok {
			m.session.OpenItem(item.ID)
		}
		return m, nil
	}

	return m, nil
}

// handleLightboxKeys handles keys while the lightbox is open
func (m Model) handleLightboxKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.session.HandleKey(gallery.KeyLeft)
		m.syncCursorToLightbox()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.session.HandleKey(gallery.KeyRight)
		m.syncCursorToLightbox()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.session.HandleKey(gallery.KeyEscape)
		return m, nil

	case key.Matches(msg, m.keys.Download):
		target := m.frame.lightbox.DownloadTarget()
		if target == "" {
			return m, nil
		}
		m.log.Info("download requested", "item", m.frame.lightbox.Item.ID, "target", target)
		return m, statusCmd("download: " + target)

	// Filters stay live behind the overlay.
	case key.Matches(msg, m.keys.NextCat):
		m.setCategory(m.categoryIdx + 1)
		m.observeReveal()
		return m, nil

	case key.Matches(msg, m.keys.PrevCat):
		m.setCategory(m.categoryIdx - 1)
		m.observeReveal()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleSearchKeys feeds keystrokes to the search box and refilters on change
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		m.focus = focusGrid
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if after := m.search.Value(); after != before {
		m.session.SetQuery(after)
		m.clampCursor()
		m.observeReveal()
	}

	return m, cmd
}

// handleHelpKeys returns to the gallery on any key except quit
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.viewMode = ViewGallery
	return m, nil
}

// handleMouse drives parallax, overlay clicks, card clicks and wheel scrolling
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if msg.Y < heroHeight && !m.frame.lightbox.Open && m.viewMode == ViewGallery {
			m.parallax = parallax.Offset(float64(msg.X), float64(msg.Y), parallax.Rect{
				Width:  float64(m.width),
				Height: heroHeight,
			})
		} else {
			m.parallax = parallax.Rest()
		}
		return m, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handleClick(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			m.scroll(1)
		case tea.MouseButtonWheelUp:
			m.scroll(-1)
		}
	}

	return m, nil
}

// handleClick resolves a left click at screen cell (x, y)
func (m Model) handleClick(x, y int) (tea.Model, tea.Cmd) {
	if m.viewMode != ViewGallery {
		return m, nil
	}

	if m.frame.lightbox.Open {
		box := m.renderLightboxBox()
		bw, bh := lipgloss.Width(box), lipgloss.Height(box)
		left := centreOffset(m.width, bw)
		top := centreOffset(m.height, bh)
		if x < left || x >= left+bw || y < top || y >= top+bh {
			m.session.Close()
		}
		return m, nil
	}

	tabsTop := heroHeight
	if m.showError {
		tabsTop += lipgloss.Height(m.renderErrorBanner())
	}
	if y == tabsTop {
		if idx, ok := m.tabAt(x); ok {
			m.setCategory(idx)
			m.observeReveal()
		}
		return m, nil
	}

	row := y - m.gridTop()
	if row < 0 || x%(cardWidth+cardGap) >= cardWidth {
		return m, nil
	}
	col := x / (cardWidth + cardGap)
	if col >= m.columns() {
		return m, nil
	}
	idx := (row/cardHeight+m.scrollOffset)*m.columns() + col
	if m.session.OpenAt(idx) {
		m.cursor = idx
	}
	return m, nil
}

// tabAt maps a column on the tab row to a category index
func (m *Model) tabAt(x int) (int, bool) {
	pos := 0
	for i := range m.categories {
		w := lipgloss.Width(m.renderTab(i))
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w
	}
	return 0, false
}

// moveCursor shifts the grid cursor by delta, clamped to the visible set
func (m *Model) moveCursor(delta int) {
	n := m.session.Visible().Len()
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
	m.observeReveal()
}

// scroll moves the grid viewport by delta rows
func (m *Model) scroll(delta int) {
	cols := m.columns()
	totalRows := (m.session.Visible().Len() + cols - 1) / cols
	maxOffset := totalRows - m.gridRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.scrollOffset += delta
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	m.observeReveal()
}

// showSlide jumps the hero to the slide named by a digit key and restarts autoplay
func (m *Model) showSlide(msg tea.KeyMsg) tea.Cmd {
	if len(msg.Runes) != 1 {
		return nil
	}
	if !m.slider.Show(int(msg.Runes[0] - '1')) {
		return nil
	}
	return m.restartSlidesCmd()
}

// syncCursorToLightbox keeps the grid cursor on the item shown in the lightbox
func (m *Model) syncCursorToLightbox() {
	if idx, ok := m.session.Visible().IndexOf(m.frame.lightbox.Item.ID); ok {
		m.cursor = idx
		m.ensureCursorVisible()
	}
}

// toggleTheme flips and persists the theme
func (m *Model) toggleTheme() tea.Cmd {
	t, err := m.switcher.Toggle()
	if err != nil {
		return errorCmd(err)
	}
	m.status = fmt.Sprintf("%s %s theme", theme.PaletteFor(t).Glyph, t)
	return nil
}

func centreOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * 0.5))
}
