package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/lumen/internal/gallery"
)

// View renders the current view
func (m Model) View() string {
	switch {
	case m.viewMode == ViewHelp:
		return m.renderHelpView()
	case m.frame.lightbox.Open:
		return m.renderLightboxView()
	default:
		return m.renderGalleryView()
	}
}

// renderGalleryView renders the hero, filters, card grid and footer
func (m Model) renderGalleryView() string {
	sections := []string{m.renderHero()}

	if m.showError {
		sections = append(sections, m.renderErrorBanner())
	}

	sections = append(sections,
		m.renderTabs(),
		m.renderSearch(),
		m.renderGrid(),
		m.renderFooter(),
	)

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHero renders the active slide, offset by the current parallax transform
func (m Model) renderHero() string {
	s := m.styles
	header := fmt.Sprintf(" %s  %s", s.Palette.Glyph, m.session.Catalog().Name())

	slides := m.session.Catalog().Slides()
	if len(slides) == 0 {
		return s.Hero.Width(m.width).Render(header)
	}

	slide := slides[m.slider.Index()]
	heading := s.HeroHeading
	if m.parallax.Scale > 1 {
		heading = heading.Underline(true)
	}

	dots := make([]string, len(slides))
	for i := range slides {
		if i == m.slider.Index() {
			dots[i] = s.DotActive.Render("●")
		} else {
			dots[i] = s.Dot.Render("○")
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		heading.Render(slide.Heading),
		s.HeroSubtitle.Render(slide.Subtitle),
		"",
		strings.Join(dots, " "),
	)

	dx, dy := m.parallax.Cells()
	shifted := lipgloss.NewStyle().
		PaddingLeft(max(0, 6+dx)).
		PaddingTop(max(0, 3+dy)).
		MaxHeight(heroHeight - 1).
		Render(body)

	return s.Hero.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, header, shifted))
}

// renderTab renders category tab i
func (m Model) renderTab(i int) string {
	label := m.categories[i].String()
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	if i == m.categoryIdx {
		return m.styles.TabActive.Render(label)
	}
	return m.styles.Tab.Render(label)
}

// renderTabs renders the category selector row
func (m Model) renderTabs() string {
	tabs := make([]string, len(m.categories))
	for i := range m.categories {
		tabs[i] = m.renderTab(i)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSearch renders the search box with a match count
func (m Model) renderSearch() string {
	count := m.styles.CardMeta.Render(fmt.Sprintf("  %d of %d", m.session.Visible().Len(), m.session.Catalog().Len()))
	return m.styles.Search.Render(m.search.View() + count)
}

// renderGrid renders the rows of visible cards that fit on screen
func (m Model) renderGrid() string {
	cards := m.VisibleCards()
	if len(cards) == 0 {
		return m.renderEmptyState()
	}

	cols := m.columns()
	first := m.scrollOffset * cols
	last := min(len(cards), first+m.gridRows()*cols)

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, m.renderCard(cards[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders a single card. Cards that have not scrolled into view yet
// render as placeholders.
func (m Model) renderCard(card gallery.CardState, selected bool) string {
	s := m.styles
	if !m.reveal.Revealed(card.Item.ID) {
		return s.CardHidden.Render("· · ·")
	}

	inner := cardWidth - 4
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.CardTitle.Render(truncate(card.Item.Title, inner)),
		s.CardMeta.Render(truncate(card.Item.Category.String(), inner)),
		s.CardMeta.Render(truncate(card.Item.ImageRef, inner)),
	)

	if selected {
		return s.CardSelected.Render(content)
	}
	return s.Card.Render(content)
}

// renderEmptyState renders the message shown when nothing matches
func (m Model) renderEmptyState() string {
	msg := "No items match this filter.\n\nPress tab to change category or / to edit the search."
	return m.styles.EmptyState.Width(m.width).Render(msg)
}

// renderFooter renders the status line and key hints
func (m Model) renderFooter() string {
	status := m.status
	if status == "" {
		status = fmt.Sprintf("%s theme", m.switcher.Current())
	}
	return m.styles.Footer.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Status.Render(status),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	))
}

// renderErrorBanner renders the error banner
func (m Model) renderErrorBanner() string {
	return m.styles.ErrorBanner.Render("⚠ " + m.errorMsg + "  (x to dismiss)")
}

// renderLightboxView renders the lightbox centred over the screen
func (m Model) renderLightboxView() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderLightboxBox())
}

// renderLightboxBox renders the lightbox panel itself
func (m Model) renderLightboxBox() string {
	s := m.styles
	view := m.frame.lightbox
	item := view.Item

	field := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.LightboxLabel.Render(label), s.LightboxValue.Render(value))
	}

	lines := []string{
		s.LightboxTitle.Render(item.Title),
		field("Category", item.Category.String()),
	}
	if item.Caption != "" {
		lines = append(lines, field("Caption", item.Caption))
	}
	lines = append(lines, field("Image", item.ImageRef))

	if view.Position > 0 {
		lines = append(lines, field("Position", fmt.Sprintf("%d / %d", view.Position, view.Total)))
	} else {
		lines = append(lines, s.LightboxNote.Render("No longer in the current results."))
	}

	if m.status != "" {
		lines = append(lines, s.Status.Render(m.status))
	}
	lines = append(lines, s.LightboxNote.Render("← previous · → next · d download · esc close"))

	return s.LightboxBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderHelpView renders the full key reference
func (m Model) renderHelpView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.HelpTitle.Render("Keyboard shortcuts"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		m.styles.CardMeta.Render("Press any key to return."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.HelpBox.Render(body))
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
