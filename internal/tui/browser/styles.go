package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

const (
	heroHeight   = 10
	cardWidth    = 26
	cardHeight   = 5
	cardGap      = 1
	footerHeight = 3
)

var (
	errorColor = lipgloss.Color("196") // Red
	onAccent   = lipgloss.Color("#061224")
)

// Styles is the set of lipgloss styles derived from the active palette.
type Styles struct {
	Palette theme.Palette

	App          lipgloss.Style
	Hero         lipgloss.Style
	HeroHeading  lipgloss.Style
	HeroSubtitle lipgloss.Style
	Dot          lipgloss.Style
	DotActive    lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	Search lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardHidden   lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style

	LightboxBox   lipgloss.Style
	LightboxTitle lipgloss.Style
	LightboxLabel lipgloss.Style
	LightboxValue lipgloss.Style
	LightboxNote  lipgloss.Style

	Footer      lipgloss.Style
	Status      lipgloss.Style
	ErrorBanner lipgloss.Style
	EmptyState  lipgloss.Style
	HelpBox     lipgloss.Style
	HelpTitle   lipgloss.Style
}

// NewStyles builds styles for palette p.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Foreground(p.Text),

		Hero: lipgloss.NewStyle().
			Height(heroHeight).
			MaxHeight(heroHeight).
			Background(p.Card).
			Foreground(p.Text),

		HeroHeading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		HeroSubtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Dot: lipgloss.NewStyle().
			Foreground(p.Muted),

		DotActive: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(onAccent).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),

		Search: lipgloss.NewStyle().
			Foreground(p.Text).
			MarginTop(1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Width(cardWidth - 2).
			Height(cardHeight - 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Foreground(p.Text),

		CardSelected: lipgloss.NewStyle().
			Width(cardWidth - 2).
			Height(cardHeight - 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Text),

		CardHidden: lipgloss.NewStyle().
			Width(cardWidth - 2).
			Height(cardHeight - 2).
			BorderStyle(lipgloss.HiddenBorder()).
			Foreground(p.Muted).
			Faint(true),

		CardTitle: lipgloss.NewStyle().
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(p.Muted),

		LightboxBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Background(p.Card).
			Padding(1, 3),

		LightboxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),

		LightboxLabel: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true).
			Width(10),

		LightboxValue: lipgloss.NewStyle().
			Foreground(p.Text),

		LightboxNote: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			MarginTop(1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Muted),

		Status: lipgloss.NewStyle().
			Foreground(p.Accent),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(errorColor),

		EmptyState: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(2).
			PaddingBottom(2),

		HelpBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 3),

		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),
	}
}
