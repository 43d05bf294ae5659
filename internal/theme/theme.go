package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StorageKey is the preference key holding the theme.
const StorageKey = "theme"

// Theme is the colour scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when nothing is stored.
const Default = Dark

// Parse maps a stored or user-supplied value onto a Theme. Anything other than
// "light" reads as dark, except in strict mode where unknown values are errors.
func Parse(value string, strict bool) (Theme, error) {
	switch Theme(value) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	if strict {
		return "", fmt.Errorf("unknown theme %q: must be dark or light", value)
	}
	return Default, nil
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// Palette is the fixed set of colours applied for a theme.
type Palette struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Glyph      string
}

var palettes = map[Theme]Palette{
	Dark: {
		Background: lipgloss.Color("#0f1724"),
		Card:       lipgloss.Color("#1b2430"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#aab3c2"),
		Accent:     lipgloss.Color("#00ff99"),
		Glyph:      "🌙",
	},
	Light: {
		Background: lipgloss.Color("#f6f7fb"),
		Card:       lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#061224"),
		Muted:      lipgloss.Color("#556677"),
		Accent:     lipgloss.Color("#00a86b"),
		Glyph:      "☀️",
	},
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Default]
}
