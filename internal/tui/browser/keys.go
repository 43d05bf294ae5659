package browser

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the browser key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Open       key.Binding
	Close      key.Binding
	NextCat    key.Binding
	PrevCat    key.Binding
	Search     key.Binding
	Slide      key.Binding
	Download   key.Binding
	Theme      key.Binding
	Help       key.Binding
	DismissErr key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left / previous")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right / next")),
		Open:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Close:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),
		NextCat:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCat:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous category")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Slide:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "show slide")),
		Download:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download target")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		DismissErr: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Open, k.NextCat, k.Search, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Close, k.Download},
		{k.NextCat, k.PrevCat, k.Search, k.Slide},
		{k.Theme, k.Help, k.DismissErr, k.Quit},
	}
}
