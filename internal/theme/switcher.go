package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/lumen/internal/logger"
)

// Store is the durable key/value storage the switcher persists to.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ApplyFunc receives the palette whenever a theme is applied.
type ApplyFunc func(Theme, Palette)

// Switcher applies and persists the theme. Storage is written before the
// palette is applied, so a failed write leaves the visible theme unchanged.
type Switcher struct {
	store   Store
	apply   ApplyFunc
	current Theme
	log     *logger.Logger
}

// NewSwitcher creates a switcher. apply may be nil.
func NewSwitcher(store Store, apply ApplyFunc, log *logger.Logger) *Switcher {
	if apply == nil {
		apply = func(Theme, Palette) {}
	}
	return &Switcher{store: store, apply: apply, current: Default, log: log}
}

// Stored returns the persisted theme, or the default when unset.
func (s *Switcher) Stored() Theme {
	value, ok := s.store.Get(StorageKey)
	if !ok {
		return Default
	}
	t, _ := Parse(value, false)
	return t
}

// Current returns the last applied theme.
func (s *Switcher) Current() Theme {
	return s.current
}

// Init applies the stored theme.
func (s *Switcher) Init() error {
	return s.Set(s.Stored())
}

// Set persists and applies t. Setting the same theme again is harmless.
func (s *Switcher) Set(t Theme) error {
	if err := s.store.Set(StorageKey, t.String()); err != nil {
		s.log.Error(err, "persist theme failed", "theme", t.String())
		return fmt.Errorf("persist theme: %w", err)
	}
	s.current = t
	s.apply(t, PaletteFor(t))
	s.log.Debug("theme applied", "theme", t.String())
	return nil
}

// Toggle flips the last persisted theme and returns the new one.
func (s *Switcher) Toggle() (Theme, error) {
	next := s.Stored().Opposite()
	if err := s.Set(next); err != nil {
		return s.current, err
	}
	return next, nil
}
