package gallery

import (
	"github.com/alexisbeaulieu97/lumen/internal/catalog"
)

// CardState is the per-item render signal.
type CardState struct {
	Item    catalog.Item
	Visible bool
}

// LightboxView describes what the lightbox should display. Index is the
// navigator's index and may be stale after the visible set changes; Position
// is the 1-based place of Item in the current visible set, or 0 when Item is
// no longer visible.
type LightboxView struct {
	Open     bool
	Index    int
	Position int
	Total    int
	Item     catalog.Item
}

// Hidden mirrors the aria-hidden flag of the lightbox.
func (v LightboxView) Hidden() bool {
	return !v.Open
}

// DownloadTarget is the reference offered for download, empty when closed.
func (v LightboxView) DownloadTarget() string {
	if !v.Open {
		return ""
	}
	return v.Item.ImageRef
}

// Renderer receives render signals from a Session. Implementations draw cards
// and the lightbox; the session never touches presentation itself.
type Renderer interface {
	RenderCards(cards []CardState)
	RenderLightbox(view LightboxView)
}

type nopRenderer struct{}

func (nopRenderer) RenderCards([]CardState)     {}
func (nopRenderer) RenderLightbox(LightboxView) {}
