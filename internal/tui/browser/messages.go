package browser

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewGallery ViewMode = iota
	ViewHelp
)

// focusArea is where plain keystrokes go while in ViewGallery.
type focusArea int

const (
	focusGrid focusArea = iota
	focusSearch
)

// SlideTickMsg fires when the hero auto-advance interval elapses. Ticks from a
// superseded timer generation are ignored.
type SlideTickMsg struct {
	Generation int
}

// ErrorMsg surfaces a failure in the error banner
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg dismisses the error banner
type ClearErrorMsg struct{}

// StatusMsg replaces the footer status line
type StatusMsg struct {
	Text string
}
