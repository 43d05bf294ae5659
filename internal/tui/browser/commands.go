package browser

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// slideTickCmd schedules the next auto-advance for timer generation gen.
func slideTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SlideTickMsg{Generation: gen}
	})
}

// restartSlidesCmd restarts the auto-advance timer and schedules its first tick.
// It returns nil when autoplay is off or there is nothing to rotate.
func (m *Model) restartSlidesCmd() tea.Cmd {
	if !m.autoplay || m.slider.Count() < 2 {
		return nil
	}
	gen := m.timer.Restart()
	return slideTickCmd(gen, m.timer.Interval())
}

// errorCmd wraps err as an ErrorMsg.
func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

func clearErrorCmd() tea.Msg {
	return ClearErrorMsg{}
}
