package tui

import (
	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// optionsChangedMsg carries the reloaded options file.
type optionsChangedMsg struct {
	source components.OptionSource
	err    error
}

// dialogOpenMsg opens the dialog once the click that asked for it has been
// dispatched.
type dialogOpenMsg struct{}

// submitDoneMsg ends the simulated form submission.
type submitDoneMsg struct{}

type errMsg struct {
	err error
}

// waitForOptionsChange waits for the next edit of the options file and
// reloads it. The watcher is captured before the closure is built since the
// model may drop it on quit.
func (m *Model) waitForOptionsChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	capturedWatcher := m.watcher

	return func() tea.Msg {
		select {
		case event := <-capturedWatcher.Changes():
			src, err := components.LoadOptionsFile(event.Path)
			return optionsChangedMsg{source: src, err: err}
		case <-capturedWatcher.Done():
			return nil
		}
	}
}
