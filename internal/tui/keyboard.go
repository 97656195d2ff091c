package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
)

// keyMap holds the gallery's own bindings. Everything else goes to the
// focused widget.
type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap(tr *locale.Translator) keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", tr.T(locale.GalleryKeyNextFocus))),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", tr.T(locale.GalleryKeyPrevFocus))),
		NextPage:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", tr.T(locale.GalleryKeyNextPage))),
		PrevPage:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", tr.T(locale.GalleryKeyPrevPage))),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", tr.T(locale.GalleryKeyHelp))),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", tr.T(locale.GalleryKeyQuit))),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus},
		{k.NextPage, k.PrevPage},
		{k.Help, k.Quit},
	}
}

// Keyboard Handlers
//
// handleKeyPress handles the gallery bindings, then hands the key to the
// current page. While the dialog is open only the document sees keys.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case m.modalOpen():
		return m, m.flush(m.doc.Dispatch(msg))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		return m, m.flush(m.switchTo(m.page + 1))
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.flush(m.switchTo(m.page - 1))
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.flush(m.moveFocus(1))
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.flush(m.moveFocus(-1))
	}
	return m, m.flush(m.routeToPage(msg))
}

// handleQuit stops the watcher and logs the render timings
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.renders.LogStats(slog.LevelInfo)
	return m, tea.Quit
}

// switchTo shows page i (wrapping around), blurring the focused widget.
func (m *Model) switchTo(i int) tea.Cmd {
	n := len(m.pages)
	i = ((i % n) + n) % n
	if i == m.page {
		return nil
	}
	cmd := m.blurFocused()
	m.page = i
	m.focus = -1
	m.status = ""
	m.w.nav.SetValue(string(m.pages[i].id))
	m.log.Debug("page", "to", string(m.pages[i].id))
	return cmd
}

func (m *Model) blurFocused() tea.Cmd {
	entries := m.pages[m.page].entries
	if m.focus < 0 || m.focus >= len(entries) {
		return nil
	}
	return entries[m.focus].blur()
}

// moveFocus cycles through the focusable widgets of the page.
func (m *Model) moveFocus(delta int) tea.Cmd {
	entries := m.pages[m.page].entries
	n := len(entries)
	start := m.focus
	if start < 0 && delta < 0 {
		start = n
	}
	for step := 1; step <= n; step++ {
		i := ((start+delta*step)%n + n) % n
		if !entries[i].focusable() {
			continue
		}
		blur := m.blurFocused()
		m.focus = i
		return tea.Batch(blur, entries[i].focus())
	}
	return nil
}
