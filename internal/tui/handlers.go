package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight
	m.doc.SetViewport(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

func (m *Model) relayout() {
	m.layout = CalculateLayout(m.width, m.height, m.showHelp)
	m.w.stepper.Width = m.layout.BodyWidth
	m.w.displayTabs.SetWidth(m.layout.BodyWidth)
	for _, a := range m.w.alerts {
		a.SetWidth(m.layout.BodyWidth)
	}
}

// handleMouse routes clicks to the page. While the dialog is open only the
// document sees them, so the page behind is inert.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen() {
		return m, m.flush(m.doc.Dispatch(msg))
	}

	if msg.Action == tea.MouseActionMotion {
		m.status = m.titleAt(msg.X, msg.Y)
		return m, nil
	}

	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		_, cmd := m.w.nav.Update(msg)
		cmds = append(cmds, cmd)
		cmds = append(cmds, m.focusAt(msg.X, msg.Y))
	}
	cmds = append(cmds, m.routeToPage(msg))
	return m, m.flush(cmds...)
}

// focusAt moves the focus to the widget under (x, y). The previous widget is
// always blurred. Widgets that focus themselves on click are not focused
// again here.
func (m *Model) focusAt(x, y int) tea.Cmd {
	entries := m.pages[m.page].entries
	hit := -1
	for i, e := range entries {
		if e.place != nil && e.focusable() && e.place.Bounds().Contains(x, y) {
			hit = i
			break
		}
	}
	if hit == m.focus {
		return nil
	}

	var cmds []tea.Cmd
	if m.focus >= 0 && m.focus < len(entries) {
		cmds = append(cmds, entries[m.focus].blur())
	}
	m.focus = hit
	if hit >= 0 && !entries[hit].selfFocus {
		cmds = append(cmds, entries[hit].focus())
	}
	return tea.Batch(cmds...)
}

// titleAt returns the accessible title of whatever is under the pointer.
func (m *Model) titleAt(x, y int) string {
	if t := m.w.nav.TitleAt(x, y); t != "" {
		return t
	}
	for _, e := range m.pages[m.page].entries {
		if e.place == nil {
			continue
		}
		if t := e.place.TitleAt(x, y); t != "" {
			return t
		}
	}
	return ""
}

// routeToPage hands msg to every widget of the current page, then to the
// document listeners.
func (m *Model) routeToPage(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.pages[m.page].entries {
		cmds = append(cmds, e.update(msg))
	}
	cmds = append(cmds, m.doc.Dispatch(msg))
	return tea.Batch(cmds...)
}

// broadcast hands timer-like messages (cursor blink, spinner ticks, blur
// grace checks) to every widget: they carry their own target ids.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.pages {
		for _, e := range p.entries {
			cmds = append(cmds, e.update(msg))
		}
	}
	return m.flush(cmds...)
}

// handleOptionsChanged swaps the option list of every option widget and
// waits for the next change.
func (m *Model) handleOptionsChanged(msg optionsChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastError = msg.err
		m.log.Warn("options reload failed", "error", msg.err)
		return m, m.waitForOptionsChange()
	}
	m.options = msg.source
	m.lastError = nil
	m.w.selectBox.SetOptions(components.NormalizeOptions(msg.source))
	m.w.autocomplete.SetOptions(msg.source)
	m.w.fuzzy.SetOptions(msg.source)
	m.status = m.tr.Tf(locale.GalleryOptionsReloaded, map[string]any{"Count": len(components.NormalizeOptions(msg.source))})
	m.log.Info("options reloaded", "count", len(components.NormalizeOptions(msg.source)))
	return m, m.waitForOptionsChange()
}

func (m *Model) handleDialogOpen() (tea.Model, tea.Cmd) {
	m.w.dialog.SetOpen(true)
	return m, nil
}

func (m *Model) closeDialog() {
	m.w.dialog.SetOpen(false)
}

func (m *Model) handleSubmitDone() (tea.Model, tea.Cmd) {
	m.values.submitted = true
	return m, m.w.submit.SetLoading(false)
}

// handleError shows an error in the status bar
func (m *Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	m.lastError = msg.err
	return m, nil
}

func (m *Model) setDate(d *dates.Date) {
	m.values.date = d
	m.w.calendar.SetDateValue(d)
	m.w.datePicker.SetDateValue(d)
}

func (m *Model) setPlan(plan string) {
	m.values.plan = plan
	m.w.planMonthly.SetChecked(plan == "monthly")
	m.w.planYearly.SetChecked(plan == "yearly")
}

// submitDelay stands in for a server round trip.
const submitDelay = 800 * time.Millisecond

// submitForm validates the form; a valid one shows the loading button for a
// moment before reporting success.
func (m *Model) submitForm() tea.Cmd {
	v := &m.values
	v.submitted = false
	v.formError = ""

	emailErr := ""
	if !strings.Contains(v.email, "@") {
		emailErr = m.tr.T(locale.GalleryEmailInvalid)
	}
	m.w.email.SetError(emailErr)

	passwordErr := ""
	if len([]rune(v.password)) < 8 {
		passwordErr = m.tr.T(locale.GalleryPasswordShort)
	}
	m.w.password.SetError(passwordErr)

	switch {
	case emailErr != "" || passwordErr != "":
		v.formError = m.tr.T(locale.GalleryFixFields)
	case !v.terms:
		v.formError = m.tr.T(locale.GalleryAcceptTerms)
	case v.plan == "":
		v.formError = m.tr.T(locale.GalleryChoosePlan)
	}
	if v.formError != "" {
		m.log.Debug("form rejected", "reason", v.formError)
		return nil
	}

	return tea.Batch(
		m.w.submit.SetLoading(true),
		tea.Tick(submitDelay, func(time.Time) tea.Msg { return submitDoneMsg{} }),
	)
}

func (m *Model) formResult() string {
	switch {
	case m.values.formError != "":
		return components.NewAlert(components.AlertProps{
			Severity: theme.SeverityError, Description: m.values.formError, Lang: m.settings.Locale,
		}).View()
	case m.values.submitted:
		return components.NewAlert(components.AlertProps{
			Severity: theme.SeveritySuccess, Description: m.tr.T(locale.GalleryFormSent), Lang: m.settings.Locale,
		}).View()
	}
	return ""
}
