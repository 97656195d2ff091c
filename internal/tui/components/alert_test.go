package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

func TestAlertRendersSeverity(t *testing.T) {
	a := NewAlert(AlertProps{Severity: theme.SeverityError, Title: "Échec", Description: "Le paiement a été refusé."})
	view := a.View()
	assert.Equal(t, alertCompactWidth, lipgloss.Width(view))
	out := plain(view)
	assert.Contains(t, out, "✗ Échec")
	assert.Contains(t, out, "Le paiement a été refusé.")
}

func TestAlertDefaultsToInfo(t *testing.T) {
	a := NewAlert(AlertProps{Description: "Note"})
	assert.Contains(t, plain(a.View()), "i Note")
}

func TestAlertClosable(t *testing.T) {
	closes := 0
	a := NewAlert(AlertProps{Description: "Enregistré", Severity: theme.SeveritySuccess, Closable: true, OnClose: func() { closes++ }})
	a.SetOrigin(0, 0)
	a.View()

	x := alertCompactWidth - 2
	assert.Equal(t, "Fermer", a.TitleAt(x, 0))
	a.Update(press(x, 0))
	a.Update(press(0, 0))
	assert.Equal(t, 1, closes)

	a.Focus()
	a.Update(keyMsg("esc"))
	assert.Equal(t, 2, closes)

	plainAlert := NewAlert(AlertProps{Description: "x", OnClose: func() { closes++ }})
	plainAlert.Close()
	assert.Equal(t, 2, closes, "not closable")
}

func TestAlertMarkdown(t *testing.T) {
	a := NewAlert(AlertProps{Severity: theme.SeverityWarning, Markdown: true, Description: "Pensez à **vérifier** vos pièces.\n\n- RIB\n- Justificatif"})
	out := plain(a.View())
	assert.Contains(t, out, "vérifier")
	assert.Contains(t, out, "RIB")
	assert.Contains(t, out, "Justificatif")
	assert.Equal(t, alertCompactWidth, lipgloss.Width(a.View()))
}

func TestAlertFullWidth(t *testing.T) {
	a := NewAlert(AlertProps{Description: "Large", FullWidth: true})
	a.SetWidth(70)
	assert.Equal(t, 70, lipgloss.Width(a.View()))
}

func TestTidyMarkdown(t *testing.T) {
	assert.Equal(t, "un\n\ndeux", tidyMarkdown("\n  un   \n\n  deux  \n\n"))
}
