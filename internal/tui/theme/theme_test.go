package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, Green, SeverityColor(SeveritySuccess))
	assert.Equal(t, Red, SeverityColor(SeverityError))
	assert.Equal(t, LightYellow, SeverityColor(SeverityWarning))
	assert.Equal(t, Blue, SeverityColor(SeverityInfo))
	assert.Equal(t, Blue, SeverityColor("unknown"))
}

func TestFieldHelpers(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "", FieldLabel("", true))
	assert.Equal(t, "Ville *", ansi.Strip(FieldLabel("Ville", true)))
	assert.Equal(t, "Ville", ansi.Strip(FieldLabel("Ville", false)))

	assert.Equal(t, "bad", ansi.Strip(Feedback("bad", "help")))
	assert.Equal(t, "help", ansi.Strip(Feedback("", "help")))
	assert.Equal(t, "", Feedback("", ""))
}

func TestApplyColorMode(t *testing.T) {
	defer lipgloss.SetColorProfile(termenv.Ascii)

	ApplyColorMode("always")
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	ApplyColorMode("never")
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	ApplyColorMode("auto")
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestSeverityBackground(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#FFDFDC"), SeverityBackground(SeverityError))
	assert.Equal(t, SeverityBackground(SeverityInfo), SeverityBackground(""))
	assert.NotEqual(t, SeverityBackground(SeveritySuccess), SeverityBackground(SeverityWarning))
}
