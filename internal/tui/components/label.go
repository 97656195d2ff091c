package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// LabelVariant colors a label.
type LabelVariant string

const (
	LabelDefault LabelVariant = "default"
	LabelError   LabelVariant = "error"
)

var labelErrorStyle = theme.LabelStyle.Foreground(theme.Red)

// Label is the caption of a form control.
type Label struct {
	Text     string
	Variant  LabelVariant
	Required bool
	Disabled bool
}

// View renders the label
func (l Label) View() string {
	if l.Text == "" {
		return ""
	}
	var style lipgloss.Style
	switch {
	case l.Disabled:
		style = disabledStyle
	case l.Variant == LabelError:
		style = labelErrorStyle
	default:
		style = theme.LabelStyle
	}
	out := style.Render(l.Text)
	if l.Required {
		out += theme.RequiredStyle.Render(" *")
	}
	return out
}
