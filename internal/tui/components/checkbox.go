package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// ControlSize pads a checkbox or radio glyph the way a larger hit area would.
type ControlSize string

const (
	ControlSm ControlSize = "sm"
	ControlMd ControlSize = "md"
	ControlLg ControlSize = "lg"
)

func (s ControlSize) padding() string {
	switch s {
	case ControlSm:
		return ""
	case ControlLg:
		return "  "
	default:
		return " "
	}
}

const controlID = "control"

var (
	controlCheckedStyle = lipgloss.NewStyle().Foreground(theme.Orange).Bold(true)
	controlEmptyStyle   = lipgloss.NewStyle().Foreground(theme.Neutral50)
	controlFocusStyle   = lipgloss.NewStyle().Background(theme.OrangeLight)
)

// renderControl draws glyph padded for size, highlighted when focused and
// followed by the label.
func renderControl(glyph string, checked, focused, disabled bool, size ControlSize, label string) string {
	style := controlEmptyStyle
	switch {
	case disabled:
		style = disabledStyle
	case checked:
		style = controlCheckedStyle
	}
	pad := size.padding()
	out := pad + style.Render(glyph) + pad
	if focused && !disabled {
		out = controlFocusStyle.Render(out)
	}
	if label != "" {
		text := label
		if disabled {
			text = disabledStyle.Render(label)
		}
		out += " " + text
	}
	return out
}

// CheckboxProps configure a Checkbox. Checked is owned by the caller.
type CheckboxProps struct {
	Label           string
	Checked         bool
	OnCheckedChange func(checked bool)
	Size            ControlSize
	Disabled        bool
}

// Checkbox is a two-state toggle.
type Checkbox struct {
	frame
	props   CheckboxProps
	focused bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(props CheckboxProps) *Checkbox {
	if props.Size == "" {
		props.Size = ControlMd
	}
	return &Checkbox{frame: newFrame(), props: props}
}

func (cb *Checkbox) Focus()        { cb.focused = true }
func (cb *Checkbox) Blur()         { cb.focused = false }
func (cb *Checkbox) Focused() bool { return cb.focused }
func (cb *Checkbox) Checked() bool { return cb.props.Checked }

// SetChecked re-supplies the checked state.
func (cb *Checkbox) SetChecked(checked bool) { cb.props.Checked = checked }

// SetDisabled enables or disables the checkbox.
func (cb *Checkbox) SetDisabled(disabled bool) { cb.props.Disabled = disabled }

// Toggle asks the caller for the opposite state.
func (cb *Checkbox) Toggle() {
	if cb.props.Disabled || cb.props.OnCheckedChange == nil {
		return
	}
	cb.props.OnCheckedChange(!cb.props.Checked)
}

// Update handles Bubble Tea messages
func (cb *Checkbox) Update(msg tea.Msg) (*Checkbox, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cb.focused && (msg.String() == " " || msg.String() == "space" || msg.String() == "enter") {
			cb.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && cb.hit(msg) != nil {
			cb.Toggle()
		}
	}
	return cb, nil
}

// View renders the checkbox
func (cb *Checkbox) View() string {
	c := cb.draw()
	glyph := "[ ]"
	if cb.props.Checked {
		glyph = "[x]"
	}
	out := renderControl(glyph, cb.props.Checked, cb.focused, cb.props.Disabled, cb.props.Size, cb.props.Label)
	c.region(controlID, out, target{title: strings.TrimSpace(cb.props.Label)})
	return cb.measure(c.String())
}
