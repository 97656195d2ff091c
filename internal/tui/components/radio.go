package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

const radioCardWidth = 24

// RadioProps configure a Radio. Checked is owned by the caller.
type RadioProps struct {
	Label   string
	Checked bool
	// OnCheckedChange only ever receives true: a radio is unchecked by
	// checking another one.
	OnCheckedChange func(checked bool)
	Size            ControlSize
	Disabled        bool
	// Card draws the radio as a selectable card with Image above Label.
	Card  bool
	Image string
}

// Radio is one choice of a group.
type Radio struct {
	frame
	props   RadioProps
	focused bool
}

// NewRadio creates a radio.
func NewRadio(props RadioProps) *Radio {
	if props.Size == "" {
		props.Size = ControlMd
		if props.Card {
			props.Size = ControlSm
		}
	}
	return &Radio{frame: newFrame(), props: props}
}

func (r *Radio) Focus()        { r.focused = true }
func (r *Radio) Blur()         { r.focused = false }
func (r *Radio) Focused() bool { return r.focused }
func (r *Radio) Checked() bool { return r.props.Checked }

// SetChecked re-supplies the checked state.
func (r *Radio) SetChecked(checked bool) { r.props.Checked = checked }

// SetDisabled enables or disables the radio.
func (r *Radio) SetDisabled(disabled bool) { r.props.Disabled = disabled }

// Select asks the caller to check this radio. A checked radio stays quiet.
func (r *Radio) Select() {
	if r.props.Disabled || r.props.Checked || r.props.OnCheckedChange == nil {
		return
	}
	r.props.OnCheckedChange(true)
}

// Update handles Bubble Tea messages
func (r *Radio) Update(msg tea.Msg) (*Radio, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if r.focused && (msg.String() == " " || msg.String() == "space" || msg.String() == "enter") {
			r.Select()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && r.hit(msg) != nil {
			r.Select()
		}
	}
	return r, nil
}

func (r *Radio) glyph() string {
	if r.props.Checked {
		return "(•)"
	}
	return "( )"
}

// View renders the radio
func (r *Radio) View() string {
	c := r.draw()
	if r.props.Card {
		c.block(controlID, r.card(), target{title: r.props.Label})
		return r.measure(c.String())
	}
	out := renderControl(r.glyph(), r.props.Checked, r.focused, r.props.Disabled, r.props.Size, r.props.Label)
	c.region(controlID, out, target{title: strings.TrimSpace(r.props.Label)})
	return r.measure(c.String())
}

func (r *Radio) card() string {
	border := theme.Neutral5
	switch {
	case r.props.Checked:
		border = theme.Orange
	case r.focused:
		border = theme.Neutral50
	}
	inner := radioCardWidth - 4

	radio := renderControl(r.glyph(), r.props.Checked, false, r.props.Disabled, ControlSm, "")
	top := lipgloss.PlaceHorizontal(inner, lipgloss.Right, radio)
	image := lipgloss.PlaceHorizontal(inner, lipgloss.Center, r.props.Image)
	labelStyle := theme.LabelStyle
	if r.props.Disabled {
		labelStyle = disabledStyle
	}
	label := lipgloss.PlaceHorizontal(inner, lipgloss.Center, labelStyle.Render(r.props.Label))

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(border).
		Background(theme.Neutral5).
		Padding(0, 1).
		Width(radioCardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, top, image, "", label))
}
