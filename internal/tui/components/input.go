package components

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

// InputVariant switches the border to the error color.
type InputVariant string

const (
	InputDefault InputVariant = "default"
	InputError   InputVariant = "error"
)

const inputEndID = "end"

// InputProps configure an Input. Value is owned by the caller.
type InputProps struct {
	Placeholder string
	Value       string
	Variant     InputVariant
	FullWidth   bool
	Disabled    bool
	// Password masks the typed characters.
	Password bool
	// EndElement is a glyph drawn at the right end of the field. It keeps
	// its column even when empty if HasEndElement is set.
	EndElement      string
	EndElementTitle string
	HasEndElement   bool
	CharLimit       int

	OnValueChange func(value string)
}

// Input is a single-line text field.
type Input struct {
	frame
	props InputProps
	input textinput.Model
	log   *slog.Logger
	width int
}

// NewInput creates a blurred input.
func NewInput(props InputProps) *Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = props.Placeholder
	if props.CharLimit > 0 {
		ti.CharLimit = props.CharLimit
	}
	in := &Input{
		frame: newFrame(),
		props: props,
		input: ti,
		log:   logger.GetLogger().With("component", "input"),
	}
	in.setPassword(props.Password)
	in.input.SetValue(props.Value)
	in.input.CursorEnd()
	return in
}

// Value returns the text shown.
func (in *Input) Value() string { return in.input.Value() }

// SetValue re-supplies the text.
func (in *Input) SetValue(v string) {
	in.props.Value = v
	if in.input.Value() != v {
		in.input.SetValue(v)
		in.input.CursorEnd()
	}
}

// SetVariant switches between the default and error look.
func (in *Input) SetVariant(v InputVariant) { in.props.Variant = v }

// SetDisabled enables or disables typing.
func (in *Input) SetDisabled(disabled bool) {
	in.props.Disabled = disabled
	if disabled {
		in.input.Blur()
	}
}

// SetPassword masks or reveals the text.
func (in *Input) SetPassword(masked bool) {
	in.props.Password = masked
	in.setPassword(masked)
}

func (in *Input) setPassword(masked bool) {
	if masked {
		in.input.EchoMode = textinput.EchoPassword
		in.input.EchoCharacter = '•'
	} else {
		in.input.EchoMode = textinput.EchoNormal
	}
}

// SetEndElement replaces the end glyph and its title.
func (in *Input) SetEndElement(glyph, title string) {
	in.props.EndElement = glyph
	in.props.EndElementTitle = title
}

// SetWidth sets the outer width used when FullWidth is set.
func (in *Input) SetWidth(width int) { in.width = width }

// Focus gives the field keyboard focus.
func (in *Input) Focus() tea.Cmd {
	if in.props.Disabled {
		return nil
	}
	return in.input.Focus()
}

func (in *Input) Blur()         { in.input.Blur() }
func (in *Input) Focused() bool { return in.input.Focused() }

// Update handles Bubble Tea messages
func (in *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	if in.props.Disabled {
		return in, nil
	}
	if m, ok := msg.(tea.MouseMsg); ok {
		if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft {
			if in.hit(m) != nil {
				return in, in.Focus()
			}
		}
		return in, nil
	}
	if !in.input.Focused() {
		return in, nil
	}

	before := in.input.Value()
	var cmd tea.Cmd
	in.input, cmd = in.input.Update(msg)
	if v := in.input.Value(); v != before {
		in.log.Debug("value change", "length", len(v))
		if in.props.OnValueChange != nil {
			in.props.OnValueChange(v)
		}
	}
	return in, cmd
}

// View renders the input
func (in *Input) View() string {
	c := in.draw()
	width := fieldWidth(in.props.FullWidth, in.width)

	var adornments []string
	if in.props.EndElement != "" {
		adornments = []string{in.props.EndElement}
	} else if in.props.HasEndElement {
		adornments = []string{" "}
	}
	in.input.Width = width - 2*fieldInset - 1
	if len(adornments) > 0 {
		in.input.Width -= 2
	}
	if in.input.Width < 1 {
		in.input.Width = 1
	}

	top := c.line()
	box, cols := fieldBox(in.input.View(), adornments, width, in.input.Focused(), in.props.Variant == InputError, in.props.Disabled)
	c.block(fieldID, box, target{index: -1})
	if in.props.EndElement != "" {
		c.mark(inputEndID, cols[0], top+fieldLine, 1, 1, target{title: in.props.EndElementTitle})
	}
	return in.measure(c.String())
}
