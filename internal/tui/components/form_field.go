package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
)

// FieldType is the kind of text a FormField holds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldPassword FieldType = "password"
)

// Justify places a FormField inside a taller slot.
type Justify string

const (
	JustifyStart Justify = "start"
	JustifyEnd   Justify = "end"
)

// FormFieldProps configure a FormField. Value is owned by the caller.
type FormFieldProps struct {
	Label       string
	Placeholder string
	HelperText  string
	Error       string
	Required    bool
	Disabled    bool
	FullWidth   bool
	Type        FieldType
	// EndAdornment is a glyph or unit shown at the right of a text field.
	// Password fields show the reveal toggle instead.
	EndAdornment string
	Justify      Justify
	Value        string

	OnValueChange func(value string)
	Lang          string
}

// FormField is a labelled Input with feedback text and, for passwords, a
// reveal toggle.
type FormField struct {
	frame
	props    FormFieldProps
	tr       *locale.Translator
	input    *Input
	revealed bool
	height   int
}

// NewFormField creates a form field.
func NewFormField(props FormFieldProps) *FormField {
	if props.Type == "" {
		props.Type = FieldText
	}
	if props.Justify == "" {
		props.Justify = JustifyStart
	}
	f := &FormField{
		frame: newFrame(),
		props: props,
		tr:    locale.New(props.Lang),
	}
	f.input = NewInput(InputProps{
		Placeholder:   props.Placeholder,
		Value:         props.Value,
		FullWidth:     props.FullWidth,
		Disabled:      props.Disabled,
		Password:      props.Type == FieldPassword,
		HasEndElement: props.Type == FieldPassword || props.EndAdornment != "",
		OnValueChange: props.OnValueChange,
	})
	f.syncInput()
	return f
}

// Input returns the wrapped text field.
func (f *FormField) Input() *Input { return f.input }

// Value returns the text shown.
func (f *FormField) Value() string { return f.input.Value() }

// SetValue re-supplies the text.
func (f *FormField) SetValue(v string) { f.input.SetValue(v) }

// SetError sets the error text; empty clears it.
func (f *FormField) SetError(text string) {
	f.props.Error = text
	f.syncInput()
}

// SetDisabled enables or disables the field.
func (f *FormField) SetDisabled(disabled bool) {
	f.props.Disabled = disabled
	f.input.SetDisabled(disabled)
}

// SetWidth sets the outer width used when FullWidth is set.
func (f *FormField) SetWidth(width int) { f.input.SetWidth(width) }

// SetHeight sets the slot height Justify places the field in.
func (f *FormField) SetHeight(height int) { f.height = height }

// Revealed reports whether a password field shows its text.
func (f *FormField) Revealed() bool { return f.revealed }

// ToggleReveal shows or masks a password field.
func (f *FormField) ToggleReveal() {
	if f.props.Type != FieldPassword || f.props.Disabled {
		return
	}
	f.revealed = !f.revealed
	f.syncInput()
}

func (f *FormField) syncInput() {
	variant := InputDefault
	if f.props.Error != "" {
		variant = InputError
	}
	f.input.SetVariant(variant)

	switch {
	case f.props.Type == FieldPassword:
		f.input.SetPassword(!f.revealed)
		if f.revealed {
			f.input.SetEndElement("◎", f.tr.T(locale.PasswordHide))
		} else {
			f.input.SetEndElement("◉", f.tr.T(locale.PasswordShow))
		}
	case f.props.EndAdornment != "":
		f.input.SetEndElement(f.props.EndAdornment, "")
	}
}

func (f *FormField) Focus() tea.Cmd { return f.input.Focus() }
func (f *FormField) Blur()          { f.input.Blur() }
func (f *FormField) Focused() bool  { return f.input.Focused() }

// Update handles Bubble Tea messages
func (f *FormField) Update(msg tea.Msg) (*FormField, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+r" && f.input.Focused() {
			f.ToggleReveal()
			return f, nil
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if r := f.input.hit(msg); r != nil && r.ID == inputEndID && f.props.Type == FieldPassword {
				f.ToggleReveal()
				return f, f.input.Focus()
			}
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the form field
func (f *FormField) View() string {
	c := f.draw()

	if label := (Label{Text: f.props.Label, Required: f.props.Required, Disabled: f.props.Disabled, Variant: labelVariant(f.props.Error)}).View(); label != "" {
		c.text(label)
		c.newline()
	}

	f.input.SetOrigin(f.x, f.y+c.line())
	c.block("", f.input.View(), nil)
	writeFeedback(c, f.props.Error, f.props.HelperText, f.props.Disabled)

	view := c.String()
	if f.props.Justify == JustifyEnd && f.height > 0 {
		if pad := f.height - strings.Count(view, "\n") - 1; pad > 0 {
			view = strings.Repeat("\n", pad) + view
			f.input.SetOrigin(f.input.x, f.input.y+pad)
			f.input.View()
		}
	}
	return f.measure(view)
}

func labelVariant(errorText string) LabelVariant {
	if errorText != "" {
		return LabelError
	}
	return LabelDefault
}
