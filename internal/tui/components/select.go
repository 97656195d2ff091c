package components

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

var (
	optionStyle         = lipgloss.NewStyle().Foreground(theme.Black)
	optionSelectedStyle = lipgloss.NewStyle().Background(theme.OrangeLight).Foreground(theme.Black)
	optionFocusedStyle  = theme.SelectedStyle
)

type selectState int

const (
	selectClosed selectState = iota
	selectOpen
)

func (s selectState) String() string {
	if s == selectOpen {
		return "open"
	}
	return "closed"
}

// Hit region ids shared by the dropdown widgets.
const (
	fieldID  = "field"
	optionID = "option"
	toggleID = "toggle"
	clearID  = "clear"
)

// SelectProps configure a Select. Value is owned by the caller and
// re-supplied with SetValue after OnValueChange.
type SelectProps struct {
	Label       string
	Placeholder string
	Error       string
	HelperText  string
	Required    bool
	Disabled    bool
	FullWidth   bool
	Options     []Option
	Value       string

	OnValueChange func(value string)
	Lang          string
}

// Select is a dropdown over a fixed option list.
type Select struct {
	frame
	doc   *dom.Document
	id    string
	props SelectProps
	tr    *locale.Translator
	log   *slog.Logger
	width int

	state   selectState
	focused bool
	outside *dom.Registration
}

// NewSelect creates a closed select attached to doc.
func NewSelect(doc *dom.Document, props SelectProps) *Select {
	id := dom.NewID("select")
	return &Select{
		frame: newFrame(),
		doc:   doc,
		id:    id,
		props: props,
		tr:    locale.New(props.Lang),
		log:   logger.GetLogger().With("component", "select", "id", id),
	}
}

// ID returns the element id of the select button.
func (s *Select) ID() string { return s.id }

// Value returns the value supplied by the caller.
func (s *Select) Value() string { return s.props.Value }

// SetValue re-supplies the selected value.
func (s *Select) SetValue(v string) { s.props.Value = v }

// SetOptions replaces the option list.
func (s *Select) SetOptions(options []Option) { s.props.Options = options }

// SetError sets the advisory error text; empty clears it.
func (s *Select) SetError(text string) { s.props.Error = text }

// SetDisabled disables the select. An open list is closed.
func (s *Select) SetDisabled(disabled bool) {
	s.props.Disabled = disabled
	if disabled {
		s.close()
	}
}

// SetWidth sets the outer width used when FullWidth is set.
func (s *Select) SetWidth(width int) { s.width = width }

// IsOpen reports whether the option list is shown.
func (s *Select) IsOpen() bool { return s.state == selectOpen }

// Highlighted reports the visual focus state of the button.
func (s *Select) Highlighted() bool { return s.focused }

// Focus gives the select keyboard focus.
func (s *Select) Focus() { s.doc.Focus(s.id) }

// Blur removes keyboard focus.
func (s *Select) Blur() { s.doc.Blur(s.id) }

// Focused reports whether the select has keyboard focus.
func (s *Select) Focused() bool { return s.doc.HasFocus(s.id) }

// ToggleOpen opens or closes the list unless disabled.
func (s *Select) ToggleOpen() {
	if s.props.Disabled {
		return
	}
	if s.state == selectOpen {
		s.close()
	} else {
		s.open()
	}
	s.focused = s.state == selectOpen
}

func (s *Select) open() {
	if s.state == selectOpen {
		return
	}
	s.state = selectOpen
	s.outside = s.doc.AddListener(dom.PointerDown, s.id, s.handleOutside)
	s.log.Debug("state", "to", s.state.String())
}

// close returns to selectClosed and releases the document listener.
func (s *Select) close() {
	if s.state == selectClosed {
		return
	}
	s.state = selectClosed
	s.outside.Remove()
	s.outside = nil
	s.log.Debug("state", "to", s.state.String())
}

func (s *Select) handleOutside(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok || s.contains(m) {
		return nil
	}
	s.close()
	s.focused = false
	return nil
}

func (s *Select) selectOption(i int) {
	if i < 0 || i >= len(s.props.Options) {
		return
	}
	s.commit(s.props.Options[i].Value)
	s.close()
	s.focused = false
}

func (s *Select) commit(value string) {
	s.log.Debug("value change", "value", value)
	if s.props.OnValueChange != nil {
		s.props.OnValueChange(value)
	}
}

// step commits the option after (or before) the current value, wrapping
// around both ends.
func (s *Select) step(delta int) {
	n := len(s.props.Options)
	if n == 0 {
		return
	}
	cur := FindOption(s.props.Options, s.props.Value)
	var next int
	if delta > 0 {
		next = 0
		if cur < n-1 {
			next = cur + 1
		}
	} else {
		next = n - 1
		if cur > 0 {
			next = cur - 1
		}
	}
	s.commit(s.props.Options[next].Value)
}

// Update handles Bubble Tea messages
func (s *Select) Update(msg tea.Msg) (*Select, tea.Cmd) {
	if s.props.Disabled {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.Focused() {
			return s, nil
		}
		key := msg.String()
		switch {
		case key == "esc" && s.state == selectOpen:
			s.close()
			s.focused = false
		case (key == "down" || key == "enter") && s.state == selectClosed:
			s.open()
			s.focused = true
		case key == "down" && s.state == selectOpen:
			s.step(1)
		case key == "up" && s.state == selectOpen:
			s.step(-1)
		case key == "enter" || key == " " || key == "space":
			s.ToggleOpen()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		r := s.hit(msg)
		if r == nil {
			return s, nil
		}
		s.Focus()
		switch r.ID {
		case fieldID:
			s.ToggleOpen()
		case optionID:
			s.selectOption(targetIndex(r))
		}
	}
	return s, nil
}

func (s *Select) displayLabel() (string, bool) {
	if i := FindOption(s.props.Options, s.props.Value); i >= 0 {
		return s.props.Options[i].Label, true
	}
	placeholder := s.props.Placeholder
	if placeholder == "" {
		placeholder = s.tr.T(locale.SelectPlaceholder)
	}
	return placeholder, false
}

// View renders the select
func (s *Select) View() string {
	c := s.draw()
	width := fieldWidth(s.props.FullWidth, s.width)

	writeLabel(c, s.props.Label, s.props.Required)

	label, ok := s.displayLabel()
	if !ok {
		label = placeholderStyle.Render(label)
	}
	arrow := "▾"
	arrowTitle := locale.ListOpen
	if s.state == selectOpen {
		arrow = "▴"
		arrowTitle = locale.ListClose
	}
	box, _ := fieldBox(label, []string{arrow}, width, s.focused || s.state == selectOpen, s.props.Error != "", s.props.Disabled)
	c.block(fieldID, box, target{index: -1, title: s.tr.T(arrowTitle)})

	if s.state == selectOpen && !s.props.Disabled {
		labels := make([]string, len(s.props.Options))
		for i, opt := range s.props.Options {
			labels[i] = opt.Label
		}
		list := listBox(labels, width, func(i int) lipgloss.Style {
			if s.props.Options[i].Value == s.props.Value {
				return optionSelectedStyle
			}
			return optionStyle
		})
		c.blockFunc(list, func(line int) (string, any, bool) {
			i := line - 1
			if i < 0 || i >= len(s.props.Options) {
				return "", nil, false
			}
			return optionID, target{index: i, title: s.props.Options[i].Label}, true
		})
	}

	writeFeedback(c, s.props.Error, s.props.HelperText, s.props.Disabled)
	return s.measure(c.String())
}
