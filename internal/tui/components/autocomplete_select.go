package components

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

// DefaultBlurGrace is how long a widget waits after losing focus before it
// checks whether focus really left it.
const DefaultBlurGrace = 100 * time.Millisecond

type acState int

const (
	acClosed acState = iota
	acOpen
)

func (s acState) String() string {
	if s == acOpen {
		return "open"
	}
	return "closed"
}

// blurCheckMsg fires once the blur grace delay of owner has elapsed.
type blurCheckMsg struct {
	owner string
}

// AutocompleteSelectProps configure an AutocompleteSelect. Value is owned by
// the caller and re-supplied with SetValue after OnValueChange.
type AutocompleteSelectProps struct {
	Label       string
	Placeholder string
	Error       string
	HelperText  string
	Required    bool
	Disabled    bool
	FullWidth   bool
	Options     OptionSource
	Value       string

	OnValueChange func(value string)
	// OnClear is called when the clear button empties the search term.
	// Clearing the value itself is up to the caller.
	OnClear func()

	// FilterFuzzy ranks options by fuzzy match instead of keeping those whose
	// label contains the term.
	FilterFuzzy bool
	// BlurGrace defaults to DefaultBlurGrace.
	BlurGrace time.Duration
	Lang      string
}

// AutocompleteSelect is a text field that filters a dropdown of options.
// The typed search term is separate from the committed value.
type AutocompleteSelect struct {
	frame
	doc   *dom.Document
	id    string
	props AutocompleteSelectProps
	tr    *locale.Translator
	log   *slog.Logger
	width int

	input   textinput.Model
	options []Option
	state   acState
	outside *dom.Registration
}

// NewAutocompleteSelect creates a closed autocomplete attached to doc.
func NewAutocompleteSelect(doc *dom.Document, props AutocompleteSelectProps) *AutocompleteSelect {
	if props.BlurGrace <= 0 {
		props.BlurGrace = DefaultBlurGrace
	}
	id := dom.NewID("autocomplete")

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = props.Placeholder
	ti.CharLimit = 200

	a := &AutocompleteSelect{
		frame:   newFrame(),
		doc:     doc,
		id:      id,
		props:   props,
		tr:      locale.New(props.Lang),
		log:     logger.GetLogger().With("component", "autocomplete", "id", id),
		input:   ti,
		options: NormalizeOptions(props.Options),
	}
	a.syncTerm()
	return a
}

// ID returns the element id of the text field.
func (a *AutocompleteSelect) ID() string { return a.id }

// optionElementID is the element id of the i-th visible option.
func (a *AutocompleteSelect) optionElementID(i int) string {
	return fmt.Sprintf("option-%d-%s", i, a.id)
}

// focusedOption returns the index of the option holding focus, or -1.
func (a *AutocompleteSelect) focusedOption() int {
	active := a.doc.ActiveElement()
	suffix := "-" + a.id
	if !strings.HasPrefix(active, "option-") || !strings.HasSuffix(active, suffix) {
		return -1
	}
	i, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(active, "option-"), suffix))
	if err != nil {
		return -1
	}
	return i
}

// FocusedOption returns the index of the focused option in Filtered, or -1
// when focus is on the field or elsewhere.
func (a *AutocompleteSelect) FocusedOption() int { return a.focusedOption() }

// Value returns the value supplied by the caller.
func (a *AutocompleteSelect) Value() string { return a.props.Value }

// Term returns the search text.
func (a *AutocompleteSelect) Term() string { return a.input.Value() }

// Options returns the normalized option list.
func (a *AutocompleteSelect) Options() []Option { return a.options }

// IsOpen reports whether the dropdown is shown.
func (a *AutocompleteSelect) IsOpen() bool { return a.state == acOpen }

// SetValue re-supplies the committed value. The search term follows the
// value only when it actually changes.
func (a *AutocompleteSelect) SetValue(v string) {
	if v == a.props.Value {
		return
	}
	a.props.Value = v
	a.syncTerm()
}

// SetOptions replaces the options and re-syncs the search term.
func (a *AutocompleteSelect) SetOptions(src OptionSource) {
	a.props.Options = src
	a.options = NormalizeOptions(src)
	a.syncTerm()
}

// SetError sets the advisory error text; empty clears it.
func (a *AutocompleteSelect) SetError(text string) { a.props.Error = text }

// SetDisabled disables the field and closes the dropdown.
func (a *AutocompleteSelect) SetDisabled(disabled bool) {
	a.props.Disabled = disabled
	if disabled {
		a.close()
	}
}

// SetWidth sets the outer width used when FullWidth is set.
func (a *AutocompleteSelect) SetWidth(width int) { a.width = width }

// syncTerm mirrors the committed value into the search term: an empty value
// clears it, a known value shows its label, an unknown one leaves it alone.
func (a *AutocompleteSelect) syncTerm() {
	if a.props.Value == "" {
		a.setTerm("")
		return
	}
	if i := FindOption(a.options, a.props.Value); i >= 0 {
		a.setTerm(a.options[i].Label)
	}
}

func (a *AutocompleteSelect) setTerm(term string) {
	a.input.SetValue(term)
	a.input.CursorEnd()
}

// Filtered returns the options matching the search term.
func (a *AutocompleteSelect) Filtered() []Option {
	term := a.input.Value()
	if term == "" {
		return a.options
	}

	if a.props.FilterFuzzy {
		labels := make([]string, len(a.options))
		for i, opt := range a.options {
			labels[i] = strings.ToLower(opt.Label)
		}
		matches := fuzzy.Find(strings.ToLower(term), labels)
		out := make([]Option, len(matches))
		for i, m := range matches {
			out[i] = a.options[m.Index]
		}
		return out
	}

	needle := strings.ToLower(term)
	var out []Option
	for _, opt := range a.options {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			out = append(out, opt)
		}
	}
	return out
}

func (a *AutocompleteSelect) open() {
	if a.state == acOpen {
		return
	}
	a.state = acOpen
	a.outside = a.doc.AddListener(dom.PointerDown, a.id, a.handleOutside)
	a.log.Debug("state", "to", a.state.String())
}

// close returns to acClosed and releases the document listener.
func (a *AutocompleteSelect) close() {
	if a.state == acClosed {
		return
	}
	a.state = acClosed
	a.outside.Remove()
	a.outside = nil
	a.log.Debug("state", "to", a.state.String())
}

func (a *AutocompleteSelect) handleOutside(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok || a.contains(m) {
		return nil
	}
	a.close()
	return nil
}

// focusField moves focus back to the text field.
func (a *AutocompleteSelect) focusField() tea.Cmd {
	a.doc.Focus(a.id)
	return a.input.Focus()
}

// Focus gives the text field keyboard focus.
func (a *AutocompleteSelect) Focus() tea.Cmd {
	return a.focusField()
}

// Focused reports whether the field or one of its options has focus.
func (a *AutocompleteSelect) Focused() bool { return a.doc.FocusWithin(a.id) }

// Blur takes focus away from the widget. The dropdown is closed only once the
// grace delay has passed and focus is still outside.
func (a *AutocompleteSelect) Blur() tea.Cmd {
	a.input.Blur()
	if a.doc.FocusWithin(a.id) {
		a.doc.Blur("")
	}
	owner := a.id
	return tea.Tick(a.props.BlurGrace, func(time.Time) tea.Msg {
		return blurCheckMsg{owner: owner}
	})
}

// Clear empties the search term, closes the dropdown, calls OnClear and
// refocuses the field. The committed value is left to the caller.
func (a *AutocompleteSelect) Clear() tea.Cmd {
	a.setTerm("")
	if a.props.OnClear != nil {
		a.props.OnClear()
	}
	a.close()
	a.log.Debug("cleared")
	return a.focusField()
}

func (a *AutocompleteSelect) selectOption(value string) tea.Cmd {
	i := FindOption(a.options, value)
	if i < 0 {
		return nil
	}
	a.log.Debug("value change", "value", value)
	if a.props.OnValueChange != nil {
		a.props.OnValueChange(value)
	}
	a.setTerm(a.options[i].Label)
	a.close()
	return a.focusField()
}

// Update handles Bubble Tea messages
func (a *AutocompleteSelect) Update(msg tea.Msg) (*AutocompleteSelect, tea.Cmd) {
	switch msg := msg.(type) {
	case blurCheckMsg:
		if msg.owner == a.id && !a.doc.FocusWithin(a.id) {
			a.close()
		}
		return a, nil

	case tea.KeyMsg:
		if a.props.Disabled {
			return a, nil
		}
		if i := a.focusedOption(); i >= 0 {
			return a, a.handleOptionKey(msg, i)
		}
		if a.doc.HasFocus(a.id) {
			return a, a.handleFieldKey(msg)
		}
		return a, nil

	case tea.MouseMsg:
		if a.props.Disabled || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		r := a.hit(msg)
		if r == nil {
			return a, nil
		}
		switch r.ID {
		case fieldID:
			return a, a.focusField()
		case toggleID:
			if a.state == acOpen {
				a.close()
			} else {
				a.open()
			}
			return a, a.focusField()
		case clearID:
			return a, a.Clear()
		case optionID:
			filtered := a.Filtered()
			if i := targetIndex(r); i >= 0 && i < len(filtered) {
				return a, a.selectOption(filtered[i].Value)
			}
		}
		return a, nil
	}

	if a.doc.HasFocus(a.id) {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *AutocompleteSelect) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.close()
		return nil
	case "down":
		if a.state == acOpen && len(a.Filtered()) > 0 {
			a.doc.Focus(a.optionElementID(0))
			a.input.Blur()
		}
		return nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.open()
	}
	return cmd
}

func (a *AutocompleteSelect) handleOptionKey(msg tea.KeyMsg, i int) tea.Cmd {
	filtered := a.Filtered()
	switch msg.String() {
	case "down":
		if i+1 < len(filtered) {
			a.doc.Focus(a.optionElementID(i + 1))
		} else {
			a.doc.Focus(a.optionElementID(0))
		}
	case "up":
		if i > 0 {
			a.doc.Focus(a.optionElementID(i - 1))
		} else {
			return a.focusField()
		}
	case "enter", " ", "space":
		if i < len(filtered) {
			return a.selectOption(filtered[i].Value)
		}
	case "esc":
		a.close()
		return a.focusField()
	}
	return nil
}

// View renders the autocomplete
func (a *AutocompleteSelect) View() string {
	c := a.draw()
	width := fieldWidth(a.props.FullWidth, a.width)

	writeLabel(c, a.props.Label, a.props.Required)

	var adornments []string
	hasClear := a.input.Value() != ""
	if hasClear {
		adornments = append(adornments, "✕")
	}
	toggleTitle := locale.ListOpen
	if a.state == acOpen {
		adornments = append(adornments, "▴")
		toggleTitle = locale.ListClose
	} else {
		adornments = append(adornments, "▾")
	}

	inner := width - 2*fieldInset
	a.input.Width = inner - lipgloss.Width(strings.Join(adornments, " ")) - 2
	if a.input.Width < 1 {
		a.input.Width = 1
	}

	top := c.line()
	box, cols := fieldBox(a.input.View(), adornments, width, a.Focused(), a.props.Error != "", a.props.Disabled)
	c.block(fieldID, box, target{index: -1})
	if hasClear {
		c.mark(clearID, cols[0], top+fieldLine, 1, 1, target{title: a.tr.T(locale.ClearSelection)})
	}
	c.mark(toggleID, cols[len(cols)-1], top+fieldLine, 1, 1, target{title: a.tr.T(toggleTitle)})

	if filtered := a.Filtered(); a.state == acOpen && len(filtered) > 0 {
		labels := make([]string, len(filtered))
		for i, opt := range filtered {
			labels[i] = opt.Label
		}
		list := listBox(labels, width, func(i int) lipgloss.Style {
			switch {
			case a.doc.HasFocus(a.optionElementID(i)):
				return optionFocusedStyle
			case filtered[i].Value == a.props.Value:
				return optionSelectedStyle
			}
			return optionStyle
		})
		c.blockFunc(list, func(line int) (string, any, bool) {
			i := line - 1
			if i < 0 || i >= len(filtered) {
				return "", nil, false
			}
			return optionID, target{index: i, title: filtered[i].Label}, true
		})
	}

	writeFeedback(c, a.props.Error, a.props.HelperText, a.props.Disabled)
	return a.measure(c.String())
}
