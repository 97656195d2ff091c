package components

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

type dpState int

const (
	dpIdle dpState = iota
	dpEditing
	dpCalendarOpen
)

func (s dpState) String() string {
	switch s {
	case dpEditing:
		return "editing"
	case dpCalendarOpen:
		return "calendar-open"
	default:
		return "idle"
	}
}

const calendarButtonID = "calendar"

// DatePickerProps configure a DatePicker. DateValue is owned by the caller
// and re-supplied with SetDateValue after OnDateValueChange.
type DatePickerProps struct {
	Label string
	// Placeholder defaults to the localized DD/MM/YYYY hint.
	Placeholder string
	Error       string
	HelperText  string
	Required    bool
	Disabled    bool
	FullWidth   bool
	DateValue   *dates.Date

	// OnDateValueChange receives the committed date, or nil when the field
	// was emptied.
	OnDateValueChange func(*dates.Date)
	Lang              string
	Now               func() time.Time
}

// DatePicker is a masked DD/MM/YYYY text field with a calendar popup.
type DatePicker struct {
	frame
	doc   *dom.Document
	id    string
	props DatePickerProps
	tr    *locale.Translator
	log   *slog.Logger
	width int

	input    textinput.Model
	state    dpState
	focused  bool
	calendar *Calendar
	outside  *dom.Registration
}

// NewDatePicker creates an idle date picker attached to doc.
func NewDatePicker(doc *dom.Document, props DatePickerProps) *DatePicker {
	if props.Now == nil {
		props.Now = time.Now
	}
	tr := locale.New(props.Lang)
	if props.Placeholder == "" {
		props.Placeholder = tr.T(locale.DatePlaceholder)
	}
	id := dom.NewID("datepicker")

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = props.Placeholder
	// No limit here: pasted text keeps all its digits until MaskDigits caps
	// them.
	ti.CharLimit = 0

	d := &DatePicker{
		frame: newFrame(),
		doc:   doc,
		id:    id,
		props: props,
		tr:    tr,
		log:   logger.GetLogger().With("component", "datepicker", "id", id),
		input: ti,
	}
	d.reformat()
	return d
}

// ID returns the element id of the text field.
func (d *DatePicker) ID() string { return d.id }

// DateValue returns the date supplied by the caller.
func (d *DatePicker) DateValue() *dates.Date { return d.props.DateValue }

// Text returns what the text field shows.
func (d *DatePicker) Text() string { return d.input.Value() }

// IsEditing reports whether the text holds an uncommitted edit.
func (d *DatePicker) IsEditing() bool { return d.state == dpEditing }

// IsCalendarOpen reports whether the calendar popup is shown.
func (d *DatePicker) IsCalendarOpen() bool { return d.state == dpCalendarOpen }

// Calendar returns the open calendar, or nil.
func (d *DatePicker) Calendar() *Calendar {
	if d.state != dpCalendarOpen {
		return nil
	}
	return d.calendar
}

// Focused reports whether the text field has focus.
func (d *DatePicker) Focused() bool { return d.focused }

// SetDateValue re-supplies the date. The text follows it unless the user is
// in the middle of typing.
func (d *DatePicker) SetDateValue(v *dates.Date) {
	d.props.DateValue = v
	if d.calendar != nil {
		d.calendar.SetDateValue(v)
	}
	if d.state != dpEditing {
		d.reformat()
	}
}

// SetError sets the advisory error text; empty clears it.
func (d *DatePicker) SetError(text string) { d.props.Error = text }

// SetDisabled disables the picker, closing the calendar.
func (d *DatePicker) SetDisabled(disabled bool) {
	d.props.Disabled = disabled
	if disabled && d.state == dpCalendarOpen {
		d.setState(dpIdle)
		d.reformat()
	}
}

// SetWidth sets the outer width used when FullWidth is set.
func (d *DatePicker) SetWidth(width int) { d.width = width }

// reformat shows the external value formatted, or nothing.
func (d *DatePicker) reformat() {
	text := ""
	if d.props.DateValue != nil {
		text = dates.Format(*d.props.DateValue)
	}
	d.input.SetValue(text)
	d.input.CursorEnd()
}

// setState moves the state machine and keeps exactly one pointer-down
// registration alive while the picker is not idle.
func (d *DatePicker) setState(s dpState) {
	if s == d.state {
		return
	}
	from := d.state
	d.state = s

	if s == dpCalendarOpen {
		d.calendar = NewCalendar(CalendarProps{
			DateValue:         d.props.DateValue,
			OnDateValueChange: d.pickDay,
			Lang:              d.props.Lang,
			Now:               d.props.Now,
		})
		d.calendar.Focus()
	} else {
		d.calendar = nil
	}

	switch {
	case s == dpIdle:
		d.outside.Remove()
		d.outside = nil
	case d.outside == nil:
		d.outside = d.doc.AddListener(dom.PointerDown, d.id, d.handleOutside)
	}
	d.log.Debug("state", "from", from.String(), "to", s.String())
}

// commit turns the typed text into a date change. Unparseable text reverts
// to the external value.
func (d *DatePicker) commit() {
	text := d.input.Value()
	d.setState(dpIdle)

	if text == "" {
		d.log.Debug("date cleared")
		d.emit(nil)
		return
	}
	v, err := dates.Parse(text)
	if err != nil {
		d.log.Debug("invalid date reverted", "text", text, "error", err)
		d.reformat()
		return
	}
	d.emit(&v)
}

func (d *DatePicker) emit(v *dates.Date) {
	if d.props.OnDateValueChange != nil {
		d.props.OnDateValueChange(v)
	}
}

func (d *DatePicker) pickDay(v dates.Date) {
	d.setState(dpIdle)
	d.input.SetValue(dates.Format(v))
	d.input.CursorEnd()
	d.log.Debug("day picked", "date", v.String())
	d.emit(&v)
}

// Focus gives the text field keyboard focus.
func (d *DatePicker) Focus() tea.Cmd {
	d.focused = true
	d.doc.Focus(d.id)
	return d.input.Focus()
}

// Blur takes focus away. A pending edit is committed; otherwise the text is
// only reformatted.
func (d *DatePicker) Blur() {
	if !d.focused {
		return
	}
	d.focused = false
	d.input.Blur()
	d.doc.Blur(d.id)
	if d.state == dpEditing {
		d.commit()
	} else {
		d.reformat()
	}
}

// ToggleCalendar opens or closes the calendar. A typed buffer is discarded.
func (d *DatePicker) ToggleCalendar() {
	if d.props.Disabled {
		return
	}
	if d.state == dpEditing {
		d.input.SetValue("")
		d.setState(dpIdle)
	}
	if d.state == dpCalendarOpen {
		d.setState(dpIdle)
	} else {
		d.setState(dpCalendarOpen)
	}
}

func (d *DatePicker) handleOutside(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok || d.contains(m) {
		return nil
	}
	if d.state == dpEditing {
		d.focused = false
		d.input.Blur()
		d.doc.Blur(d.id)
		d.commit()
		return nil
	}
	d.setState(dpIdle)
	d.reformat()
	return nil
}

// Update handles Bubble Tea messages
func (d *DatePicker) Update(msg tea.Msg) (*DatePicker, tea.Cmd) {
	if d.props.Disabled {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !d.focused {
			return d, nil
		}
		return d, d.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return d, nil
		}
		if d.state == dpCalendarOpen && d.calendar.Bounds().Contains(msg.X, msg.Y) {
			d.calendar.Update(msg)
			return d, nil
		}
		r := d.hit(msg)
		if r == nil {
			return d, nil
		}
		switch r.ID {
		case calendarButtonID:
			d.ToggleCalendar()
			return d, d.Focus()
		case fieldID:
			if d.state == dpCalendarOpen {
				d.setState(dpEditing)
			}
			return d, d.Focus()
		}
		return d, nil
	}

	if d.focused {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DatePicker) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+o" {
		d.ToggleCalendar()
		return nil
	}

	if d.state == dpCalendarOpen {
		switch key {
		case "esc":
			d.setState(dpIdle)
			d.reformat()
			return nil
		case "up", "down", "left", "right", "pgup", "pgdown", "y", "enter", " ", "space":
			d.calendar.Update(msg)
			return nil
		}
	}

	if key == "enter" {
		d.commit()
		// enter also leaves the field; the text is already committed so
		// this only reformats.
		d.Blur()
		return nil
	}

	before := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if raw := d.input.Value(); raw != before {
		d.input.SetValue(dates.MaskDigits(raw))
		d.input.CursorEnd()
		d.setState(dpEditing)
	}
	return cmd
}

// View renders the date picker
func (d *DatePicker) View() string {
	c := d.draw()
	width := fieldWidth(d.props.FullWidth, d.width)

	writeLabel(c, d.props.Label, d.props.Required)

	d.input.Width = width - 2*fieldInset - 3
	if d.input.Width < 1 {
		d.input.Width = 1
	}
	top := c.line()
	box, cols := fieldBox(d.input.View(), []string{"▦"}, width, d.focused || d.state != dpIdle, d.props.Error != "", d.props.Disabled)
	c.block(fieldID, box, target{index: -1})
	c.mark(calendarButtonID, cols[0], top+fieldLine, 1, 1, target{title: d.tr.T(locale.DateOpenCalendar)})

	if d.state == dpCalendarOpen {
		d.calendar.SetOrigin(d.x, d.y+c.line())
		c.block("", d.calendar.View(), nil)
	}

	writeFeedback(c, d.props.Error, d.props.HelperText, d.props.Disabled)
	return d.measure(c.String())
}
