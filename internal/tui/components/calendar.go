package components

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// yearsPerView is the size of the year picker window.
const yearsPerView = 20

const yearColumns = 4

var (
	calendarBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Neutral25).
				Padding(0, 1)

	calendarHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Black)
	calendarWeekdayStyle = lipgloss.NewStyle().Foreground(theme.Neutral50)
	calendarNavStyle     = lipgloss.NewStyle().Foreground(theme.Black)
	calendarCellStyle    = lipgloss.NewStyle()
	calendarFocusStyle   = theme.FocusedStyle
	calendarSelectStyle  = theme.SelectedStyle
)

// Hit region ids.
const (
	calToggleID = "toggle-years"
	calPrevID   = "prev"
	calNextID   = "next"
	calDayID    = "day"
	calYearID   = "year"
)

// CalendarProps configure a Calendar. DateValue is owned by the caller.
type CalendarProps struct {
	DateValue         *dates.Date
	OnDateValueChange func(dates.Date)
	Lang              string
	// Now is the clock; time.Now when nil.
	Now func() time.Time
}

// Calendar is a month grid with a year picker. Its displayed month (the
// cursor) moves independently of the selected date, which only changes when
// the caller re-supplies it.
type Calendar struct {
	frame
	props CalendarProps
	tr    *locale.Translator
	log   *slog.Logger

	cursor         dates.Date
	yearPickerOpen bool
	yearRangeStart int

	focused   bool
	focusDay  int
	focusYear int
}

// NewCalendar creates a calendar showing the month of the selected date, or
// the current month when there is none.
func NewCalendar(props CalendarProps) *Calendar {
	if props.Now == nil {
		props.Now = time.Now
	}
	today := dates.Today(props.Now())

	start := today
	if props.DateValue != nil {
		start = *props.DateValue
	}

	c := &Calendar{
		frame:          newFrame(),
		props:          props,
		tr:             locale.New(props.Lang),
		log:            logger.GetLogger().With("component", "calendar"),
		cursor:         dates.FirstOfMonth(start),
		yearRangeStart: today.Year - yearsPerView/2,
	}
	c.focusDay = start.Day
	c.focusYear = start.Year
	return c
}

// SetDateValue re-supplies the selected date. The displayed month is left
// where the user put it.
func (c *Calendar) SetDateValue(d *dates.Date) {
	c.props.DateValue = d
}

// DateValue returns the selected date supplied by the caller.
func (c *Calendar) DateValue() *dates.Date {
	return c.props.DateValue
}

// Cursor returns the first day of the displayed month.
func (c *Calendar) Cursor() dates.Date {
	return c.cursor
}

// YearPickerOpen reports whether the year grid replaces the day grid.
func (c *Calendar) YearPickerOpen() bool {
	return c.yearPickerOpen
}

// YearRangeStart returns the first year of the year picker window.
func (c *Calendar) YearRangeStart() int {
	return c.yearRangeStart
}

func (c *Calendar) Focus()        { c.focused = true }
func (c *Calendar) Blur()         { c.focused = false }
func (c *Calendar) Focused() bool { return c.focused }

func (c *Calendar) moveCursor(n int) {
	c.cursor = dates.AddMonths(c.cursor, n)
	c.clampFocusDay()
	c.log.Debug("month changed", "cursor", c.cursor.String())
}

func (c *Calendar) clampFocusDay() {
	if days := dates.DaysIn(c.cursor.Year, c.cursor.Month); c.focusDay > days {
		c.focusDay = days
	}
	if c.focusDay < 1 {
		c.focusDay = 1
	}
}

// PrevMonth shows the previous month, rolling into the previous year.
func (c *Calendar) PrevMonth() { c.moveCursor(-1) }

// NextMonth shows the next month, rolling into the next year.
func (c *Calendar) NextMonth() { c.moveCursor(1) }

// PrevYears shifts the year picker window back by twenty years.
func (c *Calendar) PrevYears() {
	c.yearRangeStart -= yearsPerView
	c.focusYear -= yearsPerView
}

// NextYears shifts the year picker window forward by twenty years.
func (c *Calendar) NextYears() {
	c.yearRangeStart += yearsPerView
	c.focusYear += yearsPerView
}

// SelectYear shows the cursor month of year and closes the year picker.
func (c *Calendar) SelectYear(year int) {
	c.cursor = dates.New(year, c.cursor.Month, 1)
	c.yearPickerOpen = false
	c.clampFocusDay()
	c.log.Debug("year selected", "year", year)
}

// SelectDay reports the date built from the displayed month and day. The
// calendar itself does not change.
func (c *Calendar) SelectDay(day int) {
	if day < 1 || day > dates.DaysIn(c.cursor.Year, c.cursor.Month) {
		return
	}
	d := dates.New(c.cursor.Year, c.cursor.Month, day)
	c.log.Debug("day selected", "date", d.String())
	if c.props.OnDateValueChange != nil {
		c.props.OnDateValueChange(d)
	}
}

// ToggleYearPicker swaps between the day grid and the year grid.
func (c *Calendar) ToggleYearPicker() {
	c.yearPickerOpen = !c.yearPickerOpen
	if c.yearPickerOpen {
		c.focusYear = c.cursor.Year
		if c.focusYear < c.yearRangeStart || c.focusYear >= c.yearRangeStart+yearsPerView {
			c.focusYear = c.yearRangeStart
		}
	}
}

func (c *Calendar) isSelected(day int) bool {
	d := c.props.DateValue
	return d != nil && d.Day == day && d.Month == c.cursor.Month && d.Year == c.cursor.Year
}

// moveFocusDay moves the keyboard highlight by n days, following it into
// neighbouring months.
func (c *Calendar) moveFocusDay(n int) {
	target := dates.AddDays(dates.New(c.cursor.Year, c.cursor.Month, c.focusDay), n)
	c.cursor = dates.FirstOfMonth(target)
	c.focusDay = target.Day
}

func (c *Calendar) moveFocusYear(n int) {
	c.focusYear += n
	for c.focusYear < c.yearRangeStart {
		c.yearRangeStart -= yearsPerView
	}
	for c.focusYear >= c.yearRangeStart+yearsPerView {
		c.yearRangeStart += yearsPerView
	}
}

// Update handles Bubble Tea messages
func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.focused {
			return c, nil
		}
		c.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		r := c.hit(msg)
		if r == nil {
			return c, nil
		}
		switch r.ID {
		case calToggleID:
			c.ToggleYearPicker()
		case calPrevID:
			if c.yearPickerOpen {
				c.PrevYears()
			} else {
				c.PrevMonth()
			}
		case calNextID:
			if c.yearPickerOpen {
				c.NextYears()
			} else {
				c.NextMonth()
			}
		case calDayID:
			c.focusDay = targetIndex(r)
			c.SelectDay(targetIndex(r))
		case calYearID:
			c.SelectYear(targetIndex(r))
		}
	}
	return c, nil
}

func (c *Calendar) handleKey(msg tea.KeyMsg) {
	key := msg.String()
	if key == "y" {
		c.ToggleYearPicker()
		return
	}

	if c.yearPickerOpen {
		switch key {
		case "left":
			c.moveFocusYear(-1)
		case "right":
			c.moveFocusYear(1)
		case "up":
			c.moveFocusYear(-yearColumns)
		case "down":
			c.moveFocusYear(yearColumns)
		case "pgup":
			c.PrevYears()
		case "pgdown":
			c.NextYears()
		case "enter", " ", "space":
			c.SelectYear(c.focusYear)
		}
		return
	}

	switch key {
	case "left":
		c.moveFocusDay(-1)
	case "right":
		c.moveFocusDay(1)
	case "up":
		c.moveFocusDay(-7)
	case "down":
		c.moveFocusDay(7)
	case "pgup":
		c.PrevMonth()
	case "pgdown":
		c.NextMonth()
	case "enter", " ", "space":
		c.SelectDay(c.focusDay)
	}
}

// View renders the calendar
func (c *Calendar) View() string {
	// The box border and padding shift the content by two columns and one row.
	cv := c.drawInset(2, 1)

	toggleGlyph := "▾"
	prevTitle, nextTitle := locale.CalendarPrevMonth, locale.CalendarNextMonth
	if c.yearPickerOpen {
		toggleGlyph = "▴"
		prevTitle, nextTitle = locale.CalendarPrevYears, locale.CalendarNextYears
	}

	title := fmt.Sprintf("%s %d", c.tr.Month(c.cursor.Month), c.cursor.Year)
	cv.text(calendarHeaderStyle.Render(title) + " ")
	cv.region(calToggleID, calendarNavStyle.Render(toggleGlyph), target{title: c.tr.T(locale.CalendarShowYears)})
	header := lipgloss.Width(title) + 2
	if gap := 7*3 - header - 4; gap > 0 {
		cv.text(strings.Repeat(" ", gap))
	}
	cv.region(calPrevID, calendarNavStyle.Render(" ‹"), target{title: c.tr.T(prevTitle)})
	cv.region(calNextID, calendarNavStyle.Render(" ›"), target{title: c.tr.T(nextTitle)})
	cv.newline()

	if c.yearPickerOpen {
		c.renderYears(cv)
	} else {
		c.renderDays(cv)
	}

	return c.measure(calendarBoxStyle.Render(cv.String()))
}

func (c *Calendar) renderDays(cv *canvas) {
	for _, wd := range c.tr.WeekdaysMondayFirst() {
		cv.text(calendarWeekdayStyle.Render(fmt.Sprintf("%2s ", wd)))
	}
	cv.newline()

	lead := dates.FirstWeekdayMonday(c.cursor.Year, c.cursor.Month)
	days := dates.DaysIn(c.cursor.Year, c.cursor.Month)
	col := 0
	for i := 0; i < lead; i++ {
		cv.text("   ")
		col++
	}
	for day := 1; day <= days; day++ {
		style := calendarCellStyle
		switch {
		case c.isSelected(day):
			style = calendarSelectStyle
		case c.focused && day == c.focusDay:
			style = calendarFocusStyle
		}
		cv.region(calDayID, style.Render(fmt.Sprintf("%2d", day)), target{index: day, title: dates.Format(dates.New(c.cursor.Year, c.cursor.Month, day))})
		cv.text(" ")
		col++
		if col == 7 {
			cv.newline()
			col = 0
		}
	}
}

func (c *Calendar) renderYears(cv *canvas) {
	for i := 0; i < yearsPerView; i++ {
		year := c.yearRangeStart + i
		style := calendarCellStyle
		switch {
		case year == c.cursor.Year:
			style = calendarSelectStyle
		case c.focused && year == c.focusYear:
			style = calendarFocusStyle
		}
		label := strconv.Itoa(year)
		cv.region(calYearID, style.Render(fmt.Sprintf("%4s", label)), target{index: year, title: label})
		cv.text(" ")
		if (i+1)%yearColumns == 0 {
			cv.newline()
		}
	}
}
