// Package dates holds the calendar arithmetic and the DD/MM/YYYY text format
// shared by the Calendar and DatePicker widgets.
//
// Every computation goes through time.Date in UTC so a date never shifts by a
// day depending on the terminal's local zone.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the only textual date format accepted by the date widgets.
const Layout = "02/01/2006"

var (
	// ErrInvalidFormat is returned when the text is not DD/MM/YYYY digits.
	ErrInvalidFormat = errors.New("date must be DD/MM/YYYY")
	// ErrInvalidDate is returned when the digits do not name a real day.
	ErrInvalidDate = errors.New("not a calendar date")
)

// Date is a calendar day with no time of day attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date without normalizing it. Use Valid to check it.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates t to its calendar day in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now.
func Today(now time.Time) Date {
	return FromTime(now)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Equal compares year, month and day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Valid reports whether d names an existing day. time.Date normalizes
// overflowing fields (31/02 becomes 02/03), so a round trip catches them.
func (d Date) Valid() bool {
	if d.Year < 1 || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	return FromTime(d.Time()) == d
}

// String formats d as DD/MM/YYYY.
func (d Date) String() string {
	return Format(d)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Format renders d as DD/MM/YYYY.
func Format(d Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// Parse reads a DD/MM/YYYY string and rejects anything that is not a real day.
func Parse(s string) (Date, error) {
	if len(s) != len(Layout) || s[2] != '/' || s[5] != '/' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	day, ok := digits(s[0:2])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	month, ok := digits(s[3:5])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	year, ok := digits(s[6:10])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// DaysIn returns the number of days in month of year ("day 0 of next month").
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayMonday returns the column of day 1 in a week that starts on
// Monday: Monday is 0 and Sunday is 6.
func FirstWeekdayMonday(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// AddMonths moves d by n months and pins the result to day 1 so that
// 31 January + 1 month lands in February.
func AddMonths(d Date, n int) Date {
	return FromTime(time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// AddDays moves d by n days.
func AddDays(d Date, n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// FirstOfMonth returns day 1 of d's month.
func FirstOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}
