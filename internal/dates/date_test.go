package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "01/01/2024", Format(New(2024, time.January, 1)))
	assert.Equal(t, "29/02/2024", Format(New(2024, time.February, 29)))
	assert.Equal(t, "31/12/0999", Format(New(999, time.December, 31)))
}

func TestParseRoundTrip(t *testing.T) {
	start := New(1999, time.January, 1)
	for i := 0; i < 366*6; i++ {
		d := AddDays(start, i)
		got, err := Parse(Format(d))
		require.NoError(t, err, "date %v", d)
		assert.Equal(t, d, got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"31/02/2024", ErrInvalidDate},
		{"00/01/2020", ErrInvalidDate},
		{"12/13/2024", ErrInvalidDate},
		{"29/02/2023", ErrInvalidDate},
		{"01/01/0000", ErrInvalidDate},
		{"1/1/2024", ErrInvalidFormat},
		{"01-01-2024", ErrInvalidFormat},
		{"01/01/24", ErrInvalidFormat},
		{"aa/bb/cccc", ErrInvalidFormat},
		{"01/01/2024 ", ErrInvalidFormat},
		{"", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseAcceptsLeapDay(t *testing.T) {
	d, err := Parse("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, New(2024, time.February, 29), d)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2024, time.January))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2024, time.April))
	assert.Equal(t, 31, DaysIn(2024, time.December))
}

func TestFirstWeekdayMonday(t *testing.T) {
	// 1 January 2024 was a Monday
	assert.Equal(t, 0, FirstWeekdayMonday(2024, time.January))
	// 1 September 2024 was a Sunday
	assert.Equal(t, 6, FirstWeekdayMonday(2024, time.September))
	// 1 June 2024 was a Saturday
	assert.Equal(t, 5, FirstWeekdayMonday(2024, time.June))
}

func TestAddMonthsRollsYears(t *testing.T) {
	assert.Equal(t, New(2023, time.December, 1), AddMonths(New(2024, time.January, 15), -1))
	assert.Equal(t, New(2025, time.January, 1), AddMonths(New(2024, time.December, 31), 1))
	assert.Equal(t, New(2024, time.February, 1), AddMonths(New(2024, time.January, 31), 1))
}

func TestValid(t *testing.T) {
	assert.True(t, New(2024, time.February, 29).Valid())
	assert.False(t, New(2024, time.February, 30).Valid())
	assert.False(t, New(2024, 13, 1).Valid())
	assert.False(t, Date{}.Valid())
}

func TestFromTimeIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	late := time.Date(2024, time.March, 10, 23, 59, 0, 0, loc)
	assert.Equal(t, New(2024, time.March, 10), FromTime(late))
}
