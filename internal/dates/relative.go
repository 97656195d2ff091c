package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRelative parses the shortcuts accepted by the command line:
// - "t" or "today" - today
// - "tm" or "tomorrow" - tomorrow
// - "mon" ... "sun" - next occurrence of weekday
// - "+3d" - 3 days from now
// - "+2w" - 2 weeks from now
// - "YYYY-MM-DD" - absolute date
// - "DD/MM/YYYY" - absolute date in the widget format
func ParseRelative(input string, now time.Time) (Date, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	today := Today(now)

	if input == "" {
		return Date{}, fmt.Errorf("empty input")
	}

	if len(input) == len(Layout) && input[2] == '/' {
		return Parse(input)
	}

	// Check for absolute date (YYYY-MM-DD)
	if len(input) == 10 && input[4] == '-' && input[7] == '-' {
		parsed, err := time.Parse(time.DateOnly, input)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return FromTime(parsed), nil
	}

	switch input {
	case "t", "today":
		return today, nil
	case "tm", "tomorrow":
		return AddDays(today, 1), nil
	}

	if strings.HasPrefix(input, "+") && len(input) >= 3 {
		unit := input[len(input)-1]
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil {
			return Date{}, fmt.Errorf("invalid offset %q: %w", input, err)
		}
		if n <= 0 {
			return Date{}, fmt.Errorf("offset must be positive: %s", input)
		}
		switch unit {
		case 'd':
			return AddDays(today, n), nil
		case 'w':
			return AddDays(today, n*7), nil
		default:
			return Date{}, fmt.Errorf("unknown offset unit %q (use d or w)", string(unit))
		}
	}

	weekdays := map[string]time.Weekday{
		"mon": time.Monday,
		"tue": time.Tuesday,
		"wed": time.Wednesday,
		"thu": time.Thursday,
		"fri": time.Friday,
		"sat": time.Saturday,
		"sun": time.Sunday,
	}
	if target, ok := weekdays[input]; ok {
		daysUntil := int(target - today.Weekday())
		// Today or earlier this week means next week
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return AddDays(today, daysUntil), nil
	}

	return Date{}, fmt.Errorf("%w: %s", ErrInvalidFormat, input)
}
