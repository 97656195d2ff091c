package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelative(t *testing.T) {
	// Wednesday
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  Date
	}{
		{"t", New(2025, time.January, 15)},
		{"today", New(2025, time.January, 15)},
		{"TM", New(2025, time.January, 16)},
		{"+3d", New(2025, time.January, 18)},
		{"+2w", New(2025, time.January, 29)},
		{"mon", New(2025, time.January, 20)},
		{"wed", New(2025, time.January, 22)},
		{"2024-02-29", New(2024, time.February, 29)},
		{"01/03/2025", New(2025, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelative(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRelativeErrors(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "+0d", "+xd", "+3y", "someday", "2025-02-30", "30/02/2025"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRelative(input, now)
			assert.Error(t, err)
		})
	}
}
