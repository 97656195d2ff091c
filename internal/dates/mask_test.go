package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskDigits(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"01", "01"},
		{"010", "01/0"},
		{"0101", "01/01"},
		{"01012", "01/01/2"},
		{"01012024", "01/01/2024"},
		{"010120245", "01/01/2024"},
		{"01/01/2024", "01/01/2024"},
		{"ab1c2d", "12"},
		{"01/01/20241", "01/01/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskDigits(tt.raw))
		})
	}
}
