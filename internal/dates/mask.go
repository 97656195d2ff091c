package dates

import "strings"

// maxMaskDigits is DDMMYYYY.
const maxMaskDigits = 8

// MaskDigits keeps the digits of raw, caps them at eight and inserts the
// slashes of DD/MM/YYYY as the user types.
func MaskDigits(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == maxMaskDigits {
				break
			}
		}
	}

	d := digits.String()
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}
