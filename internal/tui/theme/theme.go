// Package theme is the fixed widgetkit palette and the styles derived from it.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette colors.
var (
	Orange      = lipgloss.Color("#FF6418")
	OrangeLight = lipgloss.Color("#FFD0B9")
	LightYellow = lipgloss.Color("#FFE792")

	Black     = lipgloss.Color("#1A1A1A")
	White     = lipgloss.Color("#FFFFFF")
	Neutral5  = lipgloss.Color("#F3F3F3")
	Neutral25 = lipgloss.Color("#C4C4C4")
	Neutral50 = lipgloss.Color("#8C8C8C")
	Neutral75 = lipgloss.Color("#555555")

	Red    = lipgloss.Color("#E5484D")
	Green  = lipgloss.Color("#30A46C")
	Blue   = lipgloss.Color("#0091FF")
	Yellow = lipgloss.Color("#F5D90A")
)

// Severity is the feedback level shared by Alert and Chip.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// SeverityColor returns the accent color of s. Unknown severities use info.
func SeverityColor(s Severity) lipgloss.Color {
	switch s {
	case SeveritySuccess:
		return Green
	case SeverityWarning:
		return LightYellow
	case SeverityError:
		return Red
	default:
		return Blue
	}
}

// SeverityBackground returns the pale fill behind an alert of severity s.
func SeverityBackground(s Severity) lipgloss.Color {
	switch s {
	case SeveritySuccess:
		return lipgloss.Color("#DFF5E8")
	case SeverityWarning:
		return lipgloss.Color("#FFF7D8")
	case SeverityError:
		return lipgloss.Color("#FFDFDC")
	default:
		return lipgloss.Color("#DFF7FF")
	}
}

// SeverityIcon returns the glyph shown before alert titles.
func SeverityIcon(s Severity) string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityWarning:
		return "!"
	case SeverityError:
		return "✗"
	default:
		return "i"
	}
}

// Shared text styles.
var (
	LabelStyle    = lipgloss.NewStyle().Foreground(Black).Bold(true)
	RequiredStyle = lipgloss.NewStyle().Foreground(Red)
	ErrorStyle    = lipgloss.NewStyle().Foreground(Red)
	HelperStyle   = lipgloss.NewStyle().Foreground(Neutral50)
	MutedStyle    = lipgloss.NewStyle().Foreground(Neutral25)
	SelectedStyle = lipgloss.NewStyle().Background(Orange).Foreground(White)
	FocusedStyle  = lipgloss.NewStyle().Background(OrangeLight).Foreground(Black)
)

// FieldBorder returns the rounded border style of an input-like box.
func FieldBorder(focused, invalid, disabled bool) lipgloss.Style {
	color := Neutral25
	switch {
	case disabled:
		color = Neutral5
	case invalid:
		color = Red
	case focused:
		color = Orange
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}

// Feedback renders the line under a field: error text wins over helper text.
func Feedback(errorText, helperText string) string {
	if errorText != "" {
		return ErrorStyle.Render(errorText)
	}
	if helperText != "" {
		return HelperStyle.Render(helperText)
	}
	return ""
}

// FieldLabel renders a label with an optional required marker.
func FieldLabel(label string, required bool) string {
	if label == "" {
		return ""
	}
	out := LabelStyle.Render(label)
	if required {
		out += RequiredStyle.Render(" *")
	}
	return out
}

// ApplyColorMode sets the global color profile for a color setting
// (auto, always, never). Auto leaves lipgloss' detection alone.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
