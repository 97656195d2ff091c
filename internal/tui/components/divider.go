package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// DividerVariant is the line shade.
type DividerVariant string

const (
	DividerDefault DividerVariant = "default"
	DividerLight   DividerVariant = "light"
	DividerDark    DividerVariant = "dark"
)

// Orientation is shared by Divider and Tabs.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Divider is a horizontal or vertical rule of a given length.
type Divider struct {
	Variant     DividerVariant
	Orientation Orientation
	Length      int
}

func (d Divider) color() lipgloss.Color {
	switch d.Variant {
	case DividerLight:
		return theme.Neutral5
	case DividerDark:
		return theme.Neutral50
	default:
		return theme.Neutral25
	}
}

// View renders the divider
func (d Divider) View() string {
	n := d.Length
	if n <= 0 {
		n = 1
	}
	style := lipgloss.NewStyle().Foreground(d.color())
	if d.Orientation == Vertical {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", n), "\n"))
	}
	return style.Render(strings.Repeat("─", n))
}
