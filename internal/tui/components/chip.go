package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// ChipVariant is filled or outlined.
type ChipVariant string

const (
	ChipFilled   ChipVariant = "filled"
	ChipOutlined ChipVariant = "outlined"
)

// ChipProps configure a Chip.
type ChipProps struct {
	Label    string
	Variant  ChipVariant
	Severity theme.Severity
}

// Chip is a small status badge.
type Chip struct {
	props ChipProps
}

// NewChip creates a chip, filled info by default.
func NewChip(props ChipProps) *Chip {
	if props.Variant == "" {
		props.Variant = ChipFilled
	}
	if props.Severity == "" {
		props.Severity = theme.SeverityInfo
	}
	return &Chip{props: props}
}

func (c *Chip) style() lipgloss.Style {
	color := theme.SeverityColor(c.props.Severity)
	if c.props.Variant == ChipOutlined {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Foreground(color).
			Padding(0, 1)
	}
	fg := theme.White
	if c.props.Severity == theme.SeverityWarning {
		fg = theme.Black
	}
	return lipgloss.NewStyle().Background(color).Foreground(fg).Padding(0, 1)
}

// View renders the chip
func (c *Chip) View() string {
	return c.style().Render(c.props.Label)
}
