package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

const (
	defaultFieldWidth = 40
	compactFieldWidth = 24
	// fieldInset is the border plus padding on each side of a field box.
	fieldInset = 2
)

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(theme.Neutral50)
	adornmentStyle   = lipgloss.NewStyle().Foreground(theme.Black)
	disabledStyle    = lipgloss.NewStyle().Foreground(theme.Neutral25)
)

// fieldWidth resolves the outer width of a field.
func fieldWidth(fullWidth bool, width int) int {
	if !fullWidth {
		return compactFieldWidth
	}
	if width <= 0 {
		return defaultFieldWidth
	}
	return width
}

// fieldBox renders a bordered single-line field of the given outer width:
// content on the left, adornment glyphs on the right. It returns the box and
// the column, relative to the box, of each adornment.
func fieldBox(content string, adornments []string, width int, focused, invalid, disabled bool) (string, []int) {
	inner := width - 2*fieldInset
	if inner < 1 {
		inner = 1
	}

	adornW := 0
	for i, a := range adornments {
		if i > 0 {
			adornW++
		}
		adornW += lipgloss.Width(a)
	}

	contentW := inner - adornW
	if adornW > 0 {
		contentW--
	}
	if contentW < 0 {
		contentW = 0
	}
	content = ansi.Truncate(content, contentW, "…")
	if pad := contentW - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}

	cols := make([]int, len(adornments))
	var b strings.Builder
	b.WriteString(content)
	col := fieldInset + contentW
	if adornW > 0 {
		b.WriteString(" ")
		col++
	}
	style := adornmentStyle
	if disabled {
		style = disabledStyle
	}
	for i, a := range adornments {
		if i > 0 {
			b.WriteString(" ")
			col++
		}
		cols[i] = col
		b.WriteString(style.Render(a))
		col += lipgloss.Width(a)
	}

	box := theme.FieldBorder(focused, invalid, disabled).Width(width - 2).Render(b.String())
	return box, cols
}

// fieldLine is the row of a field box that holds its content.
const fieldLine = 1

// writeLabel adds the field label line, if any.
func writeLabel(c *canvas, label string, required bool) {
	if label == "" {
		return
	}
	c.text(theme.FieldLabel(label, required))
	c.newline()
}

// writeFeedback adds the error or helper line under a field, if any.
func writeFeedback(c *canvas, errorText, helperText string, disabled bool) {
	fb := theme.Feedback(errorText, helperText)
	if fb == "" {
		return
	}
	if disabled && errorText == "" {
		fb = disabledStyle.Render(helperText)
	}
	c.newline()
	c.text(fb)
	c.newline()
}

// listBox renders lines inside a bordered dropdown of the given outer width.
// Row i+1 of the result holds lines[i], padded to the full inner width and
// styled by style(i).
func listBox(lines []string, width int, style func(i int) lipgloss.Style) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		l = " " + ansi.Truncate(l, inner-1, "…")
		if pad := inner - lipgloss.Width(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		out[i] = style(i).Render(l)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Neutral25).
		Render(strings.Join(out, "\n"))
}
