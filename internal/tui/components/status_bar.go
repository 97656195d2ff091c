package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

var statusBarStyle = lipgloss.NewStyle().Foreground(theme.Neutral50)

// StatusBar is a one-line bar: a message on the left, an optional detail on
// the right. An error takes the message's place until it is cleared.
type StatusBar struct {
	width   int
	message string
	detail  string
	err     error
	tr      *locale.Translator
}

// NewStatusBar returns an empty bar that labels errors in lang.
func NewStatusBar(lang string) *StatusBar {
	return &StatusBar{tr: locale.New(lang)}
}

func (sb *StatusBar) SetWidth(width int)      { sb.width = width }
func (sb *StatusBar) SetMessage(msg string)   { sb.message = msg }
func (sb *StatusBar) SetDetail(detail string) { sb.detail = detail }
func (sb *StatusBar) SetError(err error)      { sb.err = err }
func (sb *StatusBar) Message() string         { return sb.message }
func (sb *StatusBar) Err() error              { return sb.err }

// View renders the bar. The left side is cut with an ellipsis when both
// sides do not fit.
func (sb *StatusBar) View() string {
	left := sb.message
	if sb.err != nil {
		left = theme.ErrorStyle.Render(sb.tr.Tf(locale.StatusError, map[string]any{"Error": sb.err.Error()}))
	}
	right := sb.detail

	room := sb.width - lipgloss.Width(right) - 1
	if right == "" {
		room = sb.width
	}
	if room < 1 {
		return statusBarStyle.Render(ansi.Truncate(right, sb.width, ""))
	}
	left = ansi.Truncate(left, room, "…")

	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
