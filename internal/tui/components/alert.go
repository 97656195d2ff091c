package components

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

const (
	alertCompactWidth = 50
	alertCloseID      = "alert-close"
)

// AlertProps configure an Alert.
type AlertProps struct {
	Severity    theme.Severity
	Title       string
	Description string
	// Markdown renders Description through glamour.
	Markdown  bool
	FullWidth bool
	// Closable adds a close button that calls OnClose.
	Closable bool
	OnClose  func()
	Lang     string
}

// Alert is a colored feedback box with an icon, an optional title and a
// description.
type Alert struct {
	frame
	props   AlertProps
	tr      *locale.Translator
	log     *slog.Logger
	width   int
	focused bool
}

// NewAlert creates an alert, info by default.
func NewAlert(props AlertProps) *Alert {
	if props.Severity == "" {
		props.Severity = theme.SeverityInfo
	}
	return &Alert{
		frame: newFrame(),
		props: props,
		tr:    locale.New(props.Lang),
		log:   logger.GetLogger().With("component", "alert"),
	}
}

func (a *Alert) Focus()        { a.focused = true }
func (a *Alert) Blur()         { a.focused = false }
func (a *Alert) Focused() bool { return a.focused }

// SetWidth sets the width used when FullWidth is set.
func (a *Alert) SetWidth(width int) { a.width = width }

// SetDescription replaces the description.
func (a *Alert) SetDescription(text string) { a.props.Description = text }

// Close calls OnClose on a closable alert.
func (a *Alert) Close() {
	if !a.props.Closable || a.props.OnClose == nil {
		return
	}
	a.log.Debug("closed", "severity", string(a.props.Severity))
	a.props.OnClose()
}

// Update handles Bubble Tea messages
func (a *Alert) Update(msg tea.Msg) (*Alert, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.focused && (msg.String() == "enter" || msg.String() == "esc") {
			a.Close()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if r := a.hit(msg); r != nil && r.ID == alertCloseID {
			a.Close()
		}
	}
	return a, nil
}

func (a *Alert) outerWidth() int {
	if a.props.FullWidth && a.width > 0 {
		return a.width
	}
	if a.props.FullWidth {
		return defaultFieldWidth * 2
	}
	return alertCompactWidth
}

// markdownStyle follows the color profile so plain terminals get plain
// text.
func markdownStyle() string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return "ascii"
	}
	return "light"
}

// description renders the body, through glamour when asked. A renderer
// failure falls back to the raw text.
func (a *Alert) description(width int) string {
	plainText := lipgloss.NewStyle().Width(width).Render(a.props.Description)
	if !a.props.Markdown || a.props.Description == "" {
		return plainText
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		a.log.Warn("markdown renderer unavailable", "error", err)
		return plainText
	}
	out, err := r.Render(a.props.Description)
	if err != nil {
		a.log.Warn("markdown render failed", "error", err)
		return plainText
	}
	return tidyMarkdown(out)
}

// tidyMarkdown drops the blank frame and the document margin glamour adds.
func tidyMarkdown(s string) string {
	lines := splitLines(strings.Trim(s, "\n"))
	for i, l := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(l, "  "), " ")
	}
	return strings.Trim(joinLines(lines), "\n")
}

// View renders the alert
func (a *Alert) View() string {
	c := a.draw()
	width := a.outerWidth()
	color := theme.SeverityColor(a.props.Severity)

	// Padding 1 on each side, icon, a space, and the close column.
	bodyW := width - 2 - 2
	if a.props.Closable {
		bodyW -= 2
	}
	if bodyW < 1 {
		bodyW = 1
	}

	var body []string
	if a.props.Title != "" {
		body = append(body, lipgloss.NewStyle().Bold(true).Foreground(color).Render(a.props.Title))
	}
	if a.props.Description != "" {
		body = append(body, a.description(bodyW))
	}
	content := lipgloss.NewStyle().Foreground(color).Render(joinLines(body))

	icon := lipgloss.NewStyle().Foreground(color).Bold(true).Render(theme.SeverityIcon(a.props.Severity))
	row := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", lipgloss.NewStyle().Width(bodyW).Render(content))
	if a.props.Closable {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", "✕")
	}

	box := lipgloss.NewStyle().
		Background(theme.SeverityBackground(a.props.Severity)).
		Padding(0, 1).
		Width(width).
		Render(row)
	c.block("", box, nil)
	if a.props.Closable {
		c.mark(alertCloseID, width-2, 0, 1, 1, target{title: a.tr.T(locale.Close)})
	}
	return a.measure(c.String())
}
