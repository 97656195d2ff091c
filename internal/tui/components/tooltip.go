package components

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// TooltipPosition is where the bubble opens relative to its icon.
type TooltipPosition string

const (
	TooltipTop    TooltipPosition = "top"
	TooltipBottom TooltipPosition = "bottom"
	TooltipLeft   TooltipPosition = "left"
	TooltipRight  TooltipPosition = "right"
)

const (
	tooltipMinWidth = 18
	tooltipMaxWidth = 30

	tooltipIconID  = "tooltip-icon"
	tooltipCloseID = "tooltip-close"
)

var (
	tooltipIconStyle   = lipgloss.NewStyle().Foreground(theme.Neutral75).Bold(true)
	tooltipBubbleStyle = lipgloss.NewStyle().Background(theme.Neutral25).Foreground(theme.Black).Padding(0, 1)
	tooltipArrowStyle  = lipgloss.NewStyle().Foreground(theme.Neutral25)
)

// TooltipProps configure a Tooltip.
type TooltipProps struct {
	Content  string
	Position TooltipPosition
	Lang     string
}

// Tooltip is an info icon that toggles a bubble of text.
type Tooltip struct {
	frame
	doc   *dom.Document
	id    string
	props TooltipProps
	tr    *locale.Translator
	log   *slog.Logger

	open    bool
	outside *dom.Registration
}

// NewTooltip creates a closed tooltip attached to doc.
func NewTooltip(doc *dom.Document, props TooltipProps) *Tooltip {
	if props.Position == "" {
		props.Position = TooltipTop
	}
	id := dom.NewID("tooltip")
	return &Tooltip{
		frame: newFrame(),
		doc:   doc,
		id:    id,
		props: props,
		tr:    locale.New(props.Lang),
		log:   logger.GetLogger().With("component", "tooltip", "id", id),
	}
}

func (t *Tooltip) ID() string    { return t.id }
func (t *Tooltip) IsOpen() bool  { return t.open }
func (t *Tooltip) Focus()        { t.doc.Focus(t.id) }
func (t *Tooltip) Blur()         { t.doc.Blur(t.id) }
func (t *Tooltip) Focused() bool { return t.doc.HasFocus(t.id) }

// SetContent replaces the bubble text.
func (t *Tooltip) SetContent(s string) { t.props.Content = s }

// Toggle opens a closed tooltip and closes an open one.
func (t *Tooltip) Toggle() {
	if t.open {
		t.Close()
	} else {
		t.Open()
	}
}

// Open shows the bubble.
func (t *Tooltip) Open() {
	if t.open {
		return
	}
	t.open = true
	t.outside = t.doc.AddListener(dom.PointerDown, t.id, t.handleOutside)
	t.log.Debug("opened")
}

// Close hides the bubble.
func (t *Tooltip) Close() {
	if !t.open {
		return
	}
	t.open = false
	t.outside.Remove()
	t.outside = nil
	t.log.Debug("closed")
}

func (t *Tooltip) handleOutside(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok && !t.contains(m) {
		t.Close()
	}
	return nil
}

// Update handles Bubble Tea messages
func (t *Tooltip) Update(msg tea.Msg) (*Tooltip, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.Focused() {
			return t, nil
		}
		switch msg.String() {
		case "enter", " ", "space":
			t.Toggle()
		case "esc":
			t.Close()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return t, nil
		}
		r := t.hit(msg)
		if r == nil {
			return t, nil
		}
		switch r.ID {
		case tooltipIconID:
			t.Focus()
			t.Toggle()
		case tooltipCloseID:
			t.Close()
		}
	}
	return t, nil
}

// bubble renders the text box with its close button on the first row and
// returns the close button column inside it.
func (t *Tooltip) bubble() (string, int) {
	inner := lipgloss.Width(t.props.Content)
	if inner < tooltipMinWidth-4 {
		inner = tooltipMinWidth - 4
	}
	if inner > tooltipMaxWidth-4 {
		inner = tooltipMaxWidth - 4
	}
	wrapped := splitLines(lipgloss.NewStyle().Width(inner).Render(t.props.Content))
	rows := make([]string, len(wrapped))
	for i, l := range wrapped {
		if pad := inner - lipgloss.Width(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		if i == 0 {
			l += " ✕"
		} else {
			l += "  "
		}
		rows[i] = l
	}
	// One column of padding, the text, then the space before the glyph.
	return tooltipBubbleStyle.Render(joinLines(rows)), 1 + inner + 1
}

// View renders the icon and, when open, the bubble on the configured side.
func (t *Tooltip) View() string {
	c := t.draw()
	iconTitle := locale.TooltipShow
	if t.open {
		iconTitle = locale.TooltipHide
	}
	icon := tooltipIconStyle.Render("?")
	iconTarget := target{title: t.tr.T(iconTitle)}
	closeTarget := target{title: t.tr.T(locale.Close)}

	if !t.open {
		c.region(tooltipIconID, icon, iconTarget)
		return t.measure(c.String())
	}

	bubble, closeCol := t.bubble()
	bw := lipgloss.Width(bubble)
	bh := lipgloss.Height(bubble)
	center := strings.Repeat(" ", (bw-1)/2)

	switch t.props.Position {
	case TooltipBottom:
		c.mark(tooltipIconID, len(center), 0, 1, 1, iconTarget)
		c.text(center + icon)
		c.newline()
		c.text(center + tooltipArrowStyle.Render("▲"))
		c.newline()
		top := c.line()
		c.block("", bubble, nil)
		c.mark(tooltipCloseID, closeCol, top, 1, 1, closeTarget)

	case TooltipLeft, TooltipRight:
		mid := bh / 2
		rows := splitLines(bubble)
		for i, row := range rows {
			side := "  "
			if i == mid {
				if t.props.Position == TooltipLeft {
					side = tooltipArrowStyle.Render("▶") + icon
				} else {
					side = icon + tooltipArrowStyle.Render("◀")
				}
			}
			if t.props.Position == TooltipLeft {
				c.text(row + side)
			} else {
				c.text(side + row)
			}
			c.newline()
		}
		if t.props.Position == TooltipLeft {
			c.mark(tooltipIconID, bw+1, mid, 1, 1, iconTarget)
			c.mark(tooltipCloseID, closeCol, 0, 1, 1, closeTarget)
		} else {
			c.mark(tooltipIconID, 0, mid, 1, 1, iconTarget)
			c.mark(tooltipCloseID, 2+closeCol, 0, 1, 1, closeTarget)
		}

	default:
		c.block("", bubble, nil)
		c.mark(tooltipCloseID, closeCol, 0, 1, 1, closeTarget)
		c.text(center + tooltipArrowStyle.Render("▼"))
		c.newline()
		c.mark(tooltipIconID, len(center), c.line(), 1, 1, iconTarget)
		c.text(center + icon)
	}
	return t.measure(c.String())
}
