package components

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

const tabID = "tab"

var (
	tabStyle        = lipgloss.NewStyle().Foreground(theme.Black).Padding(0, 2)
	tabActiveStyle  = tabStyle.Background(theme.Orange).Foreground(theme.White)
	tabFocusedStyle = tabStyle.Background(theme.Neutral5)
)

// Tab is one entry of a Tabs bar.
type Tab struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// TabsProps configure Tabs. Value is owned by the caller.
type TabsProps struct {
	Tabs          []Tab
	Value         string
	OnValueChange func(value string)
	Orientation   Orientation
	FullWidth     bool
}

// Tabs is a row (or column) of mutually exclusive tabs.
type Tabs struct {
	frame
	props   TabsProps
	log     *slog.Logger
	width   int
	focused bool
}

// NewTabs creates a tab bar.
func NewTabs(props TabsProps) *Tabs {
	if props.Orientation == "" {
		props.Orientation = Horizontal
	}
	return &Tabs{
		frame: newFrame(),
		props: props,
		log:   logger.GetLogger().With("component", "tabs"),
	}
}

func (t *Tabs) Focus()        { t.focused = true }
func (t *Tabs) Blur()         { t.focused = false }
func (t *Tabs) Focused() bool { return t.focused }
func (t *Tabs) Value() string { return t.props.Value }

// SetValue re-supplies the selected tab.
func (t *Tabs) SetValue(v string) { t.props.Value = v }

// SetWidth sets the width FullWidth tabs share.
func (t *Tabs) SetWidth(width int) { t.width = width }

func (t *Tabs) index() int {
	for i, tab := range t.props.Tabs {
		if tab.Value == t.props.Value {
			return i
		}
	}
	return -1
}

// Select asks the caller to show tab i.
func (t *Tabs) Select(i int) {
	if i < 0 || i >= len(t.props.Tabs) {
		return
	}
	v := t.props.Tabs[i].Value
	t.log.Debug("value change", "value", v)
	if t.props.OnValueChange != nil {
		t.props.OnValueChange(v)
	}
}

// move selects the neighbouring tab, stopping at both ends.
func (t *Tabs) move(delta int) {
	i := t.index() + delta
	if t.index() < 0 {
		i = 0
	}
	if i < 0 || i >= len(t.props.Tabs) {
		return
	}
	t.Select(i)
}

// Update handles Bubble Tea messages
func (t *Tabs) Update(msg tea.Msg) (*Tabs, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		prev, next := "left", "right"
		if t.props.Orientation == Vertical {
			prev, next = "up", "down"
		}
		switch msg.String() {
		case prev:
			t.move(-1)
		case next:
			t.move(1)
		case "home":
			t.Select(0)
		case "end":
			t.Select(len(t.props.Tabs) - 1)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return t, nil
		}
		if r := t.hit(msg); r != nil && r.ID == tabID {
			t.Select(targetIndex(r))
		}
	}
	return t, nil
}

func (t *Tabs) styleFor(i int) lipgloss.Style {
	switch {
	case t.props.Tabs[i].Value == t.props.Value:
		return tabActiveStyle
	case t.focused:
		return tabFocusedStyle
	}
	return tabStyle
}

// View renders the tabs
func (t *Tabs) View() string {
	c := t.draw()
	n := len(t.props.Tabs)
	if n == 0 {
		return t.measure("")
	}

	if t.props.Orientation == Vertical {
		w := 0
		for _, tab := range t.props.Tabs {
			w = max(w, lipgloss.Width(tab.Label)+4)
		}
		for i, tab := range t.props.Tabs {
			c.region(tabID, t.styleFor(i).Width(w).Render(tab.Label), target{index: i, title: tab.Label})
			c.newline()
		}
		return t.measure(c.String())
	}

	cell := 0
	if t.props.FullWidth && t.width > 0 {
		cell = t.width / n
	}
	for i, tab := range t.props.Tabs {
		style := t.styleFor(i)
		if cell > 0 {
			style = style.Width(cell).Align(lipgloss.Center)
		}
		c.region(tabID, style.Render(tab.Label), target{index: i, title: tab.Label})
	}
	return t.measure(c.String())
}
