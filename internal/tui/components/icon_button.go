package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// IconSize scales the padding around an icon glyph.
type IconSize string

const (
	IconSizeSm IconSize = "sm"
	IconSizeMd IconSize = "md"
	IconSizeLg IconSize = "lg"
)

func iconPadding(size IconSize) int {
	switch size {
	case IconSizeSm:
		return 0
	case IconSizeLg:
		return 2
	default:
		return 1
	}
}

// IconButtonProps configure an IconButton. Alt is the accessible title.
type IconButtonProps struct {
	Icon     string
	Alt      string
	Size     IconSize
	Variant  ButtonVariant
	// Card marks a button drawn inside a card: it takes the card's
	// hover and focus colors instead of its own.
	Card     bool
	Disabled bool
	OnClick  func()
}

// IconButton is a button showing only a glyph.
type IconButton struct {
	frame
	props   IconButtonProps
	focused bool
}

// NewIconButton creates an icon button.
func NewIconButton(props IconButtonProps) *IconButton {
	if props.Size == "" {
		props.Size = IconSizeMd
	}
	if props.Variant == "" {
		props.Variant = ButtonPrimary
	}
	return &IconButton{frame: newFrame(), props: props}
}

func (b *IconButton) Focus()        { b.focused = true }
func (b *IconButton) Blur()         { b.focused = false }
func (b *IconButton) Focused() bool { return b.focused }

// SetDisabled enables or disables the button.
func (b *IconButton) SetDisabled(disabled bool) { b.props.Disabled = disabled }

// Click fires OnClick unless disabled.
func (b *IconButton) Click() {
	if b.props.Disabled || b.props.OnClick == nil {
		return
	}
	b.props.OnClick()
}

// Update handles Bubble Tea messages
func (b *IconButton) Update(msg tea.Msg) (*IconButton, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.focused && (msg.String() == "enter" || msg.String() == " " || msg.String() == "space") {
			b.Click()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && b.hit(msg) != nil {
			b.Click()
		}
	}
	return b, nil
}

func (b *IconButton) style() lipgloss.Style {
	var s lipgloss.Style
	switch {
	case b.props.Disabled:
		s = buttonDisabledStyle
	case b.props.Card && b.focused:
		s = lipgloss.NewStyle().Background(theme.Orange).Foreground(theme.White)
	case b.props.Card:
		s = lipgloss.NewStyle().Background(theme.Neutral25).Foreground(theme.Black)
	default:
		s = buttonStyle(b.props.Variant, b.focused)
	}
	return s.Padding(0, iconPadding(b.props.Size))
}

// View renders the icon button
func (b *IconButton) View() string {
	c := b.draw()
	c.region(buttonID, b.style().Render(b.props.Icon), target{title: b.props.Alt})
	return b.measure(c.String())
}
