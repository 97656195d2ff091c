package components

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// ButtonVariant is the color scheme of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonTertiary  ButtonVariant = "tertiary"
)

const buttonID = "button"

var buttonDisabledStyle = lipgloss.NewStyle().Background(theme.Neutral5).Foreground(theme.Neutral25)

// buttonStyle returns the fill of variant, with the focus colors when
// focused.
func buttonStyle(variant ButtonVariant, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch variant {
	case ButtonSecondary:
		if focused {
			return s.Background(theme.Neutral50).Foreground(theme.White)
		}
		return s.Background(theme.Orange).Foreground(theme.White)
	case ButtonTertiary:
		if focused {
			return s.Background(theme.Orange).Foreground(theme.White)
		}
		return s.Background(theme.Neutral5).Foreground(theme.Black)
	default:
		if focused {
			return s.Background(theme.Orange).Foreground(theme.White)
		}
		return s.Background(theme.Black).Foreground(theme.White)
	}
}

// ButtonProps configure a Button.
type ButtonProps struct {
	Label     string
	Variant   ButtonVariant
	FullWidth bool
	Disabled  bool
	// Loading replaces the icons with a spinner and disables the button.
	Loading   bool
	StartIcon string
	EndIcon   string
	OnClick   func()
	Lang      string
}

// Button is a clickable label.
type Button struct {
	frame
	props   ButtonProps
	tr      *locale.Translator
	log     *slog.Logger
	width   int
	focused bool
	spinner spinner.Model
}

// NewButton creates a button.
func NewButton(props ButtonProps) *Button {
	if props.Variant == "" {
		props.Variant = ButtonPrimary
	}
	return &Button{
		frame:   newFrame(),
		props:   props,
		tr:      locale.New(props.Lang),
		log:     logger.GetLogger().With("component", "button"),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Init starts the spinner of a loading button.
func (b *Button) Init() tea.Cmd {
	if !b.props.Loading {
		return nil
	}
	return b.spinner.Tick
}

func (b *Button) Focus()        { b.focused = true }
func (b *Button) Blur()         { b.focused = false }
func (b *Button) Focused() bool { return b.focused }

// SetWidth sets the outer width used when FullWidth is set.
func (b *Button) SetWidth(width int) { b.width = width }

// SetLabel replaces the label.
func (b *Button) SetLabel(label string) { b.props.Label = label }

// SetDisabled enables or disables the button.
func (b *Button) SetDisabled(disabled bool) { b.props.Disabled = disabled }

// SetLoading switches the spinner on or off. The returned command starts it.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	b.props.Loading = loading
	return b.Init()
}

// Loading reports whether the spinner is shown.
func (b *Button) Loading() bool { return b.props.Loading }

// inactive reports whether clicks are ignored.
func (b *Button) inactive() bool {
	return b.props.Disabled || b.props.Loading
}

// Click fires OnClick unless the button is disabled or loading.
func (b *Button) Click() {
	if b.inactive() {
		return
	}
	b.log.Debug("click", "label", b.props.Label)
	if b.props.OnClick != nil {
		b.props.OnClick()
	}
}

// Update handles Bubble Tea messages
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !b.props.Loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		if !b.focused {
			return b, nil
		}
		switch msg.String() {
		case "enter", " ", "space":
			b.Click()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return b, nil
		}
		if r := b.hit(msg); r != nil && r.ID == buttonID {
			b.Click()
		}
	}
	return b, nil
}

func (b *Button) content() string {
	if b.props.Loading {
		label := b.props.Label
		if label == "" {
			label = b.tr.T(locale.Loading)
		}
		return b.spinner.View() + " " + label
	}
	out := b.props.Label
	if b.props.StartIcon != "" {
		out = joinNonEmpty(b.props.StartIcon, out)
	}
	if b.props.EndIcon != "" {
		out = joinNonEmpty(out, b.props.EndIcon)
	}
	return out
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

// View renders the button
func (b *Button) View() string {
	c := b.draw()
	style := buttonStyle(b.props.Variant, b.focused)
	if b.inactive() {
		style = buttonDisabledStyle
	}
	// Icon-only buttons get tighter padding.
	if b.props.Label == "" && !b.props.Loading {
		style = style.Padding(0, 1)
	} else {
		style = style.Padding(0, 2)
	}
	if b.props.FullWidth {
		style = style.Width(fieldWidth(true, b.width)).Align(lipgloss.Center)
	}
	title := b.props.Label
	if b.props.Loading {
		title = b.tr.T(locale.Loading)
	}
	c.region(buttonID, style.Render(b.content()), target{title: title})
	return b.measure(c.String())
}
