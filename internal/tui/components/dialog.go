package components

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// DialogSize is the maximum width variant of a dialog.
type DialogSize string

const (
	DialogSizeDefault DialogSize = "default"
	DialogSizeSm      DialogSize = "sm"
	DialogSizeLg      DialogSize = "lg"
	DialogSizeXl      DialogSize = "xl"
	DialogSizeFull    DialogSize = "full"
)

// Backdrop is the look of the screen behind a dialog.
type Backdrop string

const (
	BackdropDefault Backdrop = "default"
	BackdropDark    Backdrop = "dark"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Neutral25).
			Padding(1, 2)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Black)
)

// dialogWidth resolves the outer width of size inside a viewport of the
// given width; 0 means unknown.
func dialogWidth(size DialogSize, viewport int) int {
	var w int
	switch size {
	case DialogSizeSm:
		w = 40
	case DialogSizeLg:
		w = 60
	case DialogSizeXl:
		w = 72
	case DialogSizeFull:
		if viewport <= 0 {
			return 76
		}
		return viewport * 95 / 100
	default:
		w = 50
	}
	if viewport > 0 && w > viewport {
		w = viewport
	}
	return w
}

func backdropOptions(b Backdrop) []lipgloss.WhitespaceOption {
	if b == BackdropDark {
		return []lipgloss.WhitespaceOption{
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(theme.Neutral75),
		}
	}
	return []lipgloss.WhitespaceOption{
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(theme.Neutral25),
	}
}

// DialogProps configure a Dialog. Open is owned by the caller, who closes
// the dialog with SetOpen(false) from OnClose.
type DialogProps struct {
	Open     bool
	Title    string
	Body     string
	Size     DialogSize
	Backdrop Backdrop
	// OnClose is called on Escape and on clicks on the backdrop.
	OnClose     func()
	ContainerID string
}

// Dialog is a modal box centered over a backdrop. It lives in a portal, so
// hosts draw it from the document's overlays.
type Dialog struct {
	frame
	doc    *dom.Document
	props  DialogProps
	portal *Portal
	log    *slog.Logger
}

// NewDialog creates a dialog attached to doc, mounted if props.Open.
func NewDialog(doc *dom.Document, props DialogProps) *Dialog {
	if props.Size == "" {
		props.Size = DialogSizeDefault
	}
	if props.Backdrop == "" {
		props.Backdrop = BackdropDefault
	}
	d := &Dialog{
		frame: newFrame(),
		doc:   doc,
		props: props,
	}
	d.portal = NewPortal(doc, PortalProps{
		ContainerID: props.ContainerID,
		OnClose:     d.requestClose,
		Inside: func(x, y int) bool {
			return d.Bounds().Contains(x, y)
		},
	}, d.render)
	d.log = logger.GetLogger().With("component", "dialog", "id", d.portal.ID())
	d.portal.SetOpen(props.Open)
	return d
}

// IsOpen reports whether the dialog is mounted.
func (d *Dialog) IsOpen() bool { return d.portal.IsOpen() }

// Portal returns the portal holding the dialog.
func (d *Dialog) Portal() *Portal { return d.portal }

// SetOpen re-supplies the open state.
func (d *Dialog) SetOpen(open bool) {
	d.props.Open = open
	d.portal.SetOpen(open)
}

// SetTitle replaces the title.
func (d *Dialog) SetTitle(title string) { d.props.Title = title }

// SetBody replaces the body text.
func (d *Dialog) SetBody(body string) { d.props.Body = body }

// SetSize changes the size variant.
func (d *Dialog) SetSize(size DialogSize) { d.props.Size = size }

// SetBackdrop changes the backdrop variant.
func (d *Dialog) SetBackdrop(b Backdrop) { d.props.Backdrop = b }

func (d *Dialog) requestClose() {
	d.log.Debug("close requested")
	if d.props.OnClose != nil {
		d.props.OnClose()
	}
}

// box renders the dialog itself, without backdrop.
func (d *Dialog) box(viewport int) string {
	width := dialogWidth(d.props.Size, viewport)
	inner := width - 2 - 4
	if inner < 1 {
		inner = 1
	}
	var content string
	if d.props.Title != "" {
		content = dialogTitleStyle.Render(d.props.Title)
		if d.props.Body != "" {
			content += "\n\n"
		}
	}
	content += lipgloss.NewStyle().Width(inner).Render(d.props.Body)
	return dialogStyle.Width(width - 2).Render(content)
}

// render lays the box over the full viewport. Without a viewport the box is
// returned alone.
func (d *Dialog) render() string {
	vw, vh := d.doc.Viewport()
	box := d.measure(d.box(vw))
	if vw <= 0 || vh <= 0 {
		d.SetOrigin(0, 0)
		return box
	}
	d.SetOrigin(max(0, (vw-d.width)/2), max(0, (vh-d.height)/2))
	return lipgloss.Place(vw, vh, lipgloss.Center, lipgloss.Center, box, backdropOptions(d.props.Backdrop)...)
}

// View renders the dialog as the portal shows it, or "" when closed.
func (d *Dialog) View() string {
	if !d.IsOpen() {
		return ""
	}
	return d.portal.View()
}
