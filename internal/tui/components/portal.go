package components

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

// PortalProps configure a Portal.
type PortalProps struct {
	// ContainerID names the shared mount point; dom.DefaultContainerID when
	// empty.
	ContainerID string
	// OnClose, when set, is called on Escape and on a pointer-down outside
	// the content.
	OnClose func()
	// Inside overrides the hit test used to decide what counts as outside.
	// By default it is the rendered content.
	Inside func(x, y int) bool
}

// Portal renders content in a shared overlay container instead of in place.
type Portal struct {
	frame
	doc     *dom.Document
	id      string
	props   PortalProps
	content func() string
	log     *slog.Logger

	open    bool
	pointer *dom.Registration
	keys    *dom.Registration
}

// NewPortal creates a closed portal whose overlay is produced by content.
func NewPortal(doc *dom.Document, props PortalProps, content func() string) *Portal {
	if props.ContainerID == "" {
		props.ContainerID = dom.DefaultContainerID
	}
	id := dom.NewID("portal")
	return &Portal{
		frame:   newFrame(),
		doc:     doc,
		id:      id,
		props:   props,
		content: content,
		log:     logger.GetLogger().With("component", "portal", "id", id),
	}
}

// ID returns the portal's owner id in its mount point.
func (p *Portal) ID() string { return p.id }

// ContainerID returns the mount point the portal attaches to.
func (p *Portal) ContainerID() string { return p.props.ContainerID }

// IsOpen reports whether the content is mounted.
func (p *Portal) IsOpen() bool { return p.open }

// SetOpen opens or closes the portal.
func (p *Portal) SetOpen(open bool) {
	if open {
		p.Open()
	} else {
		p.Close()
	}
}

// Open mounts the content and, when OnClose is set, starts listening for
// Escape and outside pointer-downs.
func (p *Portal) Open() {
	if p.open {
		return
	}
	p.open = true
	p.doc.Mount(p.props.ContainerID, p.id, p.View)
	if p.props.OnClose != nil {
		p.pointer = p.doc.AddListener(dom.PointerDown, p.id, p.handlePointer)
		p.keys = p.doc.AddListener(dom.KeyDown, p.id, p.handleKey)
	}
	p.log.Debug("opened", "container", p.props.ContainerID)
}

// Close unmounts the content and releases the listeners.
func (p *Portal) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.pointer.Remove()
	p.keys.Remove()
	p.pointer, p.keys = nil, nil
	p.doc.Unmount(p.props.ContainerID, p.id)
	p.log.Debug("closed", "container", p.props.ContainerID)
}

func (p *Portal) inside(x, y int) bool {
	if p.props.Inside != nil {
		return p.props.Inside(x, y)
	}
	return p.Bounds().Contains(x, y)
}

func (p *Portal) handlePointer(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok || p.inside(m.X, m.Y) {
		return nil
	}
	p.props.OnClose()
	return nil
}

func (p *Portal) handleKey(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		p.props.OnClose()
	}
	return nil
}

// View renders the content and, once the document knows its viewport,
// centers the portal in it the way hosts place overlays.
func (p *Portal) View() string {
	s := p.measure(p.content())
	if w, h := p.doc.Viewport(); w > 0 && h > 0 {
		p.SetOrigin(max(0, (w-p.width)/2), max(0, (h-p.height)/2))
	}
	return s
}
