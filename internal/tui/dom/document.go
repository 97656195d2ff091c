// Package dom is the shared document every widget of a program attaches to.
//
// It stands in for the pieces of a browser document the widgets rely on:
// document-level listeners that widgets add while they are open, the
// currently focused element, and overlay mount points shared by portals.
// A Document is not safe for concurrent use; Bubble Tea calls Update from a
// single goroutine.
package dom

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/xid"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

// EventKind selects which messages a listener receives.
type EventKind int

const (
	// PointerDown receives left button presses.
	PointerDown EventKind = iota
	// KeyDown receives key presses.
	KeyDown
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case KeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Listener handles a dispatched message.
type Listener func(msg tea.Msg) tea.Cmd

// Registration is one listener added by one owner. Remove it to stop
// receiving events.
type Registration struct {
	doc     *Document
	id      int
	kind    EventKind
	owner   string
	fn      Listener
	removed bool
}

// Remove detaches the listener. Calling it more than once is a no-op.
func (r *Registration) Remove() {
	if r == nil || r.removed {
		return
	}
	r.removed = true
	r.doc.remove(r)
}

// Active reports whether the registration still receives events.
func (r *Registration) Active() bool {
	return r != nil && !r.removed
}

// Document owns listeners, focus and mount points for one program.
type Document struct {
	listeners map[EventKind][]*Registration
	nextID    int
	focused   string
	mounts    map[string]*MountPoint
	order     []string
	width     int
	height    int
	log       *slog.Logger
}

// New creates an empty document.
func New() *Document {
	return &Document{
		listeners: make(map[EventKind][]*Registration),
		mounts:    make(map[string]*MountPoint),
		log:       logger.GetLogger().With("component", "dom"),
	}
}

// NewID returns a unique element id with the given prefix.
func NewID(prefix string) string {
	return prefix + "-" + xid.New().String()
}

// AddListener registers fn for kind on behalf of owner.
func (d *Document) AddListener(kind EventKind, owner string, fn Listener) *Registration {
	d.nextID++
	reg := &Registration{doc: d, id: d.nextID, kind: kind, owner: owner, fn: fn}
	d.listeners[kind] = append(d.listeners[kind], reg)
	d.log.Debug("listener added", "kind", kind.String(), "owner", owner)
	return reg
}

func (d *Document) remove(reg *Registration) {
	regs := d.listeners[reg.kind]
	for i, r := range regs {
		if r.id == reg.id {
			d.listeners[reg.kind] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	d.log.Debug("listener removed", "kind", reg.kind.String(), "owner", reg.owner)
}

// ListenerCount returns the number of active listeners of kind.
func (d *Document) ListenerCount(kind EventKind) int {
	return len(d.listeners[kind])
}

// OwnerListenerCount returns how many listeners of kind owner holds.
func (d *Document) OwnerListenerCount(kind EventKind, owner string) int {
	n := 0
	for _, r := range d.listeners[kind] {
		if r.owner == owner {
			n++
		}
	}
	return n
}

// Dispatch delivers msg to the document listeners it concerns. Listeners
// may remove themselves or others while running; the set is fixed before the
// first one is called, and removed ones are skipped.
func (d *Document) Dispatch(msg tea.Msg) tea.Cmd {
	var kind EventKind
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		kind = PointerDown
	case tea.KeyMsg:
		kind = KeyDown
	default:
		return nil
	}

	regs := d.listeners[kind]
	if len(regs) == 0 {
		return nil
	}
	snapshot := make([]*Registration, len(regs))
	copy(snapshot, regs)

	var cmds []tea.Cmd
	for _, reg := range snapshot {
		if reg.removed {
			continue
		}
		if cmd := reg.fn(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Focus makes id the active element.
func (d *Document) Focus(id string) {
	if d.focused != id {
		d.log.Debug("focus", "from", d.focused, "to", id)
	}
	d.focused = id
}

// Blur clears the active element if it is id. An empty id clears
// unconditionally.
func (d *Document) Blur(id string) {
	if id == "" || d.focused == id {
		d.focused = ""
	}
}

// ActiveElement returns the focused element id, or "" when nothing is focused.
func (d *Document) ActiveElement() string {
	return d.focused
}

// HasFocus reports whether id is the active element.
func (d *Document) HasFocus(id string) bool {
	return id != "" && d.focused == id
}

// FocusWithin reports whether the active element is one of ids or an element
// whose id ends with "-" followed by one of ids (option-3-<widget id>).
func (d *Document) FocusWithin(ids ...string) bool {
	if d.focused == "" {
		return false
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if d.focused == id || strings.HasSuffix(d.focused, "-"+id) {
			return true
		}
	}
	return false
}

// SetViewport records the terminal size overlays are laid out in.
func (d *Document) SetViewport(width, height int) {
	d.width, d.height = width, height
}

// Viewport returns the size given to SetViewport, zero until then.
func (d *Document) Viewport() (width, height int) {
	return d.width, d.height
}
