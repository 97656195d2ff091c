// Package mouse provides rectangle hit testing for widgets rendered as text.
//
// Widgets render first, then record the cells each interactive part occupies
// (render-then-measure). A press is resolved against the most recently added
// region that contains it.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a cell rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region is a named rectangle with optional data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of one rendered frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later regions win over earlier ones.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the top-most region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear drops all regions, typically at the start of a render.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// IsPress reports whether msg is a pointer-down of the left button.
func IsPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// IsMotion reports whether msg is pointer movement.
func IsMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}
