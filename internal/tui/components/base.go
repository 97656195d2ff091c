package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/mouse"
)

// frame is the geometry shared by every interactive widget: where the host
// placed it, how large its last render was and which cells are clickable.
type frame struct {
	x, y          int
	width, height int
	hits          *mouse.HitMap
}

func newFrame() frame {
	return frame{hits: mouse.NewHitMap()}
}

// SetOrigin tells the widget where its next render starts on screen.
func (f *frame) SetOrigin(x, y int) {
	f.x, f.y = x, y
}

// Bounds returns the cells covered by the last render.
func (f *frame) Bounds() mouse.Rect {
	return mouse.Rect{X: f.x, Y: f.y, W: f.width, H: f.height}
}

// Regions returns the clickable parts recorded by the last render.
func (f *frame) Regions() []mouse.Region {
	return f.hits.Regions()
}

func (f *frame) contains(msg tea.MouseMsg) bool {
	return f.Bounds().Contains(msg.X, msg.Y)
}

func (f *frame) hit(msg tea.MouseMsg) *mouse.Region {
	return f.hits.Test(msg.X, msg.Y)
}

// measure records the size of a finished render and returns it unchanged.
func (f *frame) measure(view string) string {
	f.width = lipgloss.Width(view)
	f.height = lipgloss.Height(view)
	return view
}

// canvas assembles a render line by line while recording hit regions at
// their absolute screen position.
type canvas struct {
	f      *frame
	dx, dy int
	lines  []string
	cur    []string
	col    int
}

// draw starts a new render, dropping the regions of the previous one.
func (f *frame) draw() *canvas {
	return f.drawInset(0, 0)
}

// drawInset is draw for content that ends up shifted by dx, dy inside the
// widget, typically by a border and padding.
func (f *frame) drawInset(dx, dy int) *canvas {
	f.hits.Clear()
	return &canvas{f: f, dx: dx, dy: dy}
}

// text appends s to the current line.
func (c *canvas) text(s string) {
	c.cur = append(c.cur, s)
	c.col += lipgloss.Width(s)
}

// region appends s to the current line and records it as clickable.
func (c *canvas) region(id string, s string, data any) {
	w := lipgloss.Width(s)
	c.f.hits.AddRect(id, c.f.x+c.dx+c.col, c.f.y+c.dy+len(c.lines), w, 1, data)
	c.text(s)
}

// block appends a multi-line string, each line starting at column 0, and
// records every line of it under id when id is not empty.
func (c *canvas) block(id string, s string, data any) {
	c.blockFunc(s, func(int) (string, any, bool) {
		return id, data, id != ""
	})
}

// newline ends the current line. Empty lines are kept only when something
// was written, so consecutive calls do not stack blank rows.
func (c *canvas) newline() {
	if len(c.cur) == 0 {
		return
	}
	c.lines = append(c.lines, joinSegments(c.cur))
	c.cur = nil
	c.col = 0
}

// blank adds an empty line.
func (c *canvas) blank() {
	c.newline()
	c.lines = append(c.lines, "")
}

// String finishes the render. Callers pass the final view to measure.
func (c *canvas) String() string {
	c.newline()
	return joinLines(c.lines)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func joinSegments(segments []string) string {
	return strings.Join(segments, "")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// target is the payload of a hit region: which item was hit and the
// accessible title of the part.
type target struct {
	index int
	title string
}

// TitleAt returns the accessible title of the part under (x, y), if any.
func (f *frame) TitleAt(x, y int) string {
	r := f.hits.Test(x, y)
	if r == nil {
		return ""
	}
	if t, ok := r.Data.(target); ok {
		return t.title
	}
	return ""
}

func targetIndex(r *mouse.Region) int {
	if t, ok := r.Data.(target); ok {
		return t.index
	}
	return -1
}

// blockFunc appends a multi-line string and lets fn decide, line by line,
// whether the line is clickable.
func (c *canvas) blockFunc(s string, fn func(line int) (id string, data any, ok bool)) {
	c.newline()
	for i, line := range splitLines(s) {
		if id, data, ok := fn(i); ok {
			c.region(id, line, data)
		} else {
			c.text(line)
		}
		c.newline()
	}
}

// mark records a region relative to the canvas origin, for parts of a block
// that was rendered in one piece.
func (c *canvas) mark(id string, col, line, w, h int, data any) {
	c.f.hits.AddRect(id, c.f.x+c.dx+col, c.f.y+c.dy+line, w, h, data)
}

// line returns the index the next completed line will have.
func (c *canvas) line() int {
	if len(c.cur) > 0 {
		return len(c.lines) + 1
	}
	return len(c.lines)
}
