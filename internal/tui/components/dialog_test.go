package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

func newTestDialog(doc *dom.Document, props DialogProps) (*Dialog, *int) {
	closes := 0
	var d *Dialog
	props.OnClose = func() {
		closes++
		d.SetOpen(false)
	}
	d = NewDialog(doc, props)
	return d, &closes
}

func TestDialogClosedRendersNothing(t *testing.T) {
	doc := dom.New()
	d, _ := newTestDialog(doc, DialogProps{Title: "Titre"})
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.View())
	assert.Empty(t, doc.Overlays())
}

func TestDialogRendersInPortal(t *testing.T) {
	doc := dom.New()
	doc.SetViewport(80, 24)
	d, _ := newTestDialog(doc, DialogProps{Open: true, Title: "Confirmer", Body: "Supprimer le dossier ?"})

	overlays := doc.Overlays()
	require.Len(t, overlays, 1)
	out := plain(overlays[0])
	assert.Contains(t, out, "Confirmer")
	assert.Contains(t, out, "Supprimer le dossier ?")
	assert.Equal(t, 80, lipgloss.Width(overlays[0]))
	assert.Equal(t, 24, lipgloss.Height(overlays[0]))
	assert.Contains(t, out, "·", "default backdrop")

	assert.Equal(t, 50, d.Bounds().W)
	assert.Equal(t, 15, d.Bounds().X)
}

func TestDialogSizes(t *testing.T) {
	tests := []struct {
		size DialogSize
		want int
	}{
		{DialogSizeSm, 40},
		{DialogSizeDefault, 50},
		{DialogSizeLg, 60},
		{DialogSizeXl, 72},
		{DialogSizeFull, 95},
	}
	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			doc := dom.New()
			doc.SetViewport(100, 30)
			d, _ := newTestDialog(doc, DialogProps{Open: true, Size: tt.size, Body: "x"})
			d.View()
			assert.Equal(t, tt.want, d.Bounds().W)
		})
	}

	assert.Equal(t, 30, dialogWidth(DialogSizeXl, 30), "clamped to the viewport")
}

func TestDialogDarkBackdrop(t *testing.T) {
	doc := dom.New()
	doc.SetViewport(60, 20)
	d, _ := newTestDialog(doc, DialogProps{Open: true, Backdrop: BackdropDark, Size: DialogSizeSm, Body: "x"})
	assert.True(t, strings.Contains(plain(d.View()), "░"))
}

func TestDialogEscapeCloses(t *testing.T) {
	doc := dom.New()
	doc.SetViewport(80, 24)
	d, closes := newTestDialog(doc, DialogProps{Open: true, Body: "x"})
	d.View()

	doc.Dispatch(keyMsg("esc"))

	assert.Equal(t, 1, *closes)
	assert.False(t, d.IsOpen())
	assert.Empty(t, doc.Overlays())
	assert.Equal(t, 0, doc.ListenerCount(dom.KeyDown))
}

func TestDialogBackdropClickCloses(t *testing.T) {
	doc := dom.New()
	doc.SetViewport(80, 24)
	d, closes := newTestDialog(doc, DialogProps{Open: true, Body: "x"})
	d.View()
	b := d.Bounds()

	doc.Dispatch(press(b.X+1, b.Y+1))
	assert.Equal(t, 0, *closes, "click on the box")

	doc.Dispatch(press(1, 1))
	assert.Equal(t, 1, *closes)
	assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown))
}

func TestDialogWithoutViewport(t *testing.T) {
	doc := dom.New()
	d, _ := newTestDialog(doc, DialogProps{Open: true, Title: "T", Size: DialogSizeSm})
	out := d.View()
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Equal(t, 0, d.Bounds().X)
}
