package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

func newTestTooltip(position TooltipPosition) (*dom.Document, *Tooltip) {
	doc := dom.New()
	tip := NewTooltip(doc, TooltipProps{Content: "Format JJ/MM/AAAA", Position: position})
	tip.SetOrigin(0, 0)
	tip.View()
	return doc, tip
}

func sendTooltip(doc *dom.Document, tip *Tooltip, msg any) {
	tip.Update(msg)
	doc.Dispatch(msg)
	tip.View()
}

func TestTooltipClosedShowsIcon(t *testing.T) {
	_, tip := newTestTooltip(TooltipTop)
	assert.Equal(t, "?", plain(tip.View()))
	assert.Equal(t, "Afficher l'info-bulle", tip.TitleAt(0, 0))
}

func TestTooltipToggleByIcon(t *testing.T) {
	for _, pos := range []TooltipPosition{TooltipTop, TooltipBottom, TooltipLeft, TooltipRight} {
		t.Run(string(pos), func(t *testing.T) {
			doc, tip := newTestTooltip(pos)

			sendTooltip(doc, tip, clickOn(t, tip.Regions(), tooltipIconID, -1))
			require.True(t, tip.IsOpen())
			assert.Equal(t, 1, doc.ListenerCount(dom.PointerDown))
			assert.Contains(t, plain(tip.View()), "Format JJ/MM/AAAA")

			icon := clickOn(t, tip.Regions(), tooltipIconID, -1)
			assert.Equal(t, "Masquer l'info-bulle", tip.TitleAt(icon.X, icon.Y))
			sendTooltip(doc, tip, icon)
			assert.False(t, tip.IsOpen())
			assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown))
		})
	}
}

func TestTooltipArrowGlyphs(t *testing.T) {
	tests := map[TooltipPosition]string{
		TooltipTop:    "▼",
		TooltipBottom: "▲",
		TooltipLeft:   "▶",
		TooltipRight:  "◀",
	}
	for pos, arrow := range tests {
		_, tip := newTestTooltip(pos)
		tip.Open()
		assert.Contains(t, plain(tip.View()), arrow, pos)
	}
}

func TestTooltipCloseButton(t *testing.T) {
	doc, tip := newTestTooltip(TooltipRight)
	tip.Open()
	tip.View()

	closeBtn := clickOn(t, tip.Regions(), tooltipCloseID, -1)
	assert.Equal(t, "Fermer", tip.TitleAt(closeBtn.X, closeBtn.Y))
	sendTooltip(doc, tip, closeBtn)

	assert.False(t, tip.IsOpen())
}

func TestTooltipOutsideClickCloses(t *testing.T) {
	doc, tip := newTestTooltip(TooltipTop)
	tip.Open()
	tip.View()

	sendTooltip(doc, tip, press(1, 0))
	assert.True(t, tip.IsOpen(), "click on the bubble")

	sendTooltip(doc, tip, press(60, 20))
	assert.False(t, tip.IsOpen())
	assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown))
}

func TestTooltipKeyboard(t *testing.T) {
	doc, tip := newTestTooltip(TooltipTop)
	sendTooltip(doc, tip, keyMsg("enter"))
	assert.False(t, tip.IsOpen(), "needs focus")

	tip.Focus()
	sendTooltip(doc, tip, keyMsg("space"))
	assert.True(t, tip.IsOpen())
	sendTooltip(doc, tip, keyMsg("esc"))
	assert.False(t, tip.IsOpen())
}

func TestTooltipBubbleWidth(t *testing.T) {
	_, tip := newTestTooltip(TooltipTop)
	tip.SetContent("court")
	bubble, _ := tip.bubble()
	assert.Equal(t, tooltipMinWidth, lipgloss.Width(bubble))

	tip.SetContent("un texte bien plus long que la largeur maximale de la bulle")
	bubble, _ = tip.bubble()
	assert.Equal(t, tooltipMaxWidth, lipgloss.Width(bubble))
	assert.Greater(t, lipgloss.Height(bubble), 1)
}
