package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

var abc = []Option{{"a", "Alpha"}, {"b", "Bravo"}, {"c", "Charlie"}}

type selectHarness struct {
	doc   *dom.Document
	s     *Select
	calls []string
}

// newSelectHarness builds a focused select whose caller re-supplies every
// requested value, like a real parent would.
func newSelectHarness(value string) *selectHarness {
	h := &selectHarness{doc: dom.New()}
	h.s = NewSelect(h.doc, SelectProps{
		Label:       "Lettre",
		Placeholder: "Choisir",
		Options:     abc,
		Value:       value,
		FullWidth:   true,
		OnValueChange: func(v string) {
			h.calls = append(h.calls, v)
			h.s.SetValue(v)
		},
	})
	h.s.SetOrigin(0, 0)
	h.s.Focus()
	h.s.View()
	return h
}

// send routes msg the way a host does: widget first, then the document.
func (h *selectHarness) send(msg interface{}) {
	switch m := msg.(type) {
	case string:
		km := keyMsg(m)
		h.s.Update(km)
		h.doc.Dispatch(km)
	default:
		h.s.Update(msg)
		h.doc.Dispatch(msg)
	}
	h.s.View()
}

func TestSelectArrowDownCommitsCircularly(t *testing.T) {
	h := newSelectHarness("")
	h.send("down")
	require.True(t, h.s.IsOpen())
	assert.Empty(t, h.calls, "the first down only opens")

	h.send("down")
	assert.Equal(t, []string{"a"}, h.calls)

	h.s.SetValue("b")
	h.send("down")
	assert.Equal(t, "c", h.s.Value())

	h.send("down")
	assert.Equal(t, "a", h.s.Value())
}

func TestSelectArrowUpWraps(t *testing.T) {
	h := newSelectHarness("a")
	h.send("enter")
	require.True(t, h.s.IsOpen())

	h.send("up")
	assert.Equal(t, "c", h.s.Value())
	h.send("up")
	assert.Equal(t, "b", h.s.Value())

	h.s.SetValue("")
	h.send("up")
	assert.Equal(t, "c", h.s.Value())
}

func TestSelectEscapeCloses(t *testing.T) {
	h := newSelectHarness("")
	h.send("enter")
	assert.True(t, h.s.Highlighted())

	h.send("esc")
	assert.False(t, h.s.IsOpen())
	assert.False(t, h.s.Highlighted())
	assert.Equal(t, 0, h.doc.ListenerCount(dom.PointerDown))
}

func TestSelectListenerLifecycle(t *testing.T) {
	h := newSelectHarness("")
	for i := 0; i < 5; i++ {
		h.s.ToggleOpen()
		assert.Equal(t, 1, h.doc.OwnerListenerCount(dom.PointerDown, h.s.ID()))
		h.s.ToggleOpen()
		assert.Equal(t, 0, h.doc.ListenerCount(dom.PointerDown))
	}
}

func TestSelectOutsideClickClosesWithoutChange(t *testing.T) {
	h := newSelectHarness("b")
	h.send(clickOn(t, h.s.Regions(), fieldID, -1))
	require.True(t, h.s.IsOpen())

	h.send(press(100, 100))

	assert.False(t, h.s.IsOpen())
	assert.False(t, h.s.Highlighted())
	assert.Empty(t, h.calls)
	assert.Equal(t, 0, h.doc.ListenerCount(dom.PointerDown))
}

func TestSelectClickOption(t *testing.T) {
	h := newSelectHarness("")
	h.send(clickOn(t, h.s.Regions(), fieldID, -1))
	require.True(t, h.s.IsOpen())
	assert.True(t, h.s.Highlighted())

	h.send(clickOn(t, h.s.Regions(), optionID, 2))

	assert.Equal(t, []string{"c"}, h.calls)
	assert.False(t, h.s.IsOpen())
	assert.False(t, h.s.Highlighted())
	assert.Equal(t, 0, h.doc.ListenerCount(dom.PointerDown))
	assert.Contains(t, plain(h.s.View()), "Charlie")
}

func TestSelectDisplay(t *testing.T) {
	h := newSelectHarness("zzz")
	view := plain(h.s.View())
	assert.Contains(t, view, "Choisir", "unknown values fall back to the placeholder")
	assert.Contains(t, view, "Lettre")

	h.s.SetValue("b")
	h.s.SetError("Obligatoire")
	view = plain(h.s.View())
	assert.Contains(t, view, "Bravo")
	assert.Contains(t, view, "Obligatoire")
}

func TestSelectRequiredMarker(t *testing.T) {
	s := NewSelect(dom.New(), SelectProps{Label: "Ville", Required: true, HelperText: "Votre ville"})
	view := plain(s.View())
	assert.Contains(t, view, "Ville *")
	assert.Contains(t, view, "Votre ville")
	assert.Contains(t, view, "Sélectionner")
}

func TestSelectDisabled(t *testing.T) {
	h := newSelectHarness("")
	h.s.SetDisabled(true)
	h.s.View()

	h.send("enter")
	h.send(clickOn(t, h.s.Regions(), fieldID, -1))
	h.s.ToggleOpen()

	assert.False(t, h.s.IsOpen())
	assert.Empty(t, h.calls)
}

func TestSelectIgnoresKeysWithoutFocus(t *testing.T) {
	h := newSelectHarness("")
	h.s.Blur()
	h.send("enter")
	assert.False(t, h.s.IsOpen())
}
