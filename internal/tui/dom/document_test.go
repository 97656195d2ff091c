package dom

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestDispatchRoutesByKind(t *testing.T) {
	doc := New()
	var pointers, keys int
	doc.AddListener(PointerDown, "a", func(tea.Msg) tea.Cmd { pointers++; return nil })
	doc.AddListener(KeyDown, "a", func(tea.Msg) tea.Cmd { keys++; return nil })

	doc.Dispatch(press(1, 1))
	doc.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	doc.Dispatch(tea.MouseMsg{Action: tea.MouseActionMotion})
	doc.Dispatch(tea.WindowSizeMsg{Width: 10})

	assert.Equal(t, 1, pointers)
	assert.Equal(t, 1, keys)
}

func TestRegistrationRemoveIsIdempotent(t *testing.T) {
	doc := New()
	reg := doc.AddListener(PointerDown, "a", func(tea.Msg) tea.Cmd { return nil })
	other := doc.AddListener(PointerDown, "b", func(tea.Msg) tea.Cmd { return nil })
	require.Equal(t, 2, doc.ListenerCount(PointerDown))

	reg.Remove()
	reg.Remove()

	assert.Equal(t, 1, doc.ListenerCount(PointerDown))
	assert.False(t, reg.Active())
	assert.True(t, other.Active())
	assert.Equal(t, 0, doc.OwnerListenerCount(PointerDown, "a"))
	assert.Equal(t, 1, doc.OwnerListenerCount(PointerDown, "b"))
}

func TestDispatchToleratesRemovalDuringDispatch(t *testing.T) {
	doc := New()
	var second *Registration
	var calls []string

	var first *Registration
	first = doc.AddListener(PointerDown, "a", func(tea.Msg) tea.Cmd {
		calls = append(calls, "a")
		first.Remove()
		second.Remove()
		return nil
	})
	second = doc.AddListener(PointerDown, "b", func(tea.Msg) tea.Cmd {
		calls = append(calls, "b")
		return nil
	})

	doc.Dispatch(press(0, 0))

	assert.Equal(t, []string{"a"}, calls)
	assert.Equal(t, 0, doc.ListenerCount(PointerDown))
}

func TestDispatchBatchesCommands(t *testing.T) {
	doc := New()
	doc.AddListener(KeyDown, "a", func(tea.Msg) tea.Cmd {
		return func() tea.Msg { return "a" }
	})

	cmd := doc.Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "a", cmd())

	assert.Nil(t, New().Dispatch(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestFocus(t *testing.T) {
	doc := New()
	assert.Equal(t, "", doc.ActiveElement())

	doc.Focus("field")
	assert.True(t, doc.HasFocus("field"))
	assert.True(t, doc.FocusWithin("field"))

	doc.Focus("option-2-field")
	assert.True(t, doc.FocusWithin("field"))
	assert.False(t, doc.FocusWithin("other"))

	doc.Blur("someone-else")
	assert.Equal(t, "option-2-field", doc.ActiveElement())
	doc.Blur("")
	assert.Equal(t, "", doc.ActiveElement())
	assert.False(t, doc.FocusWithin("field"))
}

func TestNewIDIsUnique(t *testing.T) {
	a := NewID("select")
	b := NewID("select")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "select-")
}

func TestViewport(t *testing.T) {
	doc := New()
	w, h := doc.Viewport()
	assert.Zero(t, w)
	assert.Zero(t, h)

	doc.SetViewport(120, 40)
	w, h = doc.Viewport()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}
