package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
)

func TestPortalMountsInDefaultContainer(t *testing.T) {
	doc := dom.New()
	p := NewPortal(doc, PortalProps{}, func() string { return "menu" })
	assert.Nil(t, doc.MountPoint(dom.DefaultContainerID))

	p.Open()

	mp := doc.MountPoint(dom.DefaultContainerID)
	require.NotNil(t, mp)
	assert.Equal(t, []string{p.ID()}, mp.Owners())
	assert.Equal(t, []string{"menu"}, doc.Overlays())
	assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown), "no listeners without OnClose")
	assert.Equal(t, 0, doc.ListenerCount(dom.KeyDown))

	p.Close()
	assert.Nil(t, doc.MountPoint(dom.DefaultContainerID))
	assert.False(t, p.IsOpen())
}

func TestPortalsShareContainer(t *testing.T) {
	doc := dom.New()
	a := NewPortal(doc, PortalProps{ContainerID: "menus"}, func() string { return "a" })
	b := NewPortal(doc, PortalProps{ContainerID: "menus"}, func() string { return "b" })
	a.Open()
	b.Open()
	a.Close()

	require.NotNil(t, doc.MountPoint("menus"))
	assert.Equal(t, []string{"b"}, doc.Overlays())

	b.Close()
	assert.Nil(t, doc.MountPoint("menus"))
}

func TestPortalOnClose(t *testing.T) {
	doc := dom.New()
	doc.SetViewport(20, 10)
	closes := 0
	var p *Portal
	p = NewPortal(doc, PortalProps{OnClose: func() {
		closes++
		p.Close()
	}}, func() string { return "xxxx\nxxxx" })

	p.Open()
	require.Equal(t, 1, doc.ListenerCount(dom.PointerDown))
	require.Equal(t, 1, doc.ListenerCount(dom.KeyDown))
	doc.Overlays()
	assert.Equal(t, 8, p.Bounds().X)
	assert.Equal(t, 4, p.Bounds().Y)

	doc.Dispatch(press(9, 4))
	assert.Equal(t, 0, closes, "click inside the content")
	doc.Dispatch(keyMsg("a"))
	assert.Equal(t, 0, closes)

	doc.Dispatch(press(0, 0))
	assert.Equal(t, 1, closes)
	assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown))
	assert.Equal(t, 0, doc.ListenerCount(dom.KeyDown))

	p.Open()
	doc.Dispatch(keyMsg("esc"))
	assert.Equal(t, 2, closes)
	assert.False(t, p.IsOpen())
}

func TestPortalOpenCloseAreIdempotent(t *testing.T) {
	doc := dom.New()
	p := NewPortal(doc, PortalProps{OnClose: func() {}}, func() string { return "x" })
	p.Open()
	p.Open()
	assert.Equal(t, 1, doc.ListenerCount(dom.PointerDown))
	p.SetOpen(false)
	p.Close()
	assert.Equal(t, 0, doc.ListenerCount(dom.PointerDown))
}
