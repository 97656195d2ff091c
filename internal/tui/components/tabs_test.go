package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var sampleTabs = []Tab{{Label: "Infos", Value: "infos"}, {Label: "Documents", Value: "docs"}, {Label: "Suivi", Value: "suivi"}}

func newTestTabs(props TabsProps) (*Tabs, *[]string) {
	var got []string
	var tabs *Tabs
	props.Tabs = sampleTabs
	props.OnValueChange = func(v string) {
		got = append(got, v)
		tabs.SetValue(v)
	}
	tabs = NewTabs(props)
	tabs.View()
	return tabs, &got
}

func TestTabsClick(t *testing.T) {
	tabs, got := newTestTabs(TabsProps{Value: "infos"})
	assert.Equal(t, "  Infos    Documents    Suivi  ", plain(tabs.View()))

	tabs.Update(clickOn(t, tabs.Regions(), tabID, 1))
	assert.Equal(t, []string{"docs"}, *got)
	assert.Equal(t, "docs", tabs.Value())
}

func TestTabsKeyboardHorizontal(t *testing.T) {
	tabs, got := newTestTabs(TabsProps{Value: "infos"})
	tabs.Update(keyMsg("right"))
	assert.Empty(t, *got, "keys need focus")

	tabs.Focus()
	tabs.Update(keyMsg("right"))
	tabs.Update(keyMsg("right"))
	tabs.Update(keyMsg("right"))
	assert.Equal(t, []string{"docs", "suivi"}, *got, "stops at the last tab")

	tabs.Update(keyMsg("home"))
	assert.Equal(t, "infos", tabs.Value())
	tabs.Update(keyMsg("left"))
	assert.Equal(t, "infos", tabs.Value())
	tabs.Update(keyMsg("down"))
	assert.Equal(t, "infos", tabs.Value(), "down is for vertical tabs")
	tabs.Update(keyMsg("end"))
	assert.Equal(t, "suivi", tabs.Value())
}

func TestTabsVertical(t *testing.T) {
	tabs, got := newTestTabs(TabsProps{Value: "docs", Orientation: Vertical})
	view := tabs.View()
	assert.Equal(t, 3, lipgloss.Height(view))
	assert.Equal(t, len("Documents")+4, lipgloss.Width(view))

	tabs.Focus()
	tabs.Update(keyMsg("down"))
	assert.Equal(t, []string{"suivi"}, *got)
	tabs.Update(keyMsg("up"))
	assert.Equal(t, "docs", tabs.Value())

	tabs.View()
	tabs.Update(clickOn(t, tabs.Regions(), tabID, 0))
	assert.Equal(t, "infos", tabs.Value())
}

func TestTabsFullWidth(t *testing.T) {
	tabs, _ := newTestTabs(TabsProps{Value: "infos", FullWidth: true})
	tabs.SetWidth(60)
	assert.Equal(t, 60, lipgloss.Width(tabs.View()))
	regions := tabs.Regions()
	assert.Equal(t, 20, regions[1].Rect.X)
}
