package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := NewButton(ButtonProps{Label: "Valider", OnClick: func() { clicks++ }})
	b.SetOrigin(2, 3)
	assert.Equal(t, "  Valider  ", plain(b.View()))

	b.Update(press(2, 3))
	b.Update(press(0, 0))
	assert.Equal(t, 1, clicks)

	b.Update(keyMsg("enter"))
	assert.Equal(t, 1, clicks, "keys need focus")
	b.Focus()
	b.Update(keyMsg("enter"))
	b.Update(keyMsg("space"))
	assert.Equal(t, 3, clicks)
}

func TestButtonDisabledAndLoadingIgnoreClicks(t *testing.T) {
	clicks := 0
	b := NewButton(ButtonProps{Label: "Envoyer", Disabled: true, OnClick: func() { clicks++ }})
	b.Focus()
	b.View()
	b.Update(keyMsg("enter"))
	b.Update(press(1, 0))
	assert.Zero(t, clicks)

	b.SetDisabled(false)
	cmd := b.SetLoading(true)
	require.NotNil(t, cmd)
	b.Update(keyMsg("enter"))
	assert.Zero(t, clicks)
	assert.Contains(t, plain(b.View()), "Envoyer")
	assert.Equal(t, "Chargement", b.TitleAt(1, 0))

	assert.Nil(t, b.SetLoading(false))
	b.Update(keyMsg("enter"))
	assert.Equal(t, 1, clicks)
}

func TestButtonSpinnerTicks(t *testing.T) {
	b := NewButton(ButtonProps{Loading: true})
	msg := runCmd(b.Init())
	tick, ok := msg.(spinner.TickMsg)
	require.True(t, ok)

	before := b.View()
	_, next := b.Update(tick)
	assert.NotNil(t, next)
	assert.NotEqual(t, before, b.View())
	assert.Contains(t, plain(b.View()), "Chargement")
}

func TestButtonIcons(t *testing.T) {
	b := NewButton(ButtonProps{Label: "Suivant", StartIcon: "←", EndIcon: "→"})
	assert.Equal(t, "  ← Suivant →  ", plain(b.View()))

	icon := NewButton(ButtonProps{EndIcon: "→"})
	assert.Equal(t, " → ", plain(icon.View()))

	loading := NewButton(ButtonProps{Label: "Suivant", StartIcon: "←", Loading: true})
	assert.NotContains(t, plain(loading.View()), "←")
}

func TestButtonFullWidth(t *testing.T) {
	b := NewButton(ButtonProps{Label: "OK", FullWidth: true, Variant: ButtonTertiary})
	b.SetWidth(30)
	assert.Equal(t, 30, lipgloss.Width(b.View()))
}

func TestIconButton(t *testing.T) {
	clicks := 0
	b := NewIconButton(IconButtonProps{Icon: "+", Alt: "Modifier", OnClick: func() { clicks++ }})
	assert.Equal(t, " + ", plain(b.View()))
	assert.Equal(t, "Modifier", b.TitleAt(1, 0))

	b.Update(press(0, 0))
	assert.Equal(t, 1, clicks)

	b.SetDisabled(true)
	b.Update(press(0, 0))
	assert.Equal(t, 1, clicks)

	sizes := map[IconSize]int{IconSizeSm: 1, IconSizeMd: 3, IconSizeLg: 5}
	for size, w := range sizes {
		assert.Equal(t, w, lipgloss.Width(NewIconButton(IconButtonProps{Icon: "+", Size: size}).View()), size)
	}
	card := NewIconButton(IconButtonProps{Icon: "+", Card: true})
	card.Focus()
	assert.Equal(t, " + ", plain(card.View()))
}
