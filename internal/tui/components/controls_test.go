package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCheckboxIsControlled(t *testing.T) {
	var got []bool
	var cb *Checkbox
	cb = NewCheckbox(CheckboxProps{Label: "J'accepte", OnCheckedChange: func(v bool) {
		got = append(got, v)
		cb.SetChecked(v)
	}})
	assert.Equal(t, " [ ]  J'accepte", plain(cb.View()))

	cb.Update(press(1, 0))
	assert.Equal(t, []bool{true}, got)
	assert.Equal(t, " [x]  J'accepte", plain(cb.View()))

	cb.Focus()
	cb.Update(keyMsg("space"))
	assert.Equal(t, []bool{true, false}, got)
	assert.False(t, cb.Checked())
}

func TestCheckboxSizesAndDisabled(t *testing.T) {
	assert.Equal(t, "[x]", plain(NewCheckbox(CheckboxProps{Checked: true, Size: ControlSm}).View()))
	assert.Equal(t, "  [ ]  ", plain(NewCheckbox(CheckboxProps{Size: ControlLg}).View()))

	calls := 0
	cb := NewCheckbox(CheckboxProps{Disabled: true, OnCheckedChange: func(bool) { calls++ }})
	cb.View()
	cb.Focus()
	cb.Update(press(1, 0))
	cb.Update(keyMsg("enter"))
	assert.Zero(t, calls)
}

func TestRadioOnlySendsTrue(t *testing.T) {
	var got []bool
	var r *Radio
	r = NewRadio(RadioProps{Label: "Mensuel", OnCheckedChange: func(v bool) {
		got = append(got, v)
		r.SetChecked(v)
	}})
	assert.Equal(t, " ( )  Mensuel", plain(r.View()))

	r.Update(press(1, 0))
	assert.Equal(t, []bool{true}, got)
	assert.Equal(t, " (•)  Mensuel", plain(r.View()))

	r.Update(press(1, 0))
	r.Focus()
	r.Update(keyMsg("enter"))
	assert.Equal(t, []bool{true}, got, "a checked radio stays quiet")
}

func TestRadioCard(t *testing.T) {
	calls := 0
	r := NewRadio(RadioProps{Card: true, Label: "Maison", Image: "⌂", OnCheckedChange: func(bool) { calls++ }})
	view := r.View()
	assert.Equal(t, radioCardWidth, lipgloss.Width(view))
	assert.Contains(t, plain(view), "Maison")
	assert.Contains(t, plain(view), "( )")
	assert.Equal(t, "Maison", r.TitleAt(3, 2))

	r.Update(press(3, 2))
	assert.Equal(t, 1, calls)

	r.SetDisabled(true)
	r.Update(press(3, 2))
	assert.Equal(t, 1, calls)
}

func TestChipVariants(t *testing.T) {
	assert.Equal(t, " Validé ", plain(NewChip(ChipProps{Label: "Validé"}).View()))

	outlined := NewChip(ChipProps{Label: "Erreur", Variant: ChipOutlined}).View()
	assert.Equal(t, 3, lipgloss.Height(outlined))
	assert.Contains(t, plain(outlined), "Erreur")
}

func TestDivider(t *testing.T) {
	assert.Equal(t, "─────", plain(Divider{Length: 5}.View()))
	assert.Equal(t, "│\n│\n│", plain(Divider{Orientation: Vertical, Length: 3, Variant: DividerDark}.View()))
	assert.Equal(t, "─", plain(Divider{Variant: DividerLight}.View()))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "", Label{}.View())
	assert.Equal(t, "Nom *", plain(Label{Text: "Nom", Required: true}.View()))
	assert.Equal(t, "Nom", plain(Label{Text: "Nom", Variant: LabelError, Disabled: true}.View()))
}

func TestStepperStates(t *testing.T) {
	s := &Stepper{
		Steps:  []Step{{Label: "Profil"}, {Label: "Adresse"}, {Label: "Paiement", Completed: true}, {Label: "Fin"}},
		Active: 1,
	}
	assert.Equal(t, StepCompleted, s.StateOf(0))
	assert.Equal(t, StepActive, s.StateOf(1))
	assert.Equal(t, StepCompleted, s.StateOf(2), "flagged completed")
	assert.Equal(t, StepInactive, s.StateOf(3))

	assert.Equal(t, "✓ Profil ───  2  Adresse ─── ✓ Paiement ─── 4 Fin", plain(s.View()))

	s.Next()
	s.Next()
	s.Next()
	assert.Equal(t, 3, s.Active)
	s.Prev()
	assert.Equal(t, 2, s.Active)
}

func TestStepperStretchesConnectors(t *testing.T) {
	s := &Stepper{Steps: []Step{{Label: "A"}, {Label: "B"}}, Width: 40}
	assert.Equal(t, 40, lipgloss.Width(s.View()))
	assert.Empty(t, (&Stepper{}).View())
}
