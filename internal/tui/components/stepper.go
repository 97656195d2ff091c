package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// StepState is how a step is drawn.
type StepState string

const (
	StepActive    StepState = "active"
	StepCompleted StepState = "completed"
	StepInactive  StepState = "inactive"
)

const minConnector = 3

var (
	stepDoneStyle      = lipgloss.NewStyle().Foreground(theme.Orange).Bold(true)
	stepActiveStyle    = lipgloss.NewStyle().Background(theme.Orange).Foreground(theme.White).Bold(true)
	stepInactiveStyle  = lipgloss.NewStyle().Foreground(theme.Neutral50)
	stepLabelStyle     = lipgloss.NewStyle().Foreground(theme.Black)
	connectorDoneStyle = lipgloss.NewStyle().Foreground(theme.Orange)
	connectorStyle     = lipgloss.NewStyle().Foreground(theme.Neutral50)
)

// Step is one stage of a Stepper.
type Step struct {
	Label     string `yaml:"label" json:"label"`
	Completed bool   `yaml:"completed,omitempty" json:"completed,omitempty"`
}

// Stepper shows progress through a sequence of steps.
type Stepper struct {
	Steps  []Step
	Active int
	// Width stretches the connectors to fill the line; 0 keeps them short.
	Width int
}

// StateOf returns the state of step i. Steps before the active one count as
// completed, as do steps flagged Completed.
func (s *Stepper) StateOf(i int) StepState {
	switch {
	case i == s.Active:
		return StepActive
	case i < s.Active || (i >= 0 && i < len(s.Steps) && s.Steps[i].Completed):
		return StepCompleted
	default:
		return StepInactive
	}
}

// Next moves to the following step, if any.
func (s *Stepper) Next() {
	if s.Active < len(s.Steps)-1 {
		s.Active++
	}
}

// Prev moves to the previous step, if any.
func (s *Stepper) Prev() {
	if s.Active > 0 {
		s.Active--
	}
}

func (s *Stepper) renderStep(i int) string {
	var icon, label string
	switch s.StateOf(i) {
	case StepCompleted:
		icon = stepDoneStyle.Render("✓")
		label = stepLabelStyle.Bold(true).Render(s.Steps[i].Label)
	case StepActive:
		icon = stepActiveStyle.Render(" " + strconv.Itoa(i+1) + " ")
		label = stepLabelStyle.Bold(true).Render(s.Steps[i].Label)
	default:
		icon = stepInactiveStyle.Render(strconv.Itoa(i + 1))
		label = stepInactiveStyle.Render(s.Steps[i].Label)
	}
	return icon + " " + label
}

// View renders the stepper
func (s *Stepper) View() string {
	if len(s.Steps) == 0 {
		return ""
	}
	parts := make([]string, len(s.Steps))
	used := 0
	for i := range s.Steps {
		parts[i] = s.renderStep(i)
		used += lipgloss.Width(parts[i])
	}

	gaps := len(s.Steps) - 1
	connector := minConnector
	if gaps > 0 && s.Width > 0 {
		// One space on each side of every connector.
		if n := (s.Width - used - 2*gaps) / gaps; n > connector {
			connector = n
		}
	}

	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i == gaps {
			break
		}
		style := connectorStyle
		if s.StateOf(i) == StepCompleted {
			style = connectorDoneStyle
		}
		b.WriteString(" " + style.Render(strings.Repeat("─", connector)) + " ")
	}
	return b.String()
}
