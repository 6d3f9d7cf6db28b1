// Package toggle provides the on/off switch component.
package toggle

import (
	"github.com/charmbracelet/lipgloss"
)

// Color is the track color of a checked switch.
type Color string

const (
	Blue Color = "blue"
	Gray Color = "gray"
)

// Props defines the properties for the switch component.
type Props struct {
	Label    string
	Checked  bool
	Disabled bool
	Color    Color
	Focused  bool
}

// Render renders the switch component.
func Render(p Props) string {
	on := lipgloss.Color("33")
	if p.Color == Gray {
		on = lipgloss.Color("236")
	}

	track := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	knob := "●──"
	if p.Checked {
		track = track.Foreground(on)
		knob = "──●"
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	if p.Disabled {
		track = track.Foreground(lipgloss.Color("240")).Faint(true)
		label = label.Foreground(lipgloss.Color("244"))
	}
	if p.Focused && !p.Disabled {
		label = label.Bold(true)
	}

	return track.Render("("+knob+")") + "  " + label.Render(p.Label)
}

// Toggle returns the next checked state. Disabled switches do not change.
func Toggle(p Props) bool {
	if p.Disabled {
		return p.Checked
	}
	return !p.Checked
}
