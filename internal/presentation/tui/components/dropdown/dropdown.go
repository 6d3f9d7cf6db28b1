// Package dropdown provides the dropdown menu component.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the dropdown component.
type Props struct {
	Label    string
	Selected string
	Items    []string
	Cursor   int
	Open     bool
	Focused  bool
}

// Render renders the dropdown component. A closed dropdown renders only its
// trigger.
func Render(p Props) string {
	trigger := p.Label
	if p.Selected != "" {
		trigger += ": " + p.Selected
	}
	arrow := "▾"
	if p.Open {
		arrow = "▴"
	}

	triggerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(0, 1)
	if p.Focused {
		triggerStyle = triggerStyle.BorderForeground(lipgloss.Color("205"))
	}
	out := triggerStyle.Render(trigger + " " + arrow)

	if !p.Open || len(p.Items) == 0 {
		return out
	}

	normal := lipgloss.NewStyle().PaddingLeft(2)
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		PaddingLeft(1)

	rows := make([]string, len(p.Items))
	for i, item := range p.Items {
		if i == p.Cursor {
			rows[i] = selected.Render("› " + item)
			continue
		}
		rows[i] = normal.Render(item)
	}

	menu := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		PaddingRight(1).
		Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, out, menu)
}
