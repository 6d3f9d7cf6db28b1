// Package header provides the page heading component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible     bool
	Title       string
	Description string
	// Hint is drawn right-aligned on the title row when Width allows.
	Hint  string
	Width int
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Render(p.Title)
	if p.Hint != "" {
		hint := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.Hint)
		if gap := p.Width - lipgloss.Width(title) - lipgloss.Width(hint); gap > 0 {
			title = lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), hint)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.Description),
	)
}
