// Package toast provides the transient notification component.
package toast

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the toast component.
type Props struct {
	Message string
	// Width centres the toast when positive.
	Width int
}

// Render renders the toast component. An empty message renders nothing.
func Render(p Props) string {
	if p.Message == "" {
		return ""
	}
	box := lipgloss.NewStyle().
		Background(lipgloss.Color("238")).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1).
		Render(p.Message)
	if p.Width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, box)
}
