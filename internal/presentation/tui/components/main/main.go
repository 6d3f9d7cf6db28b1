// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	// Toast is pinned to the bottom of the area.
	Toast string
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	content := p.Body
	if p.Header != "" {
		if p.Body != "" {
			content = p.Header + "\n\n" + p.Body
		} else {
			content = p.Header
		}
	}

	if p.Toast == "" || p.Height <= 0 {
		return mainStyle.Render(content)
	}

	// Reserve the last line for the toast.
	bodyHeight := max(p.Height-lipgloss.Height(p.Toast), 1)
	body := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(content)
	return mainStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, p.Toast))
}
