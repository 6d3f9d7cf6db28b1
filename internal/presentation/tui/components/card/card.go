// Package card provides the titled content card component.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the card component.
type Props struct {
	Title       string
	Description string
	StartIcon   string
	EndIcon     string
	// Status is rendered at the right edge of the title row.
	Status string
	Body   string
	Width  int
}

// Render renders the card component.
func Render(p Props) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Padding(0, 1)

	inner := 0
	if p.Width > 0 {
		inner = max(p.Width-frame.GetHorizontalFrameSize(), 1)
		frame = frame.Width(p.Width - frame.GetHorizontalBorderSize())
	}

	titleParts := make([]string, 0, 3)
	for _, part := range []string{p.StartIcon, p.Title, p.EndIcon} {
		if part != "" {
			titleParts = append(titleParts, part)
		}
	}
	title := lipgloss.NewStyle().Bold(true).Render(strings.Join(titleParts, " "))
	if p.Status != "" {
		gap := 2
		if inner > 0 {
			gap = max(inner-lipgloss.Width(title)-lipgloss.Width(p.Status), 1)
		}
		title = title + strings.Repeat(" ", gap) + p.Status
	}

	rows := []string{title}
	if p.Description != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.Description))
	}
	if p.Body != "" {
		divider := strings.Repeat("─", max(inner, lipgloss.Width(title)))
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(divider), p.Body)
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
