// Package stepper provides the onboarding checklist component.
package stepper

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/domain/stepper"
)

const (
	tickGlyph     = "✓"
	progressGlyph = "◷"
)

// Props defines the properties for the stepper component.
type Props struct {
	Stepper *stepper.Stepper
	// Cursor highlights one step; -1 highlights none.
	Cursor int
	Width  int
}

// Render renders the stepper component.
func Render(p Props) string {
	if p.Stepper == nil {
		return ""
	}
	s := p.Stepper

	heading := lipgloss.NewStyle().Bold(true).Render(s.Heading)
	progress := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(s.Progress())
	rows := []string{heading + "  " + progress}
	if s.Description != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(s.Description))
	}
	rows = append(rows, "")

	tick := lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Render(tickGlyph)
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(progressGlyph)
	detail := lipgloss.NewStyle().PaddingLeft(6).Foreground(lipgloss.Color("245"))
	action := lipgloss.NewStyle().PaddingLeft(6).Foreground(lipgloss.Color("205"))
	if p.Width > 0 {
		detail = detail.Width(p.Width)
	}

	for i, step := range s.Steps {
		glyph := pending
		if step.Completed {
			glyph = tick
		}
		pointer := "  "
		title := step.Heading
		if i == p.Cursor {
			pointer = "› "
			title = lipgloss.NewStyle().Bold(true).Render(title)
		}
		rows = append(rows, pointer+glyph+"  "+title)

		if !s.IsExpanded(i) {
			continue
		}
		if step.Description != "" {
			rows = append(rows, detail.Render(step.Description))
		}
		if step.Action != "" {
			rows = append(rows, action.Render("→ "+step.Action))
		}
	}

	return strings.Join(rows, "\n")
}
