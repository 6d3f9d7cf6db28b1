// Package pagination provides the page navigation component.
package pagination

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/domain/pagination"
)

// Props defines the properties for the pagination component.
type Props struct {
	Window pagination.Window
	Nav    pagination.Nav
	Accent lipgloss.Color
}

const (
	previousLabel = "‹ Previous"
	nextLabel     = "Next ›"
)

// Render renders the pagination component. Nothing is rendered when there
// is at most one page.
func Render(p Props) string {
	if !p.Nav.Visible() {
		return ""
	}

	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("205")
	}

	enabled := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	page := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	current := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true).Foreground(accent)
	gap := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))

	prev := disabled.Render(previousLabel)
	if p.Nav.HasPrevious() {
		prev = enabled.Render(previousLabel)
	}
	next := disabled.Render(nextLabel)
	if p.Nav.HasNext() {
		next = enabled.Render(nextLabel)
	}

	markers := make([]string, 0, len(p.Window))
	for _, m := range p.Window {
		n, ok := m.Page()
		switch {
		case !ok:
			markers = append(markers, gap.Render(pagination.EllipsisText))
		case n == p.Nav.Current:
			markers = append(markers, current.Render(strconv.Itoa(n)))
		default:
			markers = append(markers, page.Render(strconv.Itoa(n)))
		}
	}

	return strings.Join([]string{prev, strings.Join(markers, ""), next}, "   ")
}
