// Package sidebar provides the navigation sidebar component.
package sidebar

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	Visible bool
	View    string
	Width   int
	Height  int
	Title   string
	// Active draws the border in the accent color (the sidebar has focus).
	Active    bool
	Collapsed bool
	Accent    lipgloss.Color
	Border    lipgloss.Color
	// SubmenuTitle and Submenu are drawn below the list when set.
	SubmenuTitle string
	Submenu      []string
}

// Render renders the sidebar component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	border := p.Border
	if border == "" {
		border = lipgloss.Color("63")
	}
	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("205")
	}

	sidebarStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border)

	if p.Active {
		sidebarStyle = sidebarStyle.BorderForeground(accent)
	}

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(accent)
	if p.Collapsed {
		titleStyle = titleStyle.PaddingLeft(1)
	}

	rows := []string{titleStyle.Render(p.Title), p.View}
	if len(p.Submenu) > 0 && !p.Collapsed {
		rows = append(rows, renderSubmenu(p, accent)...)
	}
	return sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderSubmenu(p Props, accent lipgloss.Color) []string {
	line := lipgloss.NewStyle().PaddingLeft(2).MaxWidth(max(p.Width, 1))
	rows := make([]string, 0, len(p.Submenu)+1)
	rows = append(rows, line.Foreground(accent).Render("▾ "+p.SubmenuTitle))
	for _, hint := range p.Submenu {
		rows = append(rows, line.Faint(true).Render("  "+hint))
	}
	return rows
}
