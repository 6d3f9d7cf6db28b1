// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Dialog is a generic content dialog.
	Dialog
	// Help shows the key binding reference.
	Help
	// Quit asks for exit confirmation.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	// Fullscreen fills the terminal instead of centring a box.
	Fullscreen bool
	// CloseHint is shown in the top-right corner when set.
	CloseHint string
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := lipgloss.Color("63")
	switch p.Kind {
	case Dialog:
		borderColor = lipgloss.Color("205")
	case Quit:
		borderColor = lipgloss.Color("160")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)
	if p.Kind == Quit || p.Kind == Dialog {
		box = box.Width(44)
	}
	if p.Fullscreen && p.Width > 0 && p.Height > 0 {
		box = box.
			Width(max(p.Width-box.GetHorizontalBorderSize(), 1)).
			Height(max(p.Height-box.GetVerticalBorderSize(), 1))
	}

	var rows []string
	if p.Title != "" || p.CloseHint != "" {
		rows = append(rows, titleRow(p, box))
	}
	rows = append(rows, p.Body)
	content := box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if p.Fullscreen || p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

func titleRow(p Props, box lipgloss.Style) string {
	title := lipgloss.NewStyle().Bold(true).Render(p.Title)
	if p.CloseHint == "" {
		return title + "\n"
	}
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.CloseHint)
	inner := box.GetWidth() - box.GetHorizontalPadding()
	gap := 2
	if inner > 0 {
		gap = max(inner-lipgloss.Width(title)-lipgloss.Width(hint), 1)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), hint) + "\n"
}
