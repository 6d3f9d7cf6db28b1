// Package button provides the button component.
package button

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects the button style.
type Variant string

const (
	Primary Variant = "primary"
	Outline Variant = "outline"
)

// Size is the button size.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
)

// Props defines the properties for the button component.
type Props struct {
	Label     string
	Variant   Variant
	Size      Size
	StartIcon string
	EndIcon   string
	Disabled  bool
	// Loading replaces the icons with Spinner and disables the button.
	Loading bool
	Spinner string
	Focused bool
}

// Inactive reports whether the button ignores activation.
func (p Props) Inactive() bool {
	return p.Disabled || p.Loading
}

// Render renders the button component.
func Render(p Props) string {
	style := lipgloss.NewStyle()
	switch p.Variant {
	case Outline:
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Foreground(lipgloss.Color("252"))
		if p.Focused && !p.Inactive() {
			style = style.BorderForeground(lipgloss.Color("205"))
		}
	default:
		style = style.
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("255"))
		if p.Focused && !p.Inactive() {
			style = style.Background(lipgloss.Color("205"))
		}
	}

	if p.Size == SizeSM {
		style = style.Padding(0, 1)
	} else {
		style = style.Padding(0, 2)
	}

	if p.Inactive() {
		style = style.Faint(true).Foreground(lipgloss.Color("244"))
	}

	var parts []string
	if p.Loading {
		parts = []string{p.Spinner, p.Label}
	} else {
		parts = []string{p.StartIcon, p.Label, p.EndIcon}
	}
	return style.Render(joinNonEmpty(parts))
}

func joinNonEmpty(parts []string) string {
	out := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
