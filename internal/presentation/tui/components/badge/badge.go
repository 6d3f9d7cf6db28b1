// Package badge provides the status badge component.
package badge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects between tinted text and a filled background.
type Variant string

const (
	VariantLight Variant = "light"
	VariantSolid Variant = "solid"
)

// Color is the semantic color of a badge.
type Color string

const (
	Brand   Color = "brand"
	Success Color = "success"
	Error   Color = "error"
	Warning Color = "warning"
	Info    Color = "info"
	Light   Color = "light"
	Dark    Color = "dark"
)

// Size is the badge size.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
)

// Colors lists every badge color in display order.
var Colors = []Color{Brand, Success, Error, Warning, Info, Light, Dark}

var palette = map[Color]lipgloss.Color{
	Brand:   lipgloss.Color("63"),
	Success: lipgloss.Color("35"),
	Error:   lipgloss.Color("160"),
	Warning: lipgloss.Color("214"),
	Info:    lipgloss.Color("39"),
	Light:   lipgloss.Color("250"),
	Dark:    lipgloss.Color("238"),
}

// Props defines the properties for the badge component.
type Props struct {
	Label     string
	Variant   Variant
	Color     Color
	Size      Size
	StartIcon string
	EndIcon   string
}

// Render renders the badge component.
func Render(p Props) string {
	c, ok := palette[p.Color]
	if !ok {
		c = palette[Brand]
	}

	style := lipgloss.NewStyle()
	if p.Variant == VariantSolid {
		style = style.Background(c).Foreground(lipgloss.Color("255"))
	} else {
		style = style.Foreground(c)
	}
	if p.Size != SizeSM {
		style = style.Padding(0, 1)
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{p.StartIcon, p.Label, p.EndIcon} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return style.Render(strings.Join(parts, " "))
}
