package badge

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  []string
	}{
		{name: "label only", props: Props{Label: "New"}, want: []string{"New"}},
		{name: "icons", props: Props{Label: "Paid", StartIcon: "+", EndIcon: "!"}, want: []string{"+ Paid !"}},
		{name: "solid unknown color", props: Props{Label: "X", Variant: VariantSolid, Color: "purple"}, want: []string{"X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, want %q", got, w)
				}
			}
		})
	}
}

func TestRender_SizePadding(t *testing.T) {
	md := Render(Props{Label: "Badge", Size: SizeMD})
	sm := Render(Props{Label: "Badge", Size: SizeSM})
	if lipgloss.Width(md) != lipgloss.Width(sm)+2 {
		t.Fatalf("md width %d should be sm width %d plus padding", lipgloss.Width(md), lipgloss.Width(sm))
	}
}

func TestColorsHavePalette(t *testing.T) {
	for _, c := range Colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %q has no palette entry", c)
		}
	}
}
