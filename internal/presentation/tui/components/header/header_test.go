package header

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		want     []string
		wantHint bool
		wantVis  bool
	}{
		{
			name: "Visible",
			props: Props{
				Visible:     true,
				Title:       "Pagination",
				Description: "Page window with ellipsis gaps",
			},
			want:    []string{"Pagination", "Page window with ellipsis gaps"},
			wantVis: true,
		},
		{
			name: "Hint fits",
			props: Props{
				Visible: true,
				Title:   "Badge",
				Hint:    "ctrl+b sidebar",
				Width:   40,
			},
			want:     []string{"Badge"},
			wantHint: true,
			wantVis:  true,
		},
		{
			name: "Hint dropped when narrow",
			props: Props{
				Visible: true,
				Title:   "Badge",
				Hint:    "ctrl+b sidebar",
				Width:   10,
			},
			want:    []string{"Badge"},
			wantVis: true,
		},
		{
			name:    "Hidden",
			props:   Props{Visible: false, Title: "x"},
			wantVis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty string", got)
				}
				return
			}

			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, want %q", got, w)
				}
			}
			if hasHint := strings.Contains(got, tt.props.Hint) && tt.props.Hint != ""; hasHint != tt.wantHint {
				t.Errorf("hint shown = %v, want %v in %q", hasHint, tt.wantHint, got)
			}
			if tt.wantHint && lipgloss.Width(strings.Split(got, "\n")[0]) != tt.props.Width {
				t.Errorf("title row should span the full width")
			}
		})
	}
}
