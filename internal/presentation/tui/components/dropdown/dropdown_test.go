package dropdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	items := []string{"Edit", "Delete"}

	tests := []struct {
		name    string
		props   Props
		want    []string
		notWant []string
	}{
		{
			name:    "closed renders trigger only",
			props:   Props{Label: "Actions", Items: items},
			want:    []string{"Actions ▾"},
			notWant: []string{"Edit", "Delete"},
		},
		{
			name:  "open lists items with cursor",
			props: Props{Label: "Actions", Items: items, Open: true, Cursor: 1},
			want:  []string{"Actions ▴", "Edit", "› Delete"},
		},
		{
			name:  "selected value in trigger",
			props: Props{Label: "Actions", Items: items, Selected: "Edit"},
			want:  []string{"Actions: Edit ▾"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, want %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("Render() = %q, should not contain %q", got, w)
				}
			}
		})
	}
}
