package modal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender_Hidden(t *testing.T) {
	if got := Render(Props{Visible: false, Body: "x"}); got != "" {
		t.Fatalf("Render() = %q, want empty", got)
	}
}

func TestRender_Centred(t *testing.T) {
	got := Render(Props{Visible: true, Kind: Quit, Body: "Are you sure?", Width: 80, Height: 24})

	if !strings.Contains(got, "Are you sure?") {
		t.Fatalf("missing body: %q", got)
	}
	if lipgloss.Width(got) != 80 || lipgloss.Height(got) != 24 {
		t.Fatalf("placed modal should fill %dx%d, got %dx%d", 80, 24, lipgloss.Width(got), lipgloss.Height(got))
	}
}

func TestRender_TitleAndCloseHint(t *testing.T) {
	got := Render(Props{Visible: true, Kind: Dialog, Title: "Notice", CloseHint: "esc ✕", Body: "Body"})
	for _, want := range []string{"Notice", "esc ✕", "Body"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in %q", want, got)
		}
	}
}

func TestRender_Fullscreen(t *testing.T) {
	got := Render(Props{Visible: true, Kind: Dialog, Body: "Full", Width: 60, Height: 20, Fullscreen: true})
	if lipgloss.Width(got) != 60 || lipgloss.Height(got) != 20 {
		t.Fatalf("fullscreen modal = %dx%d, want 60x20", lipgloss.Width(got), lipgloss.Height(got))
	}
}
