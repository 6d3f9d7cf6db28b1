package sidebar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	got := Render(Props{Visible: true, View: "badge\nbutton", Width: 20, Height: 6, Title: "Components"})

	if !strings.Contains(got, "Components") || !strings.Contains(got, "button") {
		t.Fatalf("Render() = %q", got)
	}
	if w := lipgloss.Width(got); w != 21 {
		t.Fatalf("width = %d, want content width plus right border", w)
	}
	if h := lipgloss.Height(got); h != 6 {
		t.Fatalf("height = %d, want 6", h)
	}
}

func TestRender_Hidden(t *testing.T) {
	if got := Render(Props{Visible: false, View: "x", Width: 10}); got != "" {
		t.Fatalf("Render() = %q, want empty", got)
	}
}

func TestRender_Submenu(t *testing.T) {
	props := Props{
		Visible:      true,
		View:         "dropdown",
		Width:        24,
		Height:       8,
		Title:        "Components",
		SubmenuTitle: "Dropdown",
		Submenu:      []string{"enter: open/select", "esc: close"},
	}

	got := Render(props)
	for _, want := range []string{"▾ Dropdown", "enter: open/select", "esc: close"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Render() missing %q in %q", want, got)
		}
	}
	if h := lipgloss.Height(got); h != 8 {
		t.Fatalf("height = %d, want 8", h)
	}

	props.Collapsed = true
	if got := Render(props); strings.Contains(got, "Dropdown") {
		t.Fatalf("collapsed sidebar should hide the submenu: %q", got)
	}
}
