package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Sidebar: "SIDEBAR",
		Main:    "MAIN",
		Footer:  "FOOTER",
	}

	got := Render(props)

	if !strings.Contains(got, "SIDEBAR") {
		t.Error("Missing sidebar content")
	}
	if !strings.Contains(got, "MAIN") {
		t.Error("Missing main content")
	}
	if !strings.Contains(got, "FOOTER") {
		t.Error("Missing footer content")
	}
	if strings.Index(got, "SIDEBAR") > strings.Index(got, "MAIN") {
		t.Error("sidebar should be left of main")
	}
}

func TestRender_NoSidebar(t *testing.T) {
	got := Render(Props{Main: "MAIN"})
	if got != "MAIN" {
		t.Fatalf("Render() = %q, want main only", got)
	}
}
