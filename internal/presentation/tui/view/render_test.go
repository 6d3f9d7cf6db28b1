package view

import (
	"strings"
	"testing"

	"github.com/tesso57/anthers/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/anthers/internal/presentation/tui/components/main"
	"github.com/tesso57/anthers/internal/presentation/tui/components/modal"
	"github.com/tesso57/anthers/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/anthers/internal/presentation/tui/components/toast"
)

func TestRender_ComposesLayout(t *testing.T) {
	got := Render(Props{
		Sidebar: sidebar.Props{Visible: true, View: "ENTRIES", Width: 20, Height: 10, Title: "Components"},
		Header:  header.Props{Visible: true, Title: "HEADING", Description: "desc"},
		Main:    mainview.Props{Width: 50, Height: 10, Body: "BODY"},
		Toast:   toast.Props{Message: "TOAST"},
		Footer:  "FOOTER",
	})

	for _, want := range []string{"ENTRIES", "HEADING", "BODY", "TOAST", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_ModalReplacesLayout(t *testing.T) {
	got := Render(Props{
		Sidebar: sidebar.Props{Visible: true, View: "ENTRIES", Width: 20, Height: 10},
		Main:    mainview.Props{Width: 50, Height: 10, Body: "BODY"},
		Modal:   modal.Props{Visible: true, Kind: modal.Quit, Body: "Quit?", Width: 70, Height: 12},
	})

	if !strings.Contains(got, "Quit?") || strings.Contains(got, "BODY") {
		t.Fatalf("modal should replace the layout: %q", got)
	}
}
