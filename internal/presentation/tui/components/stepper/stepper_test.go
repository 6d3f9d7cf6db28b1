package stepper

import (
	"strings"
	"testing"

	"github.com/tesso57/anthers/internal/domain/stepper"
)

func newStepper() *stepper.Stepper {
	return stepper.New("Get started", "Finish setup", []stepper.Step{
		{Heading: "Connect store", Description: "Link your storefront.", Action: "Connect"},
		{Heading: "Invite team", Completed: true},
	})
}

func TestRender(t *testing.T) {
	s := newStepper()
	got := Render(Props{Stepper: s, Cursor: 0})

	for _, want := range []string{"Get started", "1/2 steps completed.", "Finish setup", "› ◷  Connect store", "✓  Invite team"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "Link your storefront.") {
		t.Error("collapsed step should hide its description")
	}
}

func TestRender_Expanded(t *testing.T) {
	s := newStepper()
	s.Toggle(0)
	got := Render(Props{Stepper: s, Cursor: -1})

	for _, want := range []string{"Link your storefront.", "→ Connect"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in %q", want, got)
		}
	}
}

func TestRender_Nil(t *testing.T) {
	if Render(Props{}) != "" {
		t.Fatal("nil stepper should render nothing")
	}
}
