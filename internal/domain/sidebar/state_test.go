package sidebar

import (
	"encoding/json"
	"testing"
)

func defaultState() State {
	return New(0, Widths{})
}

func TestNew_Defaults(t *testing.T) {
	s := defaultState()
	if !s.Expanded {
		t.Fatal("default sidebar should be expanded")
	}
	if s.Breakpoint != DefaultBreakpoint {
		t.Fatalf("Breakpoint = %d, want %d", s.Breakpoint, DefaultBreakpoint)
	}
	if s.Width() != DefaultExpandedWidth {
		t.Fatalf("Width() = %d, want %d", s.Width(), DefaultExpandedWidth)
	}
}

func TestNew_FallsBackToDefaults(t *testing.T) {
	s := New(0, Widths{Expanded: -1})
	if s.Breakpoint != DefaultBreakpoint {
		t.Fatalf("Breakpoint = %d, want %d", s.Breakpoint, DefaultBreakpoint)
	}
	if s.Widths.Expanded != DefaultExpandedWidth || s.Widths.Collapsed != DefaultCollapsedWidth {
		t.Fatalf("Widths = %+v, want defaults", s.Widths)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
		want   int
	}{
		{name: "expanded", mutate: func(*State) {}, want: 30},
		{name: "collapsed", mutate: func(s *State) { s.Toggle() }, want: 4},
		{name: "collapsed but hovered", mutate: func(s *State) { s.Toggle(); s.SetHovered(true) }, want: 30},
		{name: "collapsed but mobile open", mutate: func(s *State) { s.Toggle(); s.ToggleMobile() }, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(80, Widths{Expanded: 30, Collapsed: 4})
			tt.mutate(&s)
			if got := s.Width(); got != tt.want {
				t.Fatalf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToggleSubmenu(t *testing.T) {
	s := defaultState()
	s.ToggleSubmenu("forms")
	if s.OpenSubmenu != "forms" {
		t.Fatalf("OpenSubmenu = %q, want forms", s.OpenSubmenu)
	}
	s.ToggleSubmenu("tables")
	if s.OpenSubmenu != "tables" {
		t.Fatalf("OpenSubmenu = %q, want tables", s.OpenSubmenu)
	}
	s.ToggleSubmenu("tables")
	if s.OpenSubmenu != "" {
		t.Fatalf("OpenSubmenu = %q, want closed", s.OpenSubmenu)
	}
}

func TestResize(t *testing.T) {
	s := New(80, Widths{Expanded: 30, Collapsed: 4})

	s.Resize(60)
	if !s.Mobile {
		t.Fatal("60 columns should be mobile with breakpoint 80")
	}
	if s.Visible() {
		t.Fatal("closed drawer should hide the sidebar on mobile")
	}

	s.ToggleForViewport()
	if !s.MobileOpen || !s.Expanded {
		t.Fatalf("mobile toggle should open the drawer only: %+v", s)
	}
	if !s.Visible() {
		t.Fatal("open drawer should be visible")
	}

	s.Resize(120)
	if s.Mobile || s.MobileOpen {
		t.Fatalf("leaving mobile should close the drawer: %+v", s)
	}

	s.ToggleForViewport()
	if s.Expanded {
		t.Fatal("desktop toggle should collapse the sidebar")
	}
	if !s.Collapsed() {
		t.Fatal("Collapsed() should be true after collapsing")
	}
}

func TestResetKeepsGeometry(t *testing.T) {
	s := New(80, Widths{Expanded: 30, Collapsed: 4})
	s.Resize(60)
	s.Toggle()
	s.SetActiveItem("badge")
	s.ToggleSubmenu("forms")
	s.SetHovered(true)

	s.Reset()

	if !s.Expanded || s.ActiveItem != "" || s.OpenSubmenu != "" || s.Hovered {
		t.Fatalf("Reset() left state behind: %+v", s)
	}
	if s.Breakpoint != 80 || s.Widths.Expanded != 30 {
		t.Fatalf("Reset() changed geometry: %+v", s)
	}
	if !s.Mobile {
		t.Fatal("Reset() should keep the measured viewport")
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := defaultState()
	s.Toggle()
	s.SetActiveItem("pagination")

	snap := s.Snapshot()
	if snap.Expanded || snap.ActiveItem != "pagination" {
		t.Fatalf("Snapshot() = %+v", snap)
	}

	restored := defaultState()
	restored.Restore(snap)
	if restored.Expanded || restored.ActiveItem != "pagination" {
		t.Fatalf("Restore() = %+v", restored)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{name: "active item", snap: Snapshot{Expanded: true, ActiveItem: "card"}, want: `{"isExpanded":true,"activeItem":"card"}`},
		{name: "no active item is null", snap: Snapshot{Expanded: false}, want: `{"isExpanded":false,"activeItem":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.snap)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Fatalf("Marshal = %s, want %s", data, tt.want)
			}

			var back Snapshot
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if back != tt.snap {
				t.Fatalf("Unmarshal = %+v, want %+v", back, tt.snap)
			}
		})
	}
}
