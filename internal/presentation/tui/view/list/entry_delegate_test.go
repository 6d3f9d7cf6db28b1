package listview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type testEntry struct {
	title string
	icon  string
}

func (e testEntry) FilterValue() string { return e.title }
func (e testEntry) Title() string       { return e.title }
func (e testEntry) Icon() string        { return e.icon }

func renderEntry(t *testing.T, width int, item list.Item) string {
	t.Helper()
	d := NewEntryDelegate(lipgloss.Color("205"))
	m := list.New([]list.Item{item}, d, width, 10)
	var buf bytes.Buffer
	d.Render(&buf, m, 0, item)
	return buf.String()
}

func TestEntryDelegate_Render(t *testing.T) {
	got := renderEntry(t, 30, testEntry{title: "Pagination", icon: "…"})
	if !strings.Contains(got, "… Pagination") {
		t.Fatalf("Render() = %q", got)
	}
}

func TestEntryDelegate_CompactShowsIconOnly(t *testing.T) {
	got := renderEntry(t, 6, testEntry{title: "Pagination", icon: "…"})
	if strings.Contains(got, "Pagination") || !strings.Contains(got, "…") {
		t.Fatalf("compact Render() = %q", got)
	}
}

func TestEntryDelegate_Truncates(t *testing.T) {
	got := renderEntry(t, 14, testEntry{title: "A very long component name", icon: "*"})
	if lipgloss.Width(got) > 14 {
		t.Fatalf("rendered width %d exceeds list width", lipgloss.Width(got))
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("long titles should be truncated: %q", got)
	}
}

func TestEntryDelegate_IgnoresOtherItems(t *testing.T) {
	d := NewEntryDelegate(lipgloss.Color("205"))
	var buf bytes.Buffer
	d.Render(&buf, list.New(nil, d, 20, 5), 0, list.Item(nil))
	if buf.Len() != 0 {
		t.Fatal("non-entry items should render nothing")
	}
}
