package pagination

import (
	"strings"
	"testing"

	"github.com/tesso57/anthers/internal/domain/pagination"
)

func props(current, total int) Props {
	return Props{
		Window: pagination.Compute(current, total, 1, 1),
		Nav:    pagination.NewNav(current, total),
	}
}

func TestRender_SinglePageIsEmpty(t *testing.T) {
	if got := Render(props(1, 1)); got != "" {
		t.Fatalf("Render() = %q, want empty", got)
	}
}

func TestRender_Markers(t *testing.T) {
	got := Render(props(5, 10))
	for _, want := range []string{"‹ Previous", " 1 ", " ... ", " 4 ", " 5 ", " 6 ", " 10 ", "Next ›"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, " 3 ") || strings.Contains(got, " 7 ") {
		t.Errorf("Render() = %q, should hide pages outside the window", got)
	}
}

func TestRender_MarkerOrder(t *testing.T) {
	got := Render(props(1, 10))
	i1 := strings.Index(got, " 1 ")
	i2 := strings.Index(got, " 2 ")
	iGap := strings.Index(got, "...")
	i10 := strings.Index(got, " 10 ")
	if !(i1 < i2 && i2 < iGap && iGap < i10) {
		t.Fatalf("markers out of order in %q", got)
	}
}
