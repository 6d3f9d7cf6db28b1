package usecase

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/anthers/internal/application/settings"
)

func newPaginationService(siblings, edges int) PaginationService {
	return NewPaginationService(settings.PaginationConfig{Siblings: siblings, Edges: edges}, zerolog.Nop())
}

func TestPaginationWindowUsesConfiguredCounts(t *testing.T) {
	require.Equal(t, "1 ... 4 5 6 ... 10", newPaginationService(1, 1).Window(5, 10).String())
	require.Equal(t, "1 2 ... 8 9 10 11 12 ... 19 20", newPaginationService(2, 2).Window(10, 20).String())
	require.Empty(t, newPaginationService(1, 1).Window(1, 1))
}

func TestPaginationPreviousNext(t *testing.T) {
	svc := newPaginationService(1, 1)

	tests := []struct {
		name    string
		move    func(current, total int, cb func(int)) int
		current int
		total   int
		want    int
		called  bool
	}{
		{name: "next in range", move: svc.Next, current: 3, total: 10, want: 4, called: true},
		{name: "next at last page", move: svc.Next, current: 10, total: 10, want: 10},
		{name: "previous in range", move: svc.Previous, current: 3, total: 10, want: 2, called: true},
		{name: "previous at first page", move: svc.Previous, current: 1, total: 10, want: 1},
		{name: "next clamps overshoot", move: svc.Next, current: 12, total: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			page := tt.move(tt.current, tt.total, func(p int) { got = append(got, p) })
			require.Equal(t, tt.want, page)
			if tt.called {
				require.Equal(t, []int{tt.want}, got)
			} else {
				require.Empty(t, got)
			}
		})
	}
}

func TestPaginationSelectClamps(t *testing.T) {
	svc := newPaginationService(1, 1)

	var changed []int
	record := func(p int) { changed = append(changed, p) }

	require.Equal(t, 10, svc.Select(1, 99, 10, record))
	require.Equal(t, 1, svc.Select(10, -4, 10, record))
	require.Equal(t, 5, svc.Select(5, 5, 10, record))
	require.Equal(t, []int{10, 1}, changed)

	require.NotPanics(t, func() { svc.Select(1, 2, 10, nil) })
}

func TestPaginationLogsClampedInput(t *testing.T) {
	var buf bytes.Buffer
	svc := NewPaginationService(settings.PaginationConfig{Siblings: 1, Edges: 1}, zerolog.New(&buf).Level(zerolog.DebugLevel))

	svc.Window(50, 10)
	require.Contains(t, buf.String(), "page out of range")
	require.Contains(t, buf.String(), `"clamped":10`)

	buf.Reset()
	svc.Window(5, 10)
	require.Zero(t, buf.Len())
}

func TestPaginationNav(t *testing.T) {
	nav := newPaginationService(1, 1).Nav(1, 1)
	require.False(t, nav.Visible())
	require.False(t, nav.HasPrevious())
	require.False(t, nav.HasNext())
}
