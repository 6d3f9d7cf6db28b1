package tui

import (
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/anthers/internal/application/settings"
	"github.com/tesso57/anthers/internal/application/usecase"
)

type stubStateStore struct {
	mock.Mock
	values map[string]string
}

func (s *stubStateStore) Get(key string) (string, bool, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(key)
		return args.String(0), args.Bool(1), args.Error(2)
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubStateStore) Set(key, value string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(key, value)
		return args.Error(0)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Pagination: settings.PaginationConfig{Siblings: 1, Edges: 1, DemoPages: 10},
		Sidebar:    settings.SidebarConfig{Expanded: true, Breakpoint: 100, ExpandedWidth: 28, CollapsedWidth: 6},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Open: "enter", Back: "esc", Quit: "q",
			ToggleSidebar: "ctrl+b", SwitchFocus: "tab", PrevPage: "left,h", NextPage: "right,l",
			FirstPage: "home,g", LastPage: "end,G", Toggle: "space", ResetSidebar: "ctrl+r",
		},
		Theme: settings.ThemeConfig{Accent: "205", Border: "63", Muted: "240"},
	}
}

func newTestModel(cfg settings.Settings, store usecase.StateStore) *Model {
	log := zerolog.Nop()
	return NewModel(
		cfg,
		usecase.NewSidebarService(store, log),
		usecase.NewPaginationService(cfg.Pagination, log),
		log,
	)
}
