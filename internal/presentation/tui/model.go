package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tesso57/anthers/internal/application/settings"
	"github.com/tesso57/anthers/internal/application/usecase"
	"github.com/tesso57/anthers/internal/domain/sidebar"
	"github.com/tesso57/anthers/internal/domain/stepper"
	"github.com/tesso57/anthers/internal/presentation/tui/presenter"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
	"github.com/tesso57/anthers/internal/presentation/tui/update"
	"github.com/tesso57/anthers/internal/presentation/tui/view"
	listview "github.com/tesso57/anthers/internal/presentation/tui/view/list"
)

const windowTitle = "anthers"

// Model represents the main application state.
type Model struct {
	settings   settings.Settings
	sidebar    usecase.SidebarService
	pagination usecase.PaginationService
	log        zerolog.Logger
	state      *state.ModelState
}

// NewModel creates a new application model. The persisted sidebar snapshot,
// if any, is restored before the first frame.
func NewModel(cfg settings.Settings, sidebarSvc usecase.SidebarService, paginationSvc usecase.PaginationService, log zerolog.Logger) *Model {
	return &Model{
		settings:   cfg,
		sidebar:    sidebarSvc,
		pagination: paginationSvc,
		log:        log,
		state:      newModelState(cfg, sidebarSvc),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.SidebarSavedMsg:
		update.HandleSidebarSaved(m.state, msg)
		update.UpdateListSizes(m.state)
	case update.ButtonDoneMsg:
		update.HandleButtonDone(m.state)
	case update.ToastExpiredMsg:
		update.HandleToastExpired(m.state, msg)
	}

	if m.state.ButtonLoading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if _, isKey := msg.(tea.KeyMsg); !isKey || m.state.Focus == state.FocusSidebar {
		prevIdx := m.state.EntryList.Index()
		m.state.EntryList, cmd = m.state.EntryList.Update(msg)
		cmds = append(cmds, cmd)
		if m.state.EntryList.Index() != prevIdx {
			cmds = append(cmds, update.HandleSelectionChange(m.state, m.deps()))
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Sidebar:    m.sidebar,
		Pagination: m.pagination,
		Log:        m.log,
	}
}

func newModelState(cfg settings.Settings, sidebarSvc usecase.SidebarService) *state.ModelState {
	st := &state.ModelState{
		Session:    state.GalleryView,
		EntryList:  newEntryList(cfg),
		Help:       help.New(),
		Spinner:    newSpinner(cfg),
		Keys:       state.NewKeyMap(cfg.KeyMap),
		Sidebar:    newSidebarState(cfg, sidebarSvc),
		Page:       1,
		TotalPages: cfg.Pagination.DemoPages,
		Dropdown:   state.DropdownState{Items: []string{"Edit", "Duplicate", "Archive", "Delete"}},
		Stepper:    newDemoStepper(),
	}

	st.EntryList.KeyMap.CursorUp = st.Keys.Up
	st.EntryList.KeyMap.CursorDown = st.Keys.Down

	presenter.ApplyEntryList(&st.EntryList, presenter.Catalog())
	update.SyncSelection(st)
	st.SetFocus(state.FocusSidebar)

	return st
}

func newSidebarState(cfg settings.Settings, sidebarSvc usecase.SidebarService) sidebar.State {
	sb := sidebar.New(cfg.Sidebar.Breakpoint, sidebar.Widths{
		Expanded:  cfg.Sidebar.ExpandedWidth,
		Collapsed: cfg.Sidebar.CollapsedWidth,
	})
	sb.Expanded = cfg.Sidebar.Expanded
	if snap, ok := sidebarSvc.Load(); ok {
		sb.Restore(snap)
	}
	return sb
}

func newEntryList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewEntryDelegate(lipgloss.Color(cfg.Theme.Accent)), 0, 0)
	l.Title = "Components"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newDemoStepper() *stepper.Stepper {
	return stepper.New(
		"Get started with upsells",
		"Complete these steps to start offering add-ons at checkout.",
		[]stepper.Step{
			{
				Heading:     "Send an email campaign",
				Description: "Tell existing customers about your new add-ons.",
				Action:      "Send email",
			},
			{
				Heading:     "Offer a build-a-box bundle",
				Description: "Let customers pick items for a discounted box.",
				Action:      "Create box",
			},
			{Heading: "Upsell on the customer portal", Completed: true},
			{Heading: "Set up cart upsells", Completed: true},
		},
	)
}
