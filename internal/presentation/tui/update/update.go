// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/anthers/internal/application/usecase"
	"github.com/tesso57/anthers/internal/domain/sidebar"
	"github.com/tesso57/anthers/internal/presentation/tui/intent"
	"github.com/tesso57/anthers/internal/presentation/tui/presenter"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
)

// Demo timings.
const (
	ButtonLoadingDuration = 2 * time.Second
	ToastDuration         = 3 * time.Second
)

// ToastMessage is the text shown by the toast demo.
const ToastMessage = "Changes saved successfully"

// Deps groups external dependencies for updates.
type Deps struct {
	Sidebar    usecase.SidebarService
	Pagination usecase.PaginationService
	Log        zerolog.Logger
}

// SidebarSavedMsg is emitted after persisting the sidebar snapshot.
type SidebarSavedMsg struct {
	Err error
}

// ButtonDoneMsg ends the button demo's loading state.
type ButtonDoneMsg struct{}

// ToastExpiredMsg hides toast number Seq if it is still the latest.
type ToastExpiredMsg struct {
	Seq int
}

// SaveSidebarCmd persists a copy of the sidebar state.
func SaveSidebarCmd(svc usecase.SidebarService, st sidebar.State) tea.Cmd {
	return func() tea.Msg {
		return SidebarSavedMsg{Err: svc.Save(st)}
	}
}

// HandleKeyMsg processes key input based on the current session. The bool
// is false when the key should fall through to the sidebar list.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)

	if s.Help.ShowAll {
		if parsed.Type == intent.ToggleHelp || parsed.Type == intent.Back {
			s.Help.ShowAll = false
		}
		return nil, true
	}
	if s.ModalOpen {
		if parsed.Type == intent.Back || parsed.Type == intent.Open {
			s.ModalOpen = false
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.ToggleSidebar:
		s.Sidebar.ToggleForViewport()
		if !s.Sidebar.Visible() {
			s.SetFocus(state.FocusMain)
		}
		UpdateListSizes(s)
		return SaveSidebarCmd(deps.Sidebar, s.Sidebar), true
	case intent.ResetSidebar:
		s.Sidebar.Reset()
		s.SetFocus(s.Focus)
		SyncSelection(s)
		UpdateListSizes(s)
		s.StatusMessage = "Sidebar reset"
		return SaveSidebarCmd(deps.Sidebar, s.Sidebar), true
	case intent.SwitchFocus:
		switchFocus(s)
		UpdateListSizes(s)
		return nil, true
	}

	if s.Focus == state.FocusSidebar {
		return handleSidebarIntent(s, parsed)
	}
	return handleMainIntent(s, parsed, deps)
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func switchFocus(s *state.ModelState) {
	if s.Focus == state.FocusSidebar || !s.Sidebar.Visible() {
		s.SetFocus(state.FocusMain)
		return
	}
	s.SetFocus(state.FocusSidebar)
}

func handleSidebarIntent(s *state.ModelState, parsed intent.Intent) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Toggle:
		entry, ok := presenter.SelectedEntry(s.EntryList)
		if !ok || len(entry.Submenu()) == 0 {
			return nil, true
		}
		s.Sidebar.ToggleSubmenu(entry.ID)
		UpdateListSizes(s)
		return nil, true
	case intent.Open:
		s.SetFocus(state.FocusMain)
		UpdateListSizes(s)
		return nil, true
	case intent.Back:
		if s.Sidebar.Mobile && s.Sidebar.MobileOpen {
			s.Sidebar.ToggleMobile()
			s.SetFocus(state.FocusMain)
			UpdateListSizes(s)
		}
		return nil, true
	}
	return nil, false
}

func handleMainIntent(s *state.ModelState, parsed intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch s.ActiveEntry() {
	case presenter.EntryPagination:
		if handlePaginationIntent(s, parsed, deps.Pagination) {
			return nil, true
		}
	case presenter.EntryDropdown:
		if handleDropdownIntent(s, parsed) {
			return nil, true
		}
	case presenter.EntrySwitch:
		if parsed.Type == intent.Toggle || parsed.Type == intent.Open {
			s.SwitchOn = !s.SwitchOn
			return nil, true
		}
	case presenter.EntryButton:
		if parsed.Type == intent.Open {
			return startButtonLoading(s), true
		}
	case presenter.EntryStepper:
		if handleStepperIntent(s, parsed) {
			return nil, true
		}
	case presenter.EntryModal:
		if parsed.Type == intent.Open {
			s.ModalOpen = true
			return nil, true
		}
	case presenter.EntryToast:
		if parsed.Type == intent.Open {
			return ShowToast(s, ToastMessage), true
		}
	}

	if parsed.Type == intent.Back && s.Sidebar.Visible() {
		s.SetFocus(state.FocusSidebar)
		UpdateListSizes(s)
	}
	return nil, true
}

func handlePaginationIntent(s *state.ModelState, parsed intent.Intent, svc usecase.PaginationService) bool {
	setPage := func(p int) { s.Page = p }
	switch parsed.Type {
	case intent.PrevPage:
		svc.Previous(s.Page, s.TotalPages, setPage)
	case intent.NextPage:
		svc.Next(s.Page, s.TotalPages, setPage)
	case intent.FirstPage:
		svc.Select(s.Page, 1, s.TotalPages, setPage)
	case intent.LastPage:
		svc.Select(s.Page, s.TotalPages, s.TotalPages, setPage)
	default:
		return false
	}
	return true
}

func handleDropdownIntent(s *state.ModelState, parsed intent.Intent) bool {
	d := &s.Dropdown
	switch parsed.Type {
	case intent.Open:
		if !d.Open {
			d.Open = true
			return true
		}
		if d.Cursor >= 0 && d.Cursor < len(d.Items) {
			d.Selected = d.Items[d.Cursor]
			s.StatusMessage = fmt.Sprintf("Selected %q", d.Selected)
		}
		d.Open = false
		return true
	case intent.Up:
		if d.Open && d.Cursor > 0 {
			d.Cursor--
		}
		return d.Open
	case intent.Down:
		if d.Open && d.Cursor < len(d.Items)-1 {
			d.Cursor++
		}
		return d.Open
	case intent.Back:
		if d.Open {
			d.Open = false
			return true
		}
	}
	return false
}

func handleStepperIntent(s *state.ModelState, parsed intent.Intent) bool {
	if s.Stepper == nil || len(s.Stepper.Steps) == 0 {
		return false
	}
	switch parsed.Type {
	case intent.Up:
		s.StepCursor = max(s.StepCursor-1, 0)
	case intent.Down:
		s.StepCursor = min(s.StepCursor+1, len(s.Stepper.Steps)-1)
	case intent.Open:
		s.Stepper.Toggle(s.StepCursor)
	case intent.Toggle:
		s.Stepper.ToggleCompleted(s.StepCursor)
	default:
		return false
	}
	return true
}

func startButtonLoading(s *state.ModelState) tea.Cmd {
	if s.ButtonLoading {
		return nil
	}
	s.ButtonLoading = true
	return tea.Batch(s.Spinner.Tick, tea.Tick(ButtonLoadingDuration, func(time.Time) tea.Msg {
		return ButtonDoneMsg{}
	}))
}

// ShowToast displays message and schedules it to hide. A newer toast
// replaces an older one and outlives its timer.
func ShowToast(s *state.ModelState, message string) tea.Cmd {
	s.ToastSeq++
	s.Toast = message
	seq := s.ToastSeq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// HandleToastExpired hides the toast if msg refers to the latest one.
func HandleToastExpired(s *state.ModelState, msg ToastExpiredMsg) {
	if msg.Seq == s.ToastSeq {
		s.Toast = ""
	}
}

// HandleButtonDone ends the loading state.
func HandleButtonDone(s *state.ModelState) {
	s.ButtonLoading = false
}

// HandleSidebarSaved surfaces persistence failures in the footer.
func HandleSidebarSaved(s *state.ModelState, msg SidebarSavedMsg) {
	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = "Sidebar state not saved"
	}
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Sidebar.Resize(msg.Width)
	if !s.Sidebar.Visible() {
		s.SetFocus(state.FocusMain)
	} else {
		s.SetFocus(s.Focus)
	}

	UpdateListSizes(s)
}

// HandleSelectionChange records the newly selected sidebar entry and
// persists it. It returns nil when the selection did not change.
func HandleSelectionChange(s *state.ModelState, deps Deps) tea.Cmd {
	entry, ok := presenter.SelectedEntry(s.EntryList)
	if !ok || entry.ID == s.Sidebar.ActiveItem {
		return nil
	}
	s.Sidebar.SetActiveItem(entry.ID)
	s.Err = nil
	s.StatusMessage = ""
	return SaveSidebarCmd(deps.Sidebar, s.Sidebar)
}

// SyncSelection points the sidebar list at the active entry, or records
// the list's current selection when no stored entry matches.
func SyncSelection(s *state.ModelState) {
	for i, item := range s.EntryList.Items() {
		if e, ok := item.(*presenter.Entry); ok && e.ID == s.Sidebar.ActiveItem {
			s.EntryList.Select(i)
			return
		}
	}
	if entry, ok := presenter.SelectedEntry(s.EntryList); ok {
		s.Sidebar.SetActiveItem(entry.ID)
	}
}
