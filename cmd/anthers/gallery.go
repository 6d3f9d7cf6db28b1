package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/anthers/internal/application/usecase"
	"github.com/tesso57/anthers/internal/presentation/tui"
)

// GalleryCmd runs the interactive gallery.
type GalleryCmd struct{}

// Run starts the bubbletea program on the alternate screen.
func (c *GalleryCmd) Run(cli *CLI) error {
	a, err := loadApp(cli, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	store := a.openStateStore(cli.Ephemeral)
	model := tui.NewModel(
		a.settings,
		usecase.NewSidebarService(store, a.log),
		usecase.NewPaginationService(a.settings.Pagination, a.log),
		a.log,
	)

	a.log.Info().Msg("gallery started")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.log.Error().Err(err).Msg("gallery failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	a.log.Info().Msg("gallery closed")
	return nil
}
