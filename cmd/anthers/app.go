package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/tesso57/anthers/internal/application/settings"
	"github.com/tesso57/anthers/internal/application/usecase"
	"github.com/tesso57/anthers/internal/infrastructure/config"
	"github.com/tesso57/anthers/internal/infrastructure/logging"
	"github.com/tesso57/anthers/internal/infrastructure/storage"
)

type stateStore interface {
	usecase.StateStore
	io.Closer
}

// app holds what every command needs after startup.
type app struct {
	settings settings.Settings
	log      zerolog.Logger
	closers  []io.Closer
}

// loadApp reads the config and builds the logger. logTo overrides the
// configured log file (the pages command logs to stderr).
func loadApp(cli *CLI, logTo io.Writer) (*app, error) {
	store, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	level := cfg.Log.Level
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	logger, closer, err := logging.New(logging.Options{
		Level:         level,
		File:          cfg.Log.File,
		Writer:        logTo,
		HumanReadable: logTo != nil,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("config", store.Path()).Msg("config loaded")
	return &app{settings: cfg, log: logger, closers: []io.Closer{closer}}, nil
}

// openStateStore opens the SQLite state database, falling back to memory
// when it cannot be opened.
func (a *app) openStateStore(ephemeral bool) stateStore {
	if ephemeral {
		return storage.NewMemory()
	}
	db, err := storage.Open(a.settings.StateFile)
	if err != nil {
		a.log.Warn().Err(err).Str("path", a.settings.StateFile).Msg("state database unavailable, using memory")
		return storage.NewMemory()
	}
	a.log.Debug().Str("path", db.Path()).Msg("state database opened")
	a.closers = append(a.closers, db)
	return db
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn().Err(err).Msg("close failed")
		}
	}
}
