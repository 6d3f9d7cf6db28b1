// Package logging builds the zerolog logger used across the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	// File is opened in append mode when Writer is nil.
	File          string
	HumanReadable bool
	Writer        io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a configured logger. The returned closer releases the log
// file, if one was opened.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	writer := opts.Writer
	var closer io.Closer = nopCloser{}
	if writer == nil {
		switch {
		case opts.File != "":
			if err := os.MkdirAll(filepath.Dir(opts.File), 0750); err != nil {
				return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
			}
			writer, closer = f, f
		default:
			writer = os.Stderr
		}
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}
