package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tesso57/anthers/internal/application/settings"
	"github.com/tesso57/anthers/internal/application/usecase"
)

// PagesCmd prints a page window.
type PagesCmd struct {
	Current  int `arg:"" help:"Current page (clamped into range)."`
	Total    int `arg:"" help:"Total number of pages."`
	Siblings int `help:"Pages on each side of the current page; negative uses the config value." default:"-1"`
	Edges    int `help:"Pages pinned at each end; negative uses the config value." default:"-1"`
}

// Run prints the window and the previous/next state to stdout.
func (c *PagesCmd) Run(cli *CLI) error {
	a, err := loadApp(cli, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	return c.print(os.Stdout, usecase.NewPaginationService(c.counts(a.settings.Pagination), a.log))
}

func (c *PagesCmd) counts(cfg settings.PaginationConfig) settings.PaginationConfig {
	if c.Siblings >= 0 {
		cfg.Siblings = c.Siblings
	}
	if c.Edges >= 0 {
		cfg.Edges = c.Edges
	}
	return cfg
}

func (c *PagesCmd) print(w io.Writer, svc usecase.PaginationService) error {
	window := svc.Window(c.Current, c.Total)
	if len(window) == 0 {
		_, err := fmt.Fprintln(w, "(single page, nothing to show)")
		return err
	}

	nav := svc.Nav(c.Current, c.Total)
	prev, next := "-", "-"
	if p, ok := nav.Previous(); ok {
		prev = fmt.Sprint(p)
	}
	if n, ok := nav.Next(); ok {
		next = fmt.Sprint(n)
	}

	if _, err := fmt.Fprintln(w, window.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d of %d  previous: %s  next: %s\n", nav.Current, nav.Total, prev, next)
	return err
}
