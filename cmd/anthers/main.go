// Command anthers is a terminal component gallery built around a pagination
// page-window computer.
package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the command tree.
type CLI struct {
	Config    string `help:"Config file path (default ~/.config/anthers/config.yaml)." type:"path"`
	LogLevel  string `help:"Override the configured log level." name:"log-level"`
	Ephemeral bool   `help:"Keep UI state in memory instead of the state database."`

	Gallery GalleryCmd `cmd:"" default:"1" help:"Browse the component gallery (default)."`
	Pages   PagesCmd   `cmd:"" help:"Print the page window for CURRENT of TOTAL pages."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("anthers"),
		kong.Description("Terminal component gallery with a pagination page-window computer."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
