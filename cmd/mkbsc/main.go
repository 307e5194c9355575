package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" default:"info" help:"Log level (debug, info, warn, error)"`

	Info    InfoCmd    `cmd:"" help:"Summarize a game"`
	Kbsc    KbscCmd    `cmd:"" help:"Apply the knowledge-based subset construction once"`
	Project ProjectCmd `cmd:"" help:"Project a game onto a single player"`
	Iterate IterateCmd `cmd:"" help:"Apply the construction until the game stabilizes"`
	Render  RenderCmd  `cmd:"" help:"Render a game as Graphviz DOT"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mkbsc"),
		kong.Description("Knowledge-based subset construction for multiplayer games of imperfect information"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	switch cli.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
