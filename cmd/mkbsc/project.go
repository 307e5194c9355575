package main

import (
	"github.com/charmbracelet/log"
)

// ProjectCmd projects a game onto a single player and persists the result.
type ProjectCmd struct {
	Input   string `arg:"" help:"Game file (.hcl definition or .toml persisted game)"`
	Player  int    `short:"p" default:"0" help:"Player index to project onto"`
	Output  string `short:"o" required:"" help:"Output file for the projected game (TOML)"`
	Trusted bool   `help:"Skip revalidation of persisted input games"`
}

func (c *ProjectCmd) Run(logger *log.Logger) error {
	g, err := loadGame(c.Input, c.Trusted)
	if err != nil {
		return err
	}

	projected, err := g.Project(c.Player)
	if err != nil {
		return err
	}

	logger.Info("projected",
		"input", c.Input,
		"player", c.Player,
		"transitions", len(projected.Transitions()))

	return saveGame(c.Output, projected)
}
