package main

import (
	"github.com/charmbracelet/log"
)

// KbscCmd applies the construction once and persists the knowledge game.
type KbscCmd struct {
	Input   string `arg:"" help:"Game file (.hcl definition or .toml persisted game)"`
	Output  string `short:"o" required:"" help:"Output file for the knowledge game (TOML)"`
	Trusted bool   `help:"Skip revalidation of persisted input games"`
}

func (c *KbscCmd) Run(logger *log.Logger) error {
	g, err := loadGame(c.Input, c.Trusted)
	if err != nil {
		return err
	}

	gk, err := g.KBSC()
	if err != nil {
		return err
	}

	logger.Info("construction applied",
		"input", c.Input,
		"states", len(gk.States()),
		"transitions", len(gk.Transitions()))

	return saveGame(c.Output, gk)
}
