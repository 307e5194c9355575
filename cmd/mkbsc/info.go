package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// InfoCmd prints a summary of a game file.
type InfoCmd struct {
	Input string `arg:"" help:"Game file (.hcl definition or .toml persisted game)"`
}

func (c *InfoCmd) Run(logger *log.Logger) error {
	g, err := loadGame(c.Input, false)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(c.Input))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "players:\t%s\n", valueStyle.Render(fmt.Sprintf("%d", g.Players())))
	fmt.Fprintf(w, "states:\t%s\n", valueStyle.Render(fmt.Sprintf("%d", len(g.States()))))
	fmt.Fprintf(w, "transitions:\t%s\n", valueStyle.Render(fmt.Sprintf("%d", len(g.Transitions()))))
	fmt.Fprintf(w, "initial:\t%s\n", valueStyle.Render(g.Initial().String()))
	fmt.Fprintf(w, "alphabet:\t%s\n", valueStyle.Render(g.Alphabet().String()))
	for player := 0; player < g.Players(); player++ {
		classes := g.Partitioning(player).Classes()
		fmt.Fprintf(w, "observations[%d]:\t%s classes\n", player,
			valueStyle.Render(fmt.Sprintf("%d", len(classes))))
	}
	return w.Flush()
}
