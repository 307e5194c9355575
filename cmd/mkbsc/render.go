package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/sandell/mkbsc/internal/dot"
)

// RenderCmd writes a game as a Graphviz DOT digraph.
type RenderCmd struct {
	Input          string `arg:"" help:"Game file (.hcl definition or .toml persisted game)"`
	Output         string `short:"o" help:"Output file (stdout when omitted)"`
	SuppressEdges  bool   `help:"Drop joint-action labels from transitions"`
	NoObservations bool   `help:"Drop the dashed observation edges"`
	Isocheck       bool   `help:"Label states by their consistent base only"`
	Trusted        bool   `help:"Skip revalidation of persisted input games"`
}

func (c *RenderCmd) Run(logger *log.Logger) error {
	g, err := loadGame(c.Input, c.Trusted)
	if err != nil {
		return err
	}

	var opts []dot.Option
	if c.SuppressEdges {
		opts = append(opts, dot.WithoutEdgeLabels())
	}
	if c.NoObservations {
		opts = append(opts, dot.WithoutObservations())
	}
	if c.Isocheck {
		opts = append(opts, dot.WithLabelStyle(dot.LabelIsocheck))
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Output, err)
		}
		defer f.Close()
		w = f
	}

	return dot.NewEncoder(opts...).Encode(w, g)
}
