package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/sandell/mkbsc"
)

// IterateCmd runs the fixed-point driver over one or more games and prints
// a per-iteration size table for each.
type IterateCmd struct {
	Inputs  []string `arg:"" help:"Game files (.hcl definitions or .toml persisted games)"`
	Limit   int      `default:"10" help:"Maximum number of applications (negative disables the cap)"`
	Trusted bool     `help:"Skip revalidation of persisted input games"`
}

func (c *IterateCmd) Run(logger *log.Logger) error {
	results := make([]*mkbsc.IterationResult, len(c.Inputs))

	var eg errgroup.Group
	for i, input := range c.Inputs {
		eg.Go(func() error {
			g, err := loadGame(input, c.Trusted)
			if err != nil {
				return err
			}
			result, err := mkbsc.IterateUntilIsomorphic(g, c.Limit, mkbsc.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		printIteration(c.Inputs[i], result)
	}
	return nil
}

func printIteration(input string, result *mkbsc.IterationResult) {
	fmt.Println(headerStyle.Render(input))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "iteration\tstates\ttransitions\telapsed")
	for _, record := range result.Log {
		elapsed := "-"
		if record.Index > 0 {
			elapsed = record.Elapsed.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			record.Index,
			valueStyle.Render(fmt.Sprintf("%d", record.States)),
			valueStyle.Render(fmt.Sprintf("%d", record.Transitions)),
			elapsed)
	}
	w.Flush()

	fmt.Println(resultStyle.Render(result.Classification.String()))
}
