// Package gamefile reads and writes games on disk. Two formats are
// supported: HCL definitions, the hand-written construction input with the
// wildcard and rest-singleton shorthands, and TOML documents that persist
// fully constructed games, composite knowledge states included.
package gamefile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/sandell/mkbsc"
)

// Definition is the decoded shape of an HCL game definition file.
type Definition struct {
	Game GameBlock `hcl:"game,block"`
}

// GameBlock holds the state domain, the initial state, and one block per
// player and per transition group.
type GameBlock struct {
	States      []string          `hcl:"states"`
	Initial     string            `hcl:"initial"`
	Players     []PlayerBlock     `hcl:"player,block"`
	Transitions []TransitionBlock `hcl:"transition,block"`
}

// PlayerBlock declares a player's action set and observation partitioning.
// Observations lists the classes with more than one member; others = true
// completes the partition with singletons.
type PlayerBlock struct {
	Name         string     `hcl:"name,label"`
	Actions      []string   `hcl:"actions"`
	Observations [][]string `hcl:"observations,optional"`
	Others       bool       `hcl:"others,optional"`
}

// TransitionBlock declares one or more transitions. An omitted action means
// every joint action; to may name several targets.
type TransitionBlock struct {
	From   string   `hcl:"from"`
	Action []string `hcl:"action,optional"`
	To     []string `hcl:"to"`
}

// LoadDefinition parses the HCL definition at path and constructs the game.
func LoadDefinition(path string) (*mkbsc.Game, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}
	return ParseDefinition(path, src)
}

// ParseDefinition decodes an HCL definition from src and constructs the
// game through the validating factory. The filename only labels
// diagnostics.
func ParseDefinition(filename string, src []byte) (*mkbsc.Game, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("gamefile: parse %s: %s", filename, diags.Error())
	}

	var def Definition
	diags = gohcl.DecodeBody(file.Body, nil, &def)
	if diags.HasErrors() {
		return nil, fmt.Errorf("gamefile: decode %s: %s", filename, diags.Error())
	}
	return def.Build()
}

// Build expands the definition into factory input and constructs the game.
func (d *Definition) Build() (*mkbsc.Game, error) {
	actions := make([][]string, len(d.Game.Players))
	groupings := make([]mkbsc.Grouping, len(d.Game.Players))
	for i, player := range d.Game.Players {
		actions[i] = player.Actions
		groupings[i] = mkbsc.Grouping{Classes: player.Observations, Others: player.Others}
	}

	edges := make([]mkbsc.Edge, len(d.Game.Transitions))
	for i, t := range d.Game.Transitions {
		edges[i] = mkbsc.Edge{From: t.From, Action: mkbsc.JointAction(t.Action), To: t.To}
	}

	return mkbsc.Create(d.Game.States, d.Game.Initial, actions, edges, groupings)
}
