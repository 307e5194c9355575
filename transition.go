package mkbsc

import "fmt"

// Transition is one fully explicit labeled edge of the game graph.
type Transition struct {
	Source *State
	Action JointAction
	Target *State
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%s--> %s", t.Source, t.Action, t.Target)
}

// Edge is the construction-input form of one or more transitions. A nil
// Action is the wildcard shorthand for every joint action; To naturally
// expresses the set-valued-target shorthand by listing several targets.
// Both shorthands are expanded once by Create; the stored relation is
// always explicit.
type Edge struct {
	From   string
	Action JointAction
	To     []string
}

// To1 builds an explicit single-target edge.
func To1(from string, action JointAction, to string) Edge {
	return Edge{From: from, Action: action, To: []string{to}}
}

// Grouping is the construction-input form of one player's partitioning.
// When Others is set, every state not mentioned in Classes becomes its own
// singleton class.
type Grouping struct {
	Classes [][]string
	Others  bool
}
