package mkbsc

import "fmt"

// Project derives the single-player game seen by player. The alphabet keeps
// only that player's component; every joint action whose component equals a
// single-player action contributes its targets, so the other players'
// choices become nondeterminism. States keep their full knowledge tuples,
// so the result can still feed KBSC, and the player's partitioning is
// inherited unchanged.
func (g *Game) Project(player int) (*Game, error) {
	if player < 0 || player >= g.Players() {
		return nil, fmt.Errorf("mkbsc: project: no player %d in a %d-player game", player, g.Players())
	}

	transitions := make([]Transition, 0, len(g.transitions))
	for _, t := range g.transitions {
		transitions = append(transitions, Transition{
			Source: t.Source,
			Action: JointAction{t.Action[player]},
			Target: t.Target,
		})
	}

	// New deduplicates the collapsed edges.
	return New(g.states, g.initial, g.alphabet.restrict(player), transitions,
		[]*Partitioning{g.partitionings[player]}, false)
}
