package mkbsc

import (
	"fmt"
	"strconv"
	"strings"
)

// JointAction is one action per player, taken simultaneously.
type JointAction []string

// Key returns the canonical representation used to index the transition
// relation.
func (a JointAction) Key() string {
	quoted := make([]string, len(a))
	for i, action := range a {
		quoted[i] = strconv.Quote(action)
	}
	return strings.Join(quoted, ",")
}

// Equal reports component-wise equality.
func (a JointAction) Equal(other JointAction) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

func (a JointAction) String() string {
	if len(a) == 1 {
		return a[0]
	}
	return "(" + strings.Join(a, ", ") + ")"
}

// Alphabet is an ordered sequence of per-player action sets.
type Alphabet struct {
	actions [][]string
	joint   []JointAction
}

// NewAlphabet validates and builds an alphabet. Every player's action set
// must be non-empty and free of duplicates.
func NewAlphabet(actions ...[]string) (*Alphabet, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrEmptyAlphabet)
	}
	copied := make([][]string, len(actions))
	for player, playerActions := range actions {
		if len(playerActions) == 0 {
			return nil, fmt.Errorf("%w: player %d", ErrEmptyAlphabet, player)
		}
		seen := make(map[string]bool, len(playerActions))
		for _, action := range playerActions {
			if seen[action] {
				return nil, fmt.Errorf("%w: player %d repeats action %q", ErrEmptyAlphabet, player, action)
			}
			seen[action] = true
		}
		copied[player] = append([]string(nil), playerActions...)
	}
	a := &Alphabet{actions: copied}
	a.joint = a.permute()
	return a, nil
}

// Players returns the number of players.
func (a *Alphabet) Players() int { return len(a.actions) }

// Actions returns the action set of the given player.
func (a *Alphabet) Actions(player int) []string {
	return append([]string(nil), a.actions[player]...)
}

// JointActions returns every possible joint action in a fixed order:
// the cartesian product with the first player varying slowest.
func (a *Alphabet) JointActions() []JointAction {
	out := make([]JointAction, len(a.joint))
	copy(out, a.joint)
	return out
}

// Contains reports whether action is expressible in the alphabet.
func (a *Alphabet) Contains(action JointAction) bool {
	if len(action) != len(a.actions) {
		return false
	}
	for player, component := range action {
		found := false
		for _, candidate := range a.actions[player] {
			if candidate == component {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (a *Alphabet) permute() []JointAction {
	total := 1
	for _, playerActions := range a.actions {
		total *= len(playerActions)
	}
	out := make([]JointAction, 0, total)
	indexes := make([]int, len(a.actions))
	for {
		joint := make(JointAction, len(a.actions))
		for player, idx := range indexes {
			joint[player] = a.actions[player][idx]
		}
		out = append(out, joint)

		player := len(indexes) - 1
		for player >= 0 {
			indexes[player]++
			if indexes[player] < len(a.actions[player]) {
				break
			}
			indexes[player] = 0
			player--
		}
		if player < 0 {
			return out
		}
	}
}

// restrict returns a single-player alphabet holding only the given player's
// actions.
func (a *Alphabet) restrict(player int) *Alphabet {
	restricted, err := NewAlphabet(a.actions[player])
	if err != nil {
		// The source alphabet was validated on construction.
		panic(err)
	}
	return restricted
}

func (a *Alphabet) String() string {
	parts := make([]string, len(a.actions))
	for i, playerActions := range a.actions {
		parts[i] = "{" + strings.Join(playerActions, ", ") + "}"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
