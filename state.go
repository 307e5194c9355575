package mkbsc

import "strings"

// State is an ordered tuple of per-player knowledge values. States built by
// the Create factory carry a single atomic component shared by every player;
// states built by KBSC carry one composite component per player. Projection
// preserves tuples untouched, so a projected game keeps the full multiplayer
// knowledge of its source.
//
// Identity is structural: two states are the same exactly when their
// knowledge tuples have equal canonical keys, regardless of which game
// instance allocated them.
type State struct {
	components []*Knowledge
	key        string
}

// AtomicState builds a base-game state carrying a single opaque label.
func AtomicState(label string) *State {
	return newState(atomicKnowledge(label))
}

// CompositeState builds a knowledge state from one belief set per player.
// Each belief set holds states of the predecessor game.
func CompositeState(beliefs ...*StateSet) *State {
	components := make([]*Knowledge, len(beliefs))
	for i, b := range beliefs {
		components[i] = compositeKnowledge(b)
	}
	return newState(components...)
}

func newState(components ...*Knowledge) *State {
	keys := make([]string, len(components))
	for i, c := range components {
		keys[i] = c.key
	}
	return &State{
		components: components,
		key:        "(" + strings.Join(keys, "|") + ")",
	}
}

// Arity returns the number of knowledge components of the state.
func (s *State) Arity() int { return len(s.components) }

// KnowledgeOf returns the knowledge value of the given player. Base-game
// states carry a single component shared by every player, so the player
// index collapses in that case.
func (s *State) KnowledgeOf(player int) *Knowledge {
	if len(s.components) == 1 {
		return s.components[0]
	}
	return s.components[player]
}

// Knowledges returns the full knowledge tuple.
func (s *State) Knowledges() []*Knowledge {
	out := make([]*Knowledge, len(s.components))
	copy(out, s.components)
	return out
}

// Key returns the canonical representation used for structural equality
// and hashing.
func (s *State) Key() string { return s.key }

// Equal reports structural equality of the knowledge tuples.
func (s *State) Equal(other *State) bool {
	return other != nil && s.key == other.key
}

// ConsistentBase returns the base-game knowledge values compatible with
// every player's knowledge in this state: the intersection across players
// of the per-component consistent bases. It is empty only for states that
// no well-formed construction can reach.
func (s *State) ConsistentBase() []*Knowledge {
	return sortedKnowledge(s.baseMap())
}

func (s *State) baseMap() map[string]*Knowledge {
	acc := s.components[0].baseMap()
	for _, c := range s.components[1:] {
		other := c.baseMap()
		for key := range acc {
			if _, ok := other[key]; !ok {
				delete(acc, key)
			}
		}
	}
	return acc
}

func (s *State) String() string {
	if len(s.components) == 1 {
		return s.components[0].String()
	}
	parts := make([]string, len(s.components))
	for i, c := range s.components {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func stateKey(components []*Knowledge) string {
	keys := make([]string, len(components))
	for i, c := range components {
		keys[i] = c.key
	}
	return "(" + strings.Join(keys, "|") + ")"
}
