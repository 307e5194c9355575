package mkbsc

import (
	"sort"
	"strings"
)

// StateSet is a set of states keyed by their canonical keys. Iteration via
// Sorted is deterministic. The zero value is not usable; use NewStateSet.
type StateSet struct {
	byKey map[string]*State
}

// NewStateSet builds a set from the given states, deduplicating structurally
// equal ones.
func NewStateSet(states ...*State) *StateSet {
	ss := &StateSet{byKey: make(map[string]*State, len(states))}
	for _, s := range states {
		ss.byKey[s.key] = s
	}
	return ss
}

// Add inserts s and reports whether it was not already present.
func (ss *StateSet) Add(s *State) bool {
	if _, ok := ss.byKey[s.key]; ok {
		return false
	}
	ss.byKey[s.key] = s
	return true
}

// Contains reports membership by structural equality.
func (ss *StateSet) Contains(s *State) bool {
	_, ok := ss.byKey[s.key]
	return ok
}

// Len returns the number of states in the set.
func (ss *StateSet) Len() int { return len(ss.byKey) }

// Sorted returns the states ordered by canonical key.
func (ss *StateSet) Sorted() []*State {
	keys := make([]string, 0, len(ss.byKey))
	for key := range ss.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]*State, len(keys))
	for i, key := range keys {
		out[i] = ss.byKey[key]
	}
	return out
}

// Union returns a new set holding every state of ss and other.
func (ss *StateSet) Union(other *StateSet) *StateSet {
	res := NewStateSet()
	for key, s := range ss.byKey {
		res.byKey[key] = s
	}
	for key, s := range other.byKey {
		res.byKey[key] = s
	}
	return res
}

// Intersect returns a new set holding the states present in both ss and
// other.
func (ss *StateSet) Intersect(other *StateSet) *StateSet {
	res := NewStateSet()
	for key, s := range ss.byKey {
		if _, ok := other.byKey[key]; ok {
			res.byKey[key] = s
		}
	}
	return res
}

// Equal reports whether both sets hold structurally equal states.
func (ss *StateSet) Equal(other *StateSet) bool {
	if len(ss.byKey) != len(other.byKey) {
		return false
	}
	for key := range ss.byKey {
		if _, ok := other.byKey[key]; !ok {
			return false
		}
	}
	return true
}

// Key returns a canonical representation of the set contents.
func (ss *StateSet) Key() string {
	keys := make([]string, 0, len(ss.byKey))
	for key := range ss.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return "{" + strings.Join(keys, ",") + "}"
}

func (ss *StateSet) String() string {
	states := ss.Sorted()
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
