package mkbsc

import (
	"sort"
	"strconv"
	"strings"
)

// Knowledge is a single player's knowledge value. In a hand-built game it is
// an atomic label; in a game produced by KBSC it is a composite value, a set
// of states from the game the construction was applied to. Knowledge values
// are immutable and compared structurally: two values are equal exactly when
// their canonical keys are equal, recursively through composite members.
type Knowledge struct {
	atom    string
	members []*State // sorted by key, nil for atomic values
	key     string
}

func atomicKnowledge(label string) *Knowledge {
	return &Knowledge{atom: label, key: strconv.Quote(label)}
}

func compositeKnowledge(members *StateSet) *Knowledge {
	sorted := members.Sorted()
	keys := make([]string, len(sorted))
	for i, s := range sorted {
		keys[i] = s.key
	}
	return &Knowledge{
		members: sorted,
		key:     "{" + strings.Join(keys, ",") + "}",
	}
}

// IsComposite reports whether k is a set of predecessor-game states rather
// than an atomic label.
func (k *Knowledge) IsComposite() bool { return k.members != nil }

// Atom returns the label of an atomic knowledge value, or "" for a
// composite one.
func (k *Knowledge) Atom() string { return k.atom }

// Members returns the predecessor-game states a composite value denotes.
// The returned slice is a copy and sorted canonically.
func (k *Knowledge) Members() []*State {
	out := make([]*State, len(k.members))
	copy(out, k.members)
	return out
}

// Key returns the canonical representation used for structural equality
// and hashing.
func (k *Knowledge) Key() string { return k.key }

// Equal reports structural equality, recursing through composite members.
func (k *Knowledge) Equal(other *Knowledge) bool {
	return other != nil && k.key == other.key
}

// ConsistentBase returns the atomic base-game knowledge values this value is
// built from: the value itself when atomic, otherwise the union of the
// members' consistent bases. The result is sorted canonically.
func (k *Knowledge) ConsistentBase() []*Knowledge {
	return sortedKnowledge(k.baseMap())
}

func (k *Knowledge) baseMap() map[string]*Knowledge {
	if !k.IsComposite() {
		return map[string]*Knowledge{k.key: k}
	}
	acc := make(map[string]*Knowledge)
	for _, s := range k.members {
		for key, atom := range s.baseMap() {
			acc[key] = atom
		}
	}
	return acc
}

func (k *Knowledge) String() string {
	if !k.IsComposite() {
		return k.atom
	}
	parts := make([]string, len(k.members))
	for i, s := range k.members {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func sortedKnowledge(m map[string]*Knowledge) []*Knowledge {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]*Knowledge, len(keys))
	for i, key := range keys {
		out[i] = m[key]
	}
	return out
}
