package mkbsc

import (
	"fmt"
	"strings"
)

// Observation is one observation class: a non-empty set of states a player
// cannot tell apart.
type Observation struct {
	states *StateSet
}

// NewObservation builds an observation class over the given states.
func NewObservation(states ...*State) *Observation {
	return &Observation{states: NewStateSet(states...)}
}

// States returns the member states ordered canonically.
func (o *Observation) States() []*State { return o.states.Sorted() }

// Len returns the class size.
func (o *Observation) Len() int { return o.states.Len() }

// Contains reports membership by structural equality.
func (o *Observation) Contains(s *State) bool { return o.states.Contains(s) }

// StateSet returns the member states as a set.
func (o *Observation) StateSet() *StateSet { return NewStateSet(o.states.Sorted()...) }

func (o *Observation) key() string { return o.states.Key() }

func (o *Observation) String() string { return o.states.String() }

// Partitioning is one player's partition of the state space into
// observation classes.
type Partitioning struct {
	classes []*Observation
	byState map[string]*Observation
}

// NewPartitioning builds a partitioning from the given classes. Classes must
// be non-empty and pairwise disjoint; exhaustiveness over a game's state set
// is checked at game construction.
func NewPartitioning(classes ...*Observation) (*Partitioning, error) {
	p := &Partitioning{classes: classes, byState: make(map[string]*Observation)}
	for _, class := range classes {
		if class.Len() == 0 {
			return nil, fmt.Errorf("%w: empty observation class", ErrInvalidPartition)
		}
		for _, s := range class.States() {
			if _, ok := p.byState[s.key]; ok {
				return nil, fmt.Errorf("%w: state %s appears in two classes", ErrInvalidPartition, s)
			}
			p.byState[s.key] = class
		}
	}
	return p, nil
}

// Classes returns the observation classes in construction order.
func (p *Partitioning) Classes() []*Observation {
	out := make([]*Observation, len(p.classes))
	copy(out, p.classes)
	return out
}

// ObservationContaining returns the class holding s, if any.
func (p *Partitioning) ObservationContaining(s *State) (*Observation, bool) {
	class, ok := p.byState[s.key]
	return class, ok
}

// covers checks exhaustiveness and uniqueness over the given state set.
func (p *Partitioning) covers(states []*State) error {
	total := 0
	for _, class := range p.classes {
		total += class.Len()
	}
	if total != len(states) {
		return fmt.Errorf("%w: %d states grouped, %d in the game", ErrInvalidPartition, total, len(states))
	}
	for _, s := range states {
		if _, ok := p.byState[s.key]; !ok {
			return fmt.Errorf("%w: state %s not covered", ErrInvalidPartition, s)
		}
	}
	return nil
}

func (p *Partitioning) String() string {
	parts := make([]string, len(p.classes))
	for i, class := range p.classes {
		parts[i] = class.String()
	}
	return strings.Join(parts, " ")
}
