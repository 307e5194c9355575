package mkbsc

import "fmt"

// Game is an immutable multiplayer game of imperfect information: a state
// set, an initial state, a joint-action alphabet, a fully explicit labeled
// transition relation, and one observation partitioning per player.
// Operators never mutate a game; they build new instances.
type Game struct {
	states        []*State
	byKey         map[string]*State
	initial       *State
	alphabet      *Alphabet
	transitions   []Transition
	delta         map[string]map[string]*StateSet
	partitionings []*Partitioning
}

// Create validates construction input and builds a game. State labels form
// the state domain; edges may use the wildcard-action and set-valued-target
// shorthands; groupings may use the Others shorthand. All shorthands are
// expanded here, so the stored relation and partitionings are explicit.
func Create(stateLabels []string, initial string, actions [][]string, edges []Edge, groupings []Grouping) (*Game, error) {
	alphabet, err := NewAlphabet(actions...)
	if err != nil {
		return nil, err
	}

	states := make([]*State, 0, len(stateLabels))
	byKey := make(map[string]*State, len(stateLabels))
	for _, label := range stateLabels {
		s := AtomicState(label)
		if _, ok := byKey[s.key]; ok {
			continue
		}
		byKey[s.key] = s
		states = append(states, s)
	}

	initialState, ok := byKey[AtomicState(initial).key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInitialState, initial)
	}

	transitions, err := expandEdges(byKey, alphabet, edges)
	if err != nil {
		return nil, err
	}

	partitionings, err := expandGroupings(states, byKey, groupings, alphabet.Players())
	if err != nil {
		return nil, err
	}

	return New(states, initialState, alphabet, transitions, partitionings, true)
}

// New assembles a game from fully explicit, already expanded parts. It is
// the entry point for adapters that rebuild persisted games and for the
// operators; most callers want Create. Validation may be skipped for large
// games that were validated before being persisted.
func New(states []*State, initial *State, alphabet *Alphabet, transitions []Transition, partitionings []*Partitioning, validate bool) (*Game, error) {
	g := &Game{
		states:        append([]*State(nil), states...),
		byKey:         make(map[string]*State, len(states)),
		initial:       initial,
		alphabet:      alphabet,
		partitionings: append([]*Partitioning(nil), partitionings...),
	}
	for _, s := range g.states {
		g.byKey[s.key] = s
	}

	g.delta = make(map[string]map[string]*StateSet)
	g.transitions = make([]Transition, 0, len(transitions))
	for _, t := range transitions {
		byAction, ok := g.delta[t.Source.key]
		if !ok {
			byAction = make(map[string]*StateSet)
			g.delta[t.Source.key] = byAction
		}
		targets, ok := byAction[t.Action.Key()]
		if !ok {
			targets = NewStateSet()
			byAction[t.Action.Key()] = targets
		}
		if targets.Add(t.Target) {
			g.transitions = append(g.transitions, t)
		}
	}

	if validate {
		if err := g.validate(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) validate() error {
	if len(g.states) == 0 {
		return fmt.Errorf("%w: empty state set", ErrUnknownInitialState)
	}
	if _, ok := g.byKey[g.initial.key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownInitialState, g.initial)
	}
	arity := g.states[0].Arity()
	for _, s := range g.states {
		if s.Arity() != arity {
			return fmt.Errorf("%w: state %s has %d knowledge components, want %d",
				ErrMalformedTransition, s, s.Arity(), arity)
		}
	}
	for _, t := range g.transitions {
		if _, ok := g.byKey[t.Source.key]; !ok {
			return fmt.Errorf("%w: source %s is not in the state set", ErrMalformedTransition, t.Source)
		}
		if _, ok := g.byKey[t.Target.key]; !ok {
			return fmt.Errorf("%w: target %s is not in the state set", ErrMalformedTransition, t.Target)
		}
		if !g.alphabet.Contains(t.Action) {
			return fmt.Errorf("%w: action %s is not in the alphabet", ErrMalformedTransition, t.Action)
		}
	}
	if len(g.partitionings) != g.alphabet.Players() {
		return fmt.Errorf("%w: %d partitionings for %d players",
			ErrInvalidPartition, len(g.partitionings), g.alphabet.Players())
	}
	for player, p := range g.partitionings {
		if err := p.covers(g.states); err != nil {
			return fmt.Errorf("player %d: %w", player, err)
		}
	}
	return nil
}

func expandEdges(byKey map[string]*State, alphabet *Alphabet, edges []Edge) ([]Transition, error) {
	var transitions []Transition
	for _, edge := range edges {
		source, ok := byKey[AtomicState(edge.From).key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown source state %q", ErrMalformedTransition, edge.From)
		}

		var actions []JointAction
		if edge.Action == nil {
			actions = alphabet.JointActions()
		} else {
			if !alphabet.Contains(edge.Action) {
				return nil, fmt.Errorf("%w: action %s is not expressible in the alphabet",
					ErrMalformedTransition, edge.Action)
			}
			actions = []JointAction{edge.Action}
		}

		if len(edge.To) == 0 {
			return nil, fmt.Errorf("%w: edge from %q has no target", ErrMalformedTransition, edge.From)
		}
		for _, targetLabel := range edge.To {
			target, ok := byKey[AtomicState(targetLabel).key]
			if !ok {
				return nil, fmt.Errorf("%w: unknown target state %q", ErrMalformedTransition, targetLabel)
			}
			for _, action := range actions {
				transitions = append(transitions, Transition{Source: source, Action: action, Target: target})
			}
		}
	}
	return transitions, nil
}

func expandGroupings(states []*State, byKey map[string]*State, groupings []Grouping, players int) ([]*Partitioning, error) {
	if len(groupings) != players {
		return nil, fmt.Errorf("%w: %d groupings for %d players", ErrInvalidPartition, len(groupings), players)
	}
	partitionings := make([]*Partitioning, 0, players)
	for player, grouping := range groupings {
		var classes []*Observation
		covered := NewStateSet()
		for _, group := range grouping.Classes {
			members := make([]*State, 0, len(group))
			for _, label := range group {
				s, ok := byKey[AtomicState(label).key]
				if !ok {
					return nil, fmt.Errorf("%w: player %d groups unknown state %q",
						ErrInvalidPartition, player, label)
				}
				members = append(members, s)
				covered.Add(s)
			}
			classes = append(classes, NewObservation(members...))
		}
		if grouping.Others {
			for _, s := range states {
				if !covered.Contains(s) {
					classes = append(classes, NewObservation(s))
				}
			}
		}
		p, err := NewPartitioning(classes...)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", player, err)
		}
		partitionings = append(partitionings, p)
	}
	return partitionings, nil
}

// Players returns the number of players.
func (g *Game) Players() int { return g.alphabet.Players() }

// States returns the state set in construction order.
func (g *Game) States() []*State {
	out := make([]*State, len(g.states))
	copy(out, g.states)
	return out
}

// Initial returns the initial state.
func (g *Game) Initial() *State { return g.initial }

// Alphabet returns the joint-action alphabet.
func (g *Game) Alphabet() *Alphabet { return g.alphabet }

// Transitions returns the explicit transition relation.
func (g *Game) Transitions() []Transition {
	out := make([]Transition, len(g.transitions))
	copy(out, g.transitions)
	return out
}

// Partitioning returns the given player's observation partitioning.
func (g *Game) Partitioning(player int) *Partitioning {
	return g.partitionings[player]
}

// Contains reports whether s belongs to the game, by structural equality.
func (g *Game) Contains(s *State) bool {
	_, ok := g.byKey[s.key]
	return ok
}

// ObservationContaining returns the observation class of the given player
// holding s.
func (g *Game) ObservationContaining(player int, s *State) (*Observation, error) {
	if !g.Contains(s) {
		return nil, fmt.Errorf("%w: %s", ErrStateNotInGame, s)
	}
	class, ok := g.partitionings[player].ObservationContaining(s)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no observation class for player %d", ErrStateNotInGame, s, player)
	}
	return class, nil
}

// StateByKnowledge looks up the state with the given knowledge tuple.
func (g *Game) StateByKnowledge(components ...*Knowledge) (*State, bool) {
	s, ok := g.byKey[stateKey(components)]
	return s, ok
}

// StateByLabel looks up a base-game state by its atomic label.
func (g *Game) StateByLabel(label string) (*State, bool) {
	s, ok := g.byKey[AtomicState(label).key]
	return s, ok
}

// ConsistentBase returns the base-game knowledge values compatible with
// every player's knowledge in s.
func (g *Game) ConsistentBase(s *State) ([]*Knowledge, error) {
	member, ok := g.byKey[s.key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStateNotInGame, s)
	}
	return member.ConsistentBase(), nil
}
