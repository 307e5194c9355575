package gamefile

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sandell/mkbsc"
)

// document is the TOML shape of a persisted game. States are numbered so
// that every belief member carries a smaller id than the state built from
// it; game_states selects the ids that belong to the game itself, the rest
// are predecessor-game states referenced by beliefs.
type document struct {
	Actions     [][]string         `toml:"actions"`
	Initial     int                `toml:"initial"`
	GameStates  []int              `toml:"game_states"`
	Partitions  [][][]int          `toml:"partitions"`
	States      []stateRecord      `toml:"state"`
	Transitions []transitionRecord `toml:"transition"`
}

// stateRecord is one numbered state: an atomic label, or one belief per
// player given as ids of earlier records.
type stateRecord struct {
	ID      int     `toml:"id"`
	Label   string  `toml:"label,omitempty"`
	Beliefs [][]int `toml:"beliefs,omitempty"`
}

type transitionRecord struct {
	From   int      `toml:"from"`
	Action []string `toml:"action"`
	To     int      `toml:"to"`
}

// Encode writes g to w as a TOML document that Decode can rebuild.
func Encode(w io.Writer, g *mkbsc.Game) error {
	if g == nil {
		return fmt.Errorf("gamefile: game is nil")
	}

	e := &enumerator{ids: make(map[string]int)}
	gameStates := make([]int, 0, len(g.States()))
	for _, s := range g.States() {
		id, err := e.number(s)
		if err != nil {
			return err
		}
		gameStates = append(gameStates, id)
	}

	initial, err := e.number(g.Initial())
	if err != nil {
		return err
	}

	doc := document{
		Initial:    initial,
		GameStates: gameStates,
		States:     e.records,
	}
	for player := 0; player < g.Players(); player++ {
		doc.Actions = append(doc.Actions, g.Alphabet().Actions(player))

		var classes [][]int
		for _, class := range g.Partitioning(player).Classes() {
			var ids []int
			for _, s := range class.States() {
				id, err := e.number(s)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			classes = append(classes, ids)
		}
		doc.Partitions = append(doc.Partitions, classes)
	}
	for _, t := range g.Transitions() {
		from, err := e.number(t.Source)
		if err != nil {
			return err
		}
		to, err := e.number(t.Target)
		if err != nil {
			return err
		}
		doc.Transitions = append(doc.Transitions, transitionRecord{
			From:   from,
			Action: append([]string(nil), t.Action...),
			To:     to,
		})
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(doc)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(g *mkbsc.Game) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// enumerator hands out ids bottom-up: belief members are numbered before
// the state that refers to them.
type enumerator struct {
	ids     map[string]int
	records []stateRecord
}

func (e *enumerator) number(s *mkbsc.State) (int, error) {
	if id, ok := e.ids[s.Key()]; ok {
		return id, nil
	}

	record := stateRecord{}
	if s.Arity() == 1 && !s.KnowledgeOf(0).IsComposite() {
		record.Label = s.KnowledgeOf(0).Atom()
	} else {
		for _, k := range s.Knowledges() {
			if !k.IsComposite() {
				return 0, fmt.Errorf("gamefile: state %s mixes atomic and belief knowledge", s)
			}
			var belief []int
			for _, member := range k.Members() {
				id, err := e.number(member)
				if err != nil {
					return 0, err
				}
				belief = append(belief, id)
			}
			record.Beliefs = append(record.Beliefs, belief)
		}
	}

	id := len(e.records)
	record.ID = id
	e.ids[s.Key()] = id
	e.records = append(e.records, record)
	return id, nil
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	skipValidation bool
}

// WithoutValidation skips revalidation of the decoded game. Safe for
// documents produced by Encode from an already validated game.
func WithoutValidation() DecodeOption {
	return func(o *decodeOptions) { o.skipValidation = true }
}

// Decode rebuilds a game from a TOML document written by Encode.
func Decode(r io.Reader, opts ...DecodeOption) (*mkbsc.Game, error) {
	var options decodeOptions
	for _, opt := range opts {
		opt(&options)
	}

	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}

	states, err := buildStates(doc.States)
	if err != nil {
		return nil, err
	}
	lookup := func(id int) (*mkbsc.State, error) {
		if id < 0 || id >= len(states) {
			return nil, fmt.Errorf("gamefile: state id %d out of range", id)
		}
		return states[id], nil
	}

	gameStates := make([]*mkbsc.State, 0, len(doc.GameStates))
	for _, id := range doc.GameStates {
		s, err := lookup(id)
		if err != nil {
			return nil, err
		}
		gameStates = append(gameStates, s)
	}

	initial, err := lookup(doc.Initial)
	if err != nil {
		return nil, err
	}

	alphabet, err := mkbsc.NewAlphabet(doc.Actions...)
	if err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}

	var partitionings []*mkbsc.Partitioning
	for player, classes := range doc.Partitions {
		var observations []*mkbsc.Observation
		for _, ids := range classes {
			members := make([]*mkbsc.State, 0, len(ids))
			for _, id := range ids {
				s, err := lookup(id)
				if err != nil {
					return nil, err
				}
				members = append(members, s)
			}
			observations = append(observations, mkbsc.NewObservation(members...))
		}
		p, err := mkbsc.NewPartitioning(observations...)
		if err != nil {
			return nil, fmt.Errorf("gamefile: player %d: %w", player, err)
		}
		partitionings = append(partitionings, p)
	}

	transitions := make([]mkbsc.Transition, 0, len(doc.Transitions))
	for _, t := range doc.Transitions {
		source, err := lookup(t.From)
		if err != nil {
			return nil, err
		}
		target, err := lookup(t.To)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, mkbsc.Transition{
			Source: source,
			Action: mkbsc.JointAction(t.Action),
			Target: target,
		})
	}

	g, err := mkbsc.New(gameStates, initial, alphabet, transitions, partitionings, !options.skipValidation)
	if err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}
	return g, nil
}

// buildStates resolves the numbered records into states. Records reference
// only smaller ids, so one pass in id order suffices.
func buildStates(records []stateRecord) ([]*mkbsc.State, error) {
	sorted := append([]stateRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	states := make([]*mkbsc.State, len(sorted))
	for i, record := range sorted {
		if record.ID != i {
			return nil, fmt.Errorf("gamefile: state ids are not contiguous at %d", record.ID)
		}
		if len(record.Beliefs) == 0 {
			states[i] = mkbsc.AtomicState(record.Label)
			continue
		}
		beliefs := make([]*mkbsc.StateSet, len(record.Beliefs))
		for player, ids := range record.Beliefs {
			members := mkbsc.NewStateSet()
			for _, id := range ids {
				if id < 0 || id >= i {
					return nil, fmt.Errorf("gamefile: state %d references id %d before it is defined", record.ID, id)
				}
				members.Add(states[id])
			}
			beliefs[player] = members
		}
		states[i] = mkbsc.CompositeState(beliefs...)
	}
	return states, nil
}
