package mkbsc

import "fmt"

// KBSC applies the knowledge-based subset construction. The result is a new
// game whose states are knowledge states: one belief set per player, each a
// set of states of the receiver. The initial knowledge state is the tuple
// of observation classes around the receiver's initial state. Successors
// are closed under a worklist: for a knowledge state K and joint action a,
// the Post-image of K's consistent base under a is observed by each player
// through their own partitioning, and the player's new belief is the union
// of every observation class meeting that image. An action whose Post-image
// is empty is a dead end and contributes no transition.
//
// In the output, two knowledge states are observationally equivalent to a
// player exactly when their belief components for that player are equal, so
// the output partitionings group states by belief.
//
// Construction always terminates; the reachable knowledge states are
// bounded by the powerset of the receiver's state set per player. A
// discovered knowledge state whose per-player beliefs share no receiver
// state fails with ErrEmptyConsistentBase, which signals a non-total input
// relation or a defect, never a valid game.
func (g *Game) KBSC() (*Game, error) {
	players := g.Players()

	beliefs := make([]*StateSet, players)
	for player := 0; player < players; player++ {
		class, ok := g.partitionings[player].ObservationContaining(g.initial)
		if !ok {
			return nil, fmt.Errorf("%w: initial state %s has no observation class for player %d",
				ErrInvalidPartition, g.initial, player)
		}
		beliefs[player] = class.StateSet()
	}
	initial := CompositeState(beliefs...)
	support := intersectAll(beliefs)
	if support.Len() == 0 {
		return nil, fmt.Errorf("%w: initial knowledge state %s", ErrEmptyConsistentBase, initial)
	}

	type worklistEntry struct {
		state   *State
		support *StateSet
	}

	discovered := map[string]*State{initial.key: initial}
	order := []*State{initial}
	var transitions []Transition
	queue := []worklistEntry{{initial, support}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, action := range g.alphabet.JointActions() {
			image, err := g.PostSet(action, current.support)
			if err != nil {
				return nil, err
			}
			if image.Len() == 0 {
				continue
			}

			next := make([]*StateSet, players)
			for player := 0; player < players; player++ {
				belief := NewStateSet()
				for _, class := range g.partitionings[player].classes {
					if class.states.Intersect(image).Len() > 0 {
						belief = belief.Union(class.states)
					}
				}
				next[player] = belief
			}

			successor := CompositeState(next...)
			if existing, ok := discovered[successor.key]; ok {
				successor = existing
			} else {
				succSupport := intersectAll(next)
				if succSupport.Len() == 0 {
					return nil, fmt.Errorf("%w: %s reached via %s", ErrEmptyConsistentBase, successor, action)
				}
				discovered[successor.key] = successor
				order = append(order, successor)
				queue = append(queue, worklistEntry{successor, succSupport})
			}

			transitions = append(transitions, Transition{Source: current.state, Action: action, Target: successor})
		}
	}

	partitionings := make([]*Partitioning, players)
	for player := 0; player < players; player++ {
		groups := make(map[string][]*State)
		var groupOrder []string
		for _, s := range order {
			beliefKey := s.KnowledgeOf(player).key
			if _, ok := groups[beliefKey]; !ok {
				groupOrder = append(groupOrder, beliefKey)
			}
			groups[beliefKey] = append(groups[beliefKey], s)
		}
		classes := make([]*Observation, 0, len(groupOrder))
		for _, beliefKey := range groupOrder {
			classes = append(classes, NewObservation(groups[beliefKey]...))
		}
		p, err := NewPartitioning(classes...)
		if err != nil {
			return nil, err
		}
		partitionings[player] = p
	}

	return New(order, initial, g.alphabet, transitions, partitionings, false)
}

func intersectAll(sets []*StateSet) *StateSet {
	res := sets[0]
	for _, set := range sets[1:] {
		res = res.Intersect(set)
	}
	return res
}
