package mkbsc

import "fmt"

// Post returns every state reachable from the given states via a transition
// labeled exactly action. A state with no matching transition contributes
// nothing; an empty result is a dead end, not an error. Passing a state
// that does not belong to the game fails with ErrStateNotInGame.
func (g *Game) Post(action JointAction, states ...*State) (*StateSet, error) {
	res := NewStateSet()
	actionKey := action.Key()
	for _, s := range states {
		if !g.Contains(s) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotInGame, s)
		}
		if targets, ok := g.delta[s.key][actionKey]; ok {
			res = res.Union(targets)
		}
	}
	return res, nil
}

// PostSet is Post over a StateSet.
func (g *Game) PostSet(action JointAction, states *StateSet) (*StateSet, error) {
	return g.Post(action, states.Sorted()...)
}
