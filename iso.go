package mkbsc

import (
	"fmt"
	"sort"
	"strings"
)

// Isomorphic reports whether g and other admit a bijection between their
// state sets that maps initial state to initial state and preserves the
// transition relation exactly, under identical joint-action labels, in both
// directions. With considerObservations the bijection must additionally map
// each player's observation classes onto same-sized observation classes of
// other, player by player.
//
// Candidates are pruned by iterated signature refinement over action-labeled
// in/out-degree profiles (and per-player class sizes when observations
// matter); the remaining ambiguity is resolved by backtracking. Labeled
// edges keep this tractable in practice.
func (g *Game) Isomorphic(other *Game, considerObservations bool) bool {
	if len(g.states) != len(other.states) || len(g.transitions) != len(other.transitions) {
		return false
	}
	if considerObservations && g.Players() != other.Players() {
		return false
	}
	m := newMatcher(g, other, considerObservations)
	return m.match()
}

type matcher struct {
	a, b        *Game
	considerObs bool

	actionKeys []string
	inA, inB   map[string]map[string]*StateSet

	candidates map[string][]*State
	usedB      map[string]bool
	pairs      [][2]*State

	classPair []map[string]string
	classUsed []map[string]bool
}

func newMatcher(a, b *Game, considerObs bool) *matcher {
	m := &matcher{
		a:           a,
		b:           b,
		considerObs: considerObs,
		usedB:       make(map[string]bool),
	}

	keySet := make(map[string]bool)
	for _, t := range a.transitions {
		keySet[t.Action.Key()] = true
	}
	for _, t := range b.transitions {
		keySet[t.Action.Key()] = true
	}
	for key := range keySet {
		m.actionKeys = append(m.actionKeys, key)
	}
	sort.Strings(m.actionKeys)

	m.inA = reverseDelta(a)
	m.inB = reverseDelta(b)

	if considerObs {
		players := a.Players()
		m.classPair = make([]map[string]string, players)
		m.classUsed = make([]map[string]bool, players)
		for p := 0; p < players; p++ {
			m.classPair[p] = make(map[string]string)
			m.classUsed[p] = make(map[string]bool)
		}
	}
	return m
}

func reverseDelta(g *Game) map[string]map[string]*StateSet {
	in := make(map[string]map[string]*StateSet)
	for _, t := range g.transitions {
		byAction, ok := in[t.Target.key]
		if !ok {
			byAction = make(map[string]*StateSet)
			in[t.Target.key] = byAction
		}
		sources, ok := byAction[t.Action.Key()]
		if !ok {
			sources = NewStateSet()
			byAction[t.Action.Key()] = sources
		}
		sources.Add(t.Source)
	}
	return in
}

func (m *matcher) match() bool {
	colorA, colorB, ok := m.refine()
	if !ok {
		return false
	}

	byColorB := make(map[int][]*State)
	for _, s := range m.b.states {
		byColorB[colorB[s.key]] = append(byColorB[colorB[s.key]], s)
	}
	m.candidates = make(map[string][]*State, len(m.a.states))
	for _, s := range m.a.states {
		cands := byColorB[colorA[s.key]]
		if len(cands) == 0 {
			return false
		}
		m.candidates[s.key] = cands
	}

	order := m.assignmentOrder()
	return m.backtrack(order, 0)
}

// refine computes stable color classes over both games at once, so equal
// colors mean equal signatures across games. It fails fast when the color
// multisets of the two games diverge.
func (m *matcher) refine() (map[string]int, map[string]int, bool) {
	colorA := make(map[string]int, len(m.a.states))
	colorB := make(map[string]int, len(m.b.states))

	palette := make(map[string]int)
	intern := func(sig string) int {
		id, ok := palette[sig]
		if !ok {
			id = len(palette)
			palette[sig] = id
		}
		return id
	}

	for _, s := range m.a.states {
		colorA[s.key] = intern(m.seedSignature(m.a, s))
	}
	for _, s := range m.b.states {
		colorB[s.key] = intern(m.seedSignature(m.b, s))
	}

	for round := 0; round <= len(m.a.states); round++ {
		if !sameColorCounts(colorA, colorB) {
			return nil, nil, false
		}

		palette = make(map[string]int)
		nextA := make(map[string]int, len(colorA))
		nextB := make(map[string]int, len(colorB))
		for _, s := range m.a.states {
			nextA[s.key] = intern(edgeSignature(m.a, m.inA, s, colorA))
		}
		for _, s := range m.b.states {
			nextB[s.key] = intern(edgeSignature(m.b, m.inB, s, colorB))
		}

		if colorClasses(nextA) == colorClasses(colorA) && colorClasses(nextB) == colorClasses(colorB) {
			return nextA, nextB, sameColorCounts(nextA, nextB)
		}
		colorA, colorB = nextA, nextB
	}
	return colorA, colorB, sameColorCounts(colorA, colorB)
}

func (m *matcher) seedSignature(g *Game, s *State) string {
	var sb strings.Builder
	if s.key == g.initial.key {
		sb.WriteString("init;")
	}
	if m.considerObs {
		for p := 0; p < g.Players(); p++ {
			class, ok := g.partitionings[p].ObservationContaining(s)
			if ok {
				fmt.Fprintf(&sb, "p%d=%d;", p, class.Len())
			}
		}
	}
	return sb.String()
}

func edgeSignature(g *Game, in map[string]map[string]*StateSet, s *State, color map[string]int) string {
	var parts []string
	for actionKey, targets := range g.delta[s.key] {
		for _, t := range targets.Sorted() {
			parts = append(parts, fmt.Sprintf("out:%s:%d", actionKey, color[t.key]))
		}
	}
	for actionKey, sources := range in[s.key] {
		for _, t := range sources.Sorted() {
			parts = append(parts, fmt.Sprintf("in:%s:%d", actionKey, color[t.key]))
		}
	}
	sort.Strings(parts)
	return fmt.Sprintf("%d|%s", color[s.key], strings.Join(parts, ","))
}

func sameColorCounts(a, b map[string]int) bool {
	counts := make(map[int]int)
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func colorClasses(color map[string]int) int {
	seen := make(map[int]bool, len(color))
	for _, c := range color {
		seen[c] = true
	}
	return len(seen)
}

// assignmentOrder walks g's states breadth-first from the initial state
// through edges in either direction, so each assignment is constrained by
// earlier ones; disconnected leftovers follow, tightest candidate set first.
func (m *matcher) assignmentOrder() []*State {
	var order []*State
	visited := map[string]bool{m.a.initial.key: true}
	queue := []*State{m.a.initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		neighbors := NewStateSet()
		for _, targets := range m.a.delta[s.key] {
			neighbors = neighbors.Union(targets)
		}
		for _, sources := range m.inA[s.key] {
			neighbors = neighbors.Union(sources)
		}
		for _, n := range neighbors.Sorted() {
			if !visited[n.key] {
				visited[n.key] = true
				queue = append(queue, n)
			}
		}
	}

	var rest []*State
	for _, s := range m.a.states {
		if !visited[s.key] {
			rest = append(rest, s)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		ci, cj := len(m.candidates[rest[i].key]), len(m.candidates[rest[j].key])
		if ci != cj {
			return ci < cj
		}
		return rest[i].key < rest[j].key
	})
	return append(order, rest...)
}

func (m *matcher) backtrack(order []*State, idx int) bool {
	if idx == len(order) {
		return true
	}
	u := order[idx]
	for _, v := range m.candidates[u.key] {
		if m.usedB[v.key] {
			continue
		}
		undo, ok := m.tryAssign(u, v)
		if !ok {
			continue
		}
		if m.backtrack(order, idx+1) {
			return true
		}
		undo()
	}
	return false
}

func (m *matcher) tryAssign(u, v *State) (func(), bool) {
	if (u.key == m.a.initial.key) != (v.key == m.b.initial.key) {
		return nil, false
	}
	if !m.edgesConsistent(u, v) {
		return nil, false
	}

	var classUndo []func()
	if m.considerObs {
		for p := 0; p < m.a.Players(); p++ {
			classA, okA := m.a.partitionings[p].ObservationContaining(u)
			classB, okB := m.b.partitionings[p].ObservationContaining(v)
			if !okA || !okB || classA.Len() != classB.Len() {
				for _, f := range classUndo {
					f()
				}
				return nil, false
			}
			aKey, bKey := classA.key(), classB.key()
			if mapped, ok := m.classPair[p][aKey]; ok {
				if mapped != bKey {
					for _, f := range classUndo {
						f()
					}
					return nil, false
				}
				continue
			}
			if m.classUsed[p][bKey] {
				for _, f := range classUndo {
					f()
				}
				return nil, false
			}
			player := p
			m.classPair[player][aKey] = bKey
			m.classUsed[player][bKey] = true
			classUndo = append(classUndo, func() {
				delete(m.classPair[player], aKey)
				delete(m.classUsed[player], bKey)
			})
		}
	}

	m.usedB[v.key] = true
	m.pairs = append(m.pairs, [2]*State{u, v})
	return func() {
		m.pairs = m.pairs[:len(m.pairs)-1]
		delete(m.usedB, v.key)
		for _, f := range classUndo {
			f()
		}
	}, true
}

// edgesConsistent checks that assigning u to v preserves every labeled edge
// to and from all previously assigned states, including self-loops on u.
func (m *matcher) edgesConsistent(u, v *State) bool {
	check := append(m.pairs, [2]*State{u, v})
	for _, pair := range check {
		w, x := pair[0], pair[1]
		for _, actionKey := range m.actionKeys {
			if hasEdge(m.a, u.key, actionKey, w.key) != hasEdge(m.b, v.key, actionKey, x.key) {
				return false
			}
			if hasEdge(m.a, w.key, actionKey, u.key) != hasEdge(m.b, x.key, actionKey, v.key) {
				return false
			}
		}
	}
	return true
}

func hasEdge(g *Game, srcKey, actionKey, dstKey string) bool {
	targets, ok := g.delta[srcKey][actionKey]
	if !ok {
		return false
	}
	_, ok = targets.byKey[dstKey]
	return ok
}
