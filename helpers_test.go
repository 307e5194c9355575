package mkbsc

import "testing"

// wagonGame builds the two-player wagon pushing game: three positions on a
// ring, both players either wait or push, and each player only partially
// observes the position.
func wagonGame(t *testing.T) *Game {
	t.Helper()
	g, err := Create(
		[]string{"0", "1", "2"}, "0",
		[][]string{{"w", "p"}, {"w", "p"}},
		wagonEdges(),
		[]Grouping{
			{Classes: [][]string{{"0", "1"}, {"2"}}},
			{Classes: [][]string{{"0", "2"}, {"1"}}},
		},
	)
	if err != nil {
		t.Fatalf("Create(wagon) failed: %v", err)
	}
	return g
}

func wagonEdges() []Edge {
	return []Edge{
		To1("0", JointAction{"p", "p"}, "0"), To1("0", JointAction{"w", "w"}, "0"),
		To1("0", JointAction{"w", "p"}, "1"), To1("0", JointAction{"p", "w"}, "2"),
		To1("1", JointAction{"p", "p"}, "1"), To1("1", JointAction{"w", "w"}, "1"),
		To1("1", JointAction{"w", "p"}, "2"), To1("1", JointAction{"p", "w"}, "0"),
		To1("2", JointAction{"p", "p"}, "2"), To1("2", JointAction{"w", "w"}, "2"),
		To1("2", JointAction{"w", "p"}, "0"), To1("2", JointAction{"p", "w"}, "1"),
	}
}

// singleLoopGame builds the smallest possible game: one state, one joint
// action, one self-loop.
func singleLoopGame(t *testing.T) *Game {
	t.Helper()
	g, err := Create(
		[]string{"q"}, "q",
		[][]string{{"a"}, {"b"}},
		[]Edge{To1("q", JointAction{"a", "b"}, "q")},
		[]Grouping{{Others: true}, {Others: true}},
	)
	if err != nil {
		t.Fatalf("Create(single loop) failed: %v", err)
	}
	return g
}

func mustState(t *testing.T, g *Game, label string) *State {
	t.Helper()
	s, ok := g.StateByLabel(label)
	if !ok {
		t.Fatalf("state %q not found", label)
	}
	return s
}

func baseLabels(knowledge []*Knowledge) []string {
	labels := make([]string, len(knowledge))
	for i, k := range knowledge {
		labels[i] = k.Atom()
	}
	return labels
}

func sameLabels(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]int)
	for _, label := range got {
		seen[label]++
	}
	for _, label := range want {
		seen[label]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
