package mkbsc

import "testing"

func TestProjectWagon(t *testing.T) {
	g := wagonGame(t)

	proj, err := g.Project(0)
	if err != nil {
		t.Fatal(err)
	}

	if proj.Players() != 1 {
		t.Fatalf("projected players = %d, want 1", proj.Players())
	}
	if got := proj.Alphabet().Actions(0); len(got) != 2 {
		t.Fatalf("projected actions = %v, want [w p]", got)
	}

	// States survive untouched, full knowledge tuples included.
	if len(proj.States()) != 3 {
		t.Fatalf("projected states = %d, want 3", len(proj.States()))
	}
	for _, s := range g.States() {
		if !proj.Contains(s) {
			t.Errorf("state %s lost by projection", s)
		}
	}
	if proj.Initial() != g.Initial() {
		t.Errorf("projected initial = %s, want %s", proj.Initial(), g.Initial())
	}

	// The environment's component is existentially quantified away:
	// from 0, action w can reach 0 (via w,w) and 1 (via w,p).
	tests := []struct {
		from, action string
		want         []string
	}{
		{"0", "w", []string{"0", "1"}},
		{"0", "p", []string{"0", "2"}},
		{"1", "w", []string{"1", "2"}},
		{"1", "p", []string{"0", "1"}},
		{"2", "w", []string{"0", "2"}},
		{"2", "p", []string{"1", "2"}},
	}
	for _, tt := range tests {
		post, err := proj.Post(JointAction{tt.action}, mustState(t, proj, tt.from))
		if err != nil {
			t.Fatal(err)
		}
		want := NewStateSet()
		for _, label := range tt.want {
			want.Add(mustState(t, proj, label))
		}
		if !post.Equal(want) {
			t.Errorf("Post(%s, %s) = %s, want %s", tt.action, tt.from, post, want)
		}
	}

	// The single player's partitioning is inherited unchanged.
	classes := proj.Partitioning(0).Classes()
	if len(classes) != 2 {
		t.Fatalf("projected classes = %d, want 2", len(classes))
	}
	class, err := proj.ObservationContaining(0, mustState(t, proj, "0"))
	if err != nil {
		t.Fatal(err)
	}
	if class.Len() != 2 || !class.Contains(mustState(t, proj, "1")) {
		t.Errorf("projected class of 0 = %s, want {0, 1}", class)
	}
}

func TestProjectBadPlayer(t *testing.T) {
	g := wagonGame(t)
	if _, err := g.Project(2); err == nil {
		t.Error("Project(2) on a two-player game succeeded")
	}
	if _, err := g.Project(-1); err == nil {
		t.Error("Project(-1) succeeded")
	}
}
