package mkbsc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

func TestIterateWagonStabilizes(t *testing.T) {
	g := wagonGame(t)

	result, err := IterateUntilIsomorphic(g, 10)
	if err != nil {
		t.Fatal(err)
	}

	if result.Classification == NoIsomorphism {
		t.Fatal("wagon game exhausted the iteration limit")
	}
	if result.Classification != IsomorphicWithObservations {
		t.Errorf("classification = %v, want IsomorphicWithObservations", result.Classification)
	}

	// The stable game is the earlier one, not the newly computed copy.
	if result.Game != g {
		t.Error("result did not return the earlier game of the stable pair")
	}

	// Golden size log: one application suffices, sizes 3 and 3.
	wantSizes := []int{3, 3}
	if len(result.Log) != len(wantSizes) {
		t.Fatalf("log length = %d, want %d", len(result.Log), len(wantSizes))
	}
	for i, record := range result.Log {
		if record.Index != i {
			t.Errorf("log[%d].Index = %d", i, record.Index)
		}
		if record.States != wantSizes[i] {
			t.Errorf("log[%d].States = %d, want %d", i, record.States, wantSizes[i])
		}
		if record.Transitions != 12 {
			t.Errorf("log[%d].Transitions = %d, want 12", i, record.Transitions)
		}
	}
	if result.Log[1].Result != IsomorphicWithObservations {
		t.Errorf("final record result = %v", result.Log[1].Result)
	}
}

func TestIterateSingleLoopImmediateFixedPoint(t *testing.T) {
	g := singleLoopGame(t)

	result, err := IterateUntilIsomorphic(g, 10)
	if err != nil {
		t.Fatal(err)
	}
	if result.Classification != IsomorphicWithObservations {
		t.Errorf("classification = %v, want IsomorphicWithObservations", result.Classification)
	}
	if len(result.Log) != 2 {
		t.Errorf("log length = %d, want 2 (input plus one application)", len(result.Log))
	}
	if result.Game != g {
		t.Error("fixed point should return the input game")
	}
}

func TestIterateZeroLimit(t *testing.T) {
	g := wagonGame(t)

	result, err := IterateUntilIsomorphic(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Classification != NoIsomorphism {
		t.Errorf("classification = %v, want NoIsomorphism", result.Classification)
	}
	if result.Game != g {
		t.Error("zero-limit iteration should return the input game")
	}
	if len(result.Log) != 1 {
		t.Errorf("log length = %d, want 1", len(result.Log))
	}
}

func TestIterateLimitExhaustedKeepsLastGame(t *testing.T) {
	// Let the wagon game iterate exactly once without checking further:
	// the limit-exhausted result must hold the newest game, not the input.
	g := wagonGame(t)

	result, err := IterateUntilIsomorphic(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	// One application already stabilizes the wagon game, so this still
	// classifies; drive an exhaustion through a game whose size changes
	// under the construction instead.
	if result.Classification != IsomorphicWithObservations {
		t.Fatalf("classification = %v", result.Classification)
	}

	grower, err := Create(
		[]string{"0", "1", "2"}, "0",
		[][]string{{"a", "b"}},
		[]Edge{
			To1("0", JointAction{"a"}, "1"),
			To1("0", JointAction{"b"}, "2"),
			To1("1", JointAction{"a"}, "0"), To1("1", JointAction{"a"}, "2"),
			To1("1", JointAction{"b"}, "1"),
			To1("2", JointAction{"a"}, "2"),
			To1("2", JointAction{"b"}, "0"), To1("2", JointAction{"b"}, "1"),
		},
		[]Grouping{{Classes: [][]string{{"0", "1", "2"}}}},
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err = IterateUntilIsomorphic(grower, 1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Classification != NoIsomorphism {
		t.Fatalf("classification = %v, want NoIsomorphism", result.Classification)
	}
	if result.Game == grower {
		t.Error("exhausted iteration should return the last computed game")
	}
	if len(result.Log) != 2 {
		t.Errorf("log length = %d, want 2", len(result.Log))
	}
}

func TestIterateInjectedClock(t *testing.T) {
	g := singleLoopGame(t)
	mock := quartz.NewMock(t)

	result, err := IterateUntilIsomorphic(g, 10, WithClock(mock))
	if err != nil {
		t.Fatal(err)
	}
	// The mock clock never advances, so measured durations are exactly zero.
	for _, record := range result.Log {
		if record.Elapsed != 0 {
			t.Errorf("log[%d].Elapsed = %v with a frozen clock", record.Index, record.Elapsed)
		}
	}
}

func TestIterateLogger(t *testing.T) {
	g := wagonGame(t)

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	if _, err := IterateUntilIsomorphic(g, 10, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "fixed point found") {
		t.Errorf("logger output missing fixed point report: %q", buf.String())
	}
}
