package mkbsc

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Classification describes the outcome of the fixed-point iteration.
type Classification int

const (
	// NoIsomorphism means the iteration limit was exhausted without either
	// form of isomorphism: no conclusion, not an error.
	NoIsomorphism Classification = iota
	// IsomorphicIgnoringObservations means consecutive games were
	// isomorphic as labeled graphs but with different observation
	// structure.
	IsomorphicIgnoringObservations
	// IsomorphicWithObservations means consecutive games were isomorphic
	// including every player's partition structure: a true fixed point.
	IsomorphicWithObservations
)

func (c Classification) String() string {
	switch c {
	case IsomorphicIgnoringObservations:
		return "isomorphic"
	case IsomorphicWithObservations:
		return "isomorphic with equivalent observations"
	default:
		return "no fixed point"
	}
}

// IterationRecord captures the size of one game in the iteration sequence.
type IterationRecord struct {
	Index       int
	States      int
	Transitions int
	Elapsed     time.Duration
	Result      Classification
}

// IterationResult is the outcome of IterateUntilIsomorphic: the stable game
// (or the last one computed when no fixed point was found), its
// classification, and the per-iteration size log, starting with the input
// game at index 0.
type IterationResult struct {
	Game           *Game
	Classification Classification
	Log            []IterationRecord
}

type iterator struct {
	clock  quartz.Clock
	logger *log.Logger
}

// IterateOption configures the fixed-point driver.
type IterateOption func(*iterator)

// WithClock injects the clock used to time each KBSC application.
func WithClock(clock quartz.Clock) IterateOption {
	return func(it *iterator) {
		if clock != nil {
			it.clock = clock
		}
	}
}

// WithLogger makes the driver report per-iteration progress.
func WithLogger(logger *log.Logger) IterateOption {
	return func(it *iterator) {
		if logger != nil {
			it.logger = logger
		}
	}
}

// IterateUntilIsomorphic repeatedly applies KBSC starting from g, checking
// after each step whether the new game is isomorphic to the previous one.
// Isomorphism including observations stops with the earlier game and
// classification IsomorphicWithObservations; isomorphism of the graphs
// alone stops with the earlier game and IsomorphicIgnoringObservations.
// When limit iterations pass without either (a negative limit disables the
// cap), the result holds the last computed game and NoIsomorphism.
//
// Each KBSC application can grow the state count combinatorially and the
// iteration is not guaranteed to converge, so the limit is the only
// safeguard against unbounded growth.
func IterateUntilIsomorphic(g *Game, limit int, opts ...IterateOption) (*IterationResult, error) {
	it := &iterator{
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(it)
	}

	result := &IterationResult{
		Game: g,
		Log: []IterationRecord{{
			Index:       0,
			States:      len(g.states),
			Transitions: len(g.transitions),
		}},
	}

	current := g
	for i := 1; limit < 0 || i <= limit; i++ {
		started := it.clock.Now()
		next, err := current.KBSC()
		if err != nil {
			return nil, err
		}

		record := IterationRecord{
			Index:       i,
			States:      len(next.states),
			Transitions: len(next.transitions),
			Elapsed:     it.clock.Since(started),
		}

		if len(current.states) == len(next.states) && current.Isomorphic(next, false) {
			if current.Isomorphic(next, true) {
				record.Result = IsomorphicWithObservations
			} else {
				record.Result = IsomorphicIgnoringObservations
			}
			result.Log = append(result.Log, record)
			result.Game = current
			result.Classification = record.Result
			it.logger.Info("fixed point found", "iteration", i, "states", record.States, "result", record.Result)
			return result, nil
		}

		result.Log = append(result.Log, record)
		result.Game = next
		it.logger.Debug("kbsc applied", "iteration", i, "states", record.States, "transitions", record.Transitions, "elapsed", record.Elapsed)
		current = next
	}

	result.Classification = NoIsomorphism
	return result, nil
}
