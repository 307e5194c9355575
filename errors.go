package mkbsc

import "errors"

var (
	// ErrMalformedTransition rejects construction input whose transitions
	// reference an undefined state or an action not expressible in the
	// alphabet.
	ErrMalformedTransition = errors.New("mkbsc: malformed transition")

	// ErrInvalidPartition rejects a partitioning that does not cover every
	// state exactly once for some player.
	ErrInvalidPartition = errors.New("mkbsc: invalid partitioning")

	// ErrEmptyAlphabet rejects an alphabet with an empty or duplicated
	// per-player action set.
	ErrEmptyAlphabet = errors.New("mkbsc: empty alphabet")

	// ErrUnknownInitialState rejects an initial state outside the state set.
	ErrUnknownInitialState = errors.New("mkbsc: unknown initial state")

	// ErrStateNotInGame signals that a query was passed a state belonging
	// to a different game. This is a programming-contract violation, not a
	// recoverable runtime condition.
	ErrStateNotInGame = errors.New("mkbsc: state does not belong to this game")

	// ErrEmptyConsistentBase signals an internal invariant violation during
	// KBSC construction: a discovered knowledge state has no base-game
	// state compatible with every player's belief. It indicates a non-total
	// input transition relation or an implementation defect.
	ErrEmptyConsistentBase = errors.New("mkbsc: knowledge state has empty consistent base")
)
