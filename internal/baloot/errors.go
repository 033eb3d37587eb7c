package baloot

// CoreError is a sentinel error type, in the same style as the
// teacher's engine.PlayError: a named string constant satisfying the
// error interface.
type CoreError string

func (e CoreError) Error() string { return string(e) }

const (
	// ErrInternalLogic signals an invariant violation (spec.md §7): a
	// candidate card or bid fell outside legal_actions. This must
	// never happen; the host aborts the turn and falls back to a
	// trivial rule-based play (lowest legal card) on seeing it.
	ErrInternalLogic CoreError = "internal logic error: candidate outside legal_actions"

	// ErrEmptyHand is returned by helpers asked to pick from a hand
	// with no legal candidates, which should also never happen given
	// a well-formed Observation.
	ErrEmptyHand CoreError = "no legal candidates available"
)
