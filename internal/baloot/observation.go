package baloot

import "math/rand"

// Phase discriminates the two entry points into the core.
type Phase int

const (
	PhaseBidding Phase = iota
	PhasePlaying
)

// SeatInTrick mirrors spec.md §3: 1 = leader, 2-4 = followers.
type SeatInTrick int

// Personality tunes the post-processing filters (spec.md §4.8).
type Personality int

const (
	Balanced Personality = iota
	Aggressive
	Conservative
	Tricky
)

func (p Personality) String() string {
	switch p {
	case Aggressive:
		return "AGGRESSIVE"
	case Conservative:
		return "CONSERVATIVE"
	case Tricky:
		return "TRICKY"
	default:
		return "BALANCED"
	}
}

// Difficulty gates tracker fidelity, play noise and kaboot pursuit
// aggressiveness (spec.md §4.8).
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Expert:
		return "EXPERT"
	default:
		return "HARD"
	}
}

// TableCard is one card currently on the table within the trick in
// progress, in play order.
type TableCard struct {
	Seat Position
	Card Card
}

// CompletedTrick is one entry of trick_history.
type CompletedTrick struct {
	Leader Position
	Cards  []TableCard // in play order
	Winner Position
}

// PointsWon returns the total point value captured by the winning
// team's side in this trick under the given mode/trump. The host
// supplies mode/trump since the core treats scoring as largely opaque;
// this helper only sums raw card points, never doubling multipliers.
func (t CompletedTrick) PointsWon(mode Mode, trump Suit) int {
	total := 0
	for _, tc := range t.Cards {
		total += tc.Card.Points(mode, trump)
	}
	return total
}

// Declaration is a pre-play bonus held by a position (runs,
// four-of-a-kind, K+Q of trump, Baloot). The core only consumes these
// as already-resolved facts; it never computes declaration scoring.
type Declaration struct {
	Holder Position
	Kind   string
	Value  int
}

// TeamScores carries within-round and match point totals. The exact
// conversion from card points to game points (doubling multipliers,
// kaboot, qahwa) is the host's opaque scoring engine per spec.md §9 —
// the core only ever reads these two numbers.
type TeamScores struct {
	RoundPointsUs, RoundPointsThem int
	MatchPointsUs, MatchPointsThem int
}

// Observation is the immutable input to every decision (spec.md §3).
type Observation struct {
	Phase Phase

	MyPosition Position
	MyHand     []Card
	FaceUpCard Card // bidding only

	BidHistory []BidEntry

	Mode      Mode
	Trump     Suit
	Buyer     Position
	WeAreBuyers bool

	TricksPlayed  int
	TableCards    []TableCard // current trick, 0-3 cards so far
	SeatInTrick   SeatInTrick

	TrickHistory []CompletedTrick

	Scores TeamScores

	DoublingLevel int
	Declarations  []Declaration

	Personality Personality
	Difficulty  Difficulty

	// LegalActions enumerates the indices into MyHand the core may
	// play (PlayingLegalIndices) during PhasePlaying, or the bid
	// actions it may choose (BidLegalActions) during PhaseBidding.
	// The core trusts these as ground truth (spec.md §6).
	PlayingLegalIndices []int
	BidLegalActions     []BidAction

	// Seed drives every stochastic behaviour in the pipeline
	// (personality's false-signal roll, difficulty's noise). Same
	// Observation + Seed must produce a byte-identical Decision
	// (spec.md §5).
	Seed int64
}

// RNG returns a PRNG deterministically derived from the observation's
// seed. Each call returns an independent generator seeded from the
// same value, so callers that need the "same roll" twice within one
// decision (e.g. a module probing its own confidence before committing)
// get reproducible results without having to thread a single *rand.Rand
// through every function signature.
func (o Observation) RNG() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// TricksWonByUs counts completed tricks in TrickHistory won by my
// team.
func (o Observation) TricksWonByUs() int {
	n := 0
	for _, t := range o.TrickHistory {
		if IsPartner(t.Winner, o.MyPosition) {
			n++
		}
	}
	return n
}

// TricksWonByThem is the complement of TricksWonByUs.
func (o Observation) TricksWonByThem() int {
	return len(o.TrickHistory) - o.TricksWonByUs()
}

// CardsRemaining returns how many cards each player still holds,
// assuming a standard 8-card deal and TricksPlayed completed tricks.
func (o Observation) CardsRemaining() int {
	return 8 - o.TricksPlayed
}

// IsLeading reports whether I am about to lead the current trick (no
// cards on the table yet).
func (o Observation) IsLeading() bool {
	return len(o.TableCards) == 0
}
