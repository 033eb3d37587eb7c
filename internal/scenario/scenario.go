// Package scenario provides the six named, fully literal fixtures of
// spec.md §8's "Concrete scenarios" section: exact Observation inputs
// paired with the strategy label a conforming decision core must
// return. Grounded on the teacher's hand-constructed *_test.go fixture
// style (internal/ai/rule_based tests build Hand/Deck literals by
// hand rather than through a generator), promoted here to a shared
// package so both tests and cmd/balootctl's "simulate" subcommand can
// run the same fixtures.
package scenario

import (
	"fmt"
	"strings"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// Case bundles one scenario's input and its contractually-required
// label set. The card_index itself is implementation-bound per
// spec.md §8, so Case only names the labels an implementation may
// legitimately return, plus (where the scenario also names a specific
// card) the expected card for documentation/assertion purposes.
type Case struct {
	Name           string
	Description    string
	Obs            baloot.Observation
	Tracker        *tracker.Tracker
	KnownHands     map[baloot.Position][]baloot.Card
	ExpectedLabels []string
	ExpectedCard   baloot.Card
}

// Matches reports whether a returned label satisfies this case's
// contractually-required label set. A returned label only needs to
// *name* one of the expected tactics, not equal it exactly — some
// cascade steps compose their module name onto the underlying tactic
// label (e.g. point_density's "POINT_DENSITY_FINESSE_4TH" still names
// the FINESSE_4TH tactic that actually picked the card).
func (c Case) Matches(label string) bool {
	for _, l := range c.ExpectedLabels {
		if strings.Contains(label, l) {
			return true
		}
	}
	return false
}

func (c Case) String() string {
	return fmt.Sprintf("%s: expect one of %v", c.Name, c.ExpectedLabels)
}

// All returns the six scenarios of spec.md §8 in order.
func All() []Case {
	return []Case{
		TrumpDominance(),
		LongRunLead(),
		FeedPartnerNoOvertake(),
		Finesse4th(),
		KabootMasterFirst(),
		EndgameSolverWins(),
	}
}

// TrumpDominance is spec.md §8 scenario 1: HOKUM trump=S1, holding
// J-S1/9-S1/A-S1 (top three trump masters under the HOKUM trump
// order), leading an empty table as the buyers on the opening trick.
func TrumpDominance() Case {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1),
		baloot.NewCard(baloot.Nine, baloot.S1),
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2),
		baloot.NewCard(baloot.Queen, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3),
		baloot.NewCard(baloot.Eight, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4),
	}
	obs := baloot.Observation{
		Phase:        baloot.PhasePlaying,
		MyPosition:   baloot.P0,
		MyHand:       hand,
		Mode:         baloot.HOKUM,
		Trump:        baloot.S1,
		WeAreBuyers:  true,
		TricksPlayed: 0,
		Difficulty:   baloot.Hard,
		Seed:         1,
	}
	trk := tracker.Begin(hand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "trump_dominance",
		Description: "J+9+A of trump in a HOKUM hand we bought; the trump " +
			"manager's draw directive and the lead selector's master-cash " +
			"rule both independently justify leading the top trump.",
		Obs:            obs,
		Tracker:        trk,
		ExpectedLabels: []string{"MASTER_CASH", "TRUMP_DRAW"},
		ExpectedCard:   baloot.NewCard(baloot.Jack, baloot.S1),
	}
}

// LongRunLead is spec.md §8 scenario 2: SUN, holding a 4-card run
// A-10-K-Q of S1, leading the opening trick.
func LongRunLead() Case {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S1),
		baloot.NewCard(baloot.Queen, baloot.S1),
		baloot.NewCard(baloot.Jack, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3),
		baloot.NewCard(baloot.Eight, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4),
	}
	obs := baloot.Observation{
		Phase:        baloot.PhasePlaying,
		MyPosition:   baloot.P0,
		MyHand:       hand,
		Mode:         baloot.SUN,
		Trump:        baloot.NoSuit,
		WeAreBuyers:  false,
		TricksPlayed: 0,
		Difficulty:   baloot.Hard,
		Seed:         2,
	}
	trk := tracker.Begin(hand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "long_run_lead",
		Description: "A 4-card major suit run topped by the ace in SUN. " +
			"Because we hold all four top ranks of S1, every card in the run " +
			"is simultaneously a master, so the lead selector's earlier " +
			"master-cash rule and its long-run rule agree on leading the ace.",
		Obs:            obs,
		Tracker:        trk,
		ExpectedLabels: []string{"LONG_RUN", "MASTER_CASH"},
		ExpectedCard:   baloot.NewCard(baloot.Ace, baloot.S1),
	}
}

// FeedPartnerNoOvertake is spec.md §8 scenario 3: HOKUM trump=S2, I am
// seat 4, partner is already winning the trick with A-S1 worth 15+
// points, and my only S1 card (Q-S1) cannot beat it anyway — feed the
// points rather than contest.
func FeedPartnerNoOvertake() Case {
	myPos := baloot.P3
	hand := []baloot.Card{
		baloot.NewCard(baloot.Queen, baloot.S1),
		baloot.NewCard(baloot.Eight, baloot.S3),
	}
	obs := baloot.Observation{
		Phase:      baloot.PhasePlaying,
		MyPosition: myPos,
		MyHand:     hand,
		Mode:       baloot.HOKUM,
		Trump:      baloot.S2,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P0, Card: baloot.NewCard(baloot.King, baloot.S1)},
			{Seat: baloot.P1, Card: baloot.NewCard(baloot.Ace, baloot.S1)},
			{Seat: baloot.P2, Card: baloot.NewCard(baloot.Seven, baloot.S1)},
		},
		SeatInTrick:  4,
		TricksPlayed: 3,
		Difficulty:   baloot.Hard,
		Seed:         3,
	}
	trk := tracker.Begin(hand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "feed_partner_no_overtake",
		Description: "Partner's ace already holds a 15-point trick and our " +
			"only card of the led suit can't beat it, so the follow " +
			"optimizer feeds the points instead of wasting a cheap winner.",
		Obs:            obs,
		Tracker:        trk,
		ExpectedLabels: []string{"FEED_PARTNER"},
		ExpectedCard:   baloot.NewCard(baloot.Queen, baloot.S1),
	}
}

// Finesse4th is spec.md §8 scenario 4: HOKUM trump=S2, I am seat 4
// with full information; the trick is already worth 17 points and my
// hand holds both a suit-beater (A-S1) and a cheaper trump-in (7-S2).
// Seat 4's full-information finesse always takes the cheapest card
// that still wins, so it prefers the trump over the ace.
func Finesse4th() Case {
	myPos := baloot.P3
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S2),
	}
	obs := baloot.Observation{
		Phase:      baloot.PhasePlaying,
		MyPosition: myPos,
		MyHand:     hand,
		Mode:       baloot.HOKUM,
		Trump:      baloot.S2,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P0, Card: baloot.NewCard(baloot.King, baloot.S1)},
			{Seat: baloot.P1, Card: baloot.NewCard(baloot.Queen, baloot.S1)},
			{Seat: baloot.P2, Card: baloot.NewCard(baloot.Ten, baloot.S1)},
		},
		SeatInTrick:  4,
		TricksPlayed: 4,
		Difficulty:   baloot.Hard,
		Seed:         4,
	}
	trk := tracker.Begin(hand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "finesse_4th_cheapest_winner",
		Description: "Seat 4 with full information on a 17-point trick: both " +
			"the ace and the trump seven would win it, so the seat-4 " +
			"refinement takes the cheaper trump rather than burning the ace.",
		Obs:            obs,
		Tracker:        trk,
		ExpectedLabels: []string{"FINESSE_4TH", "TRUMP_IN"},
		ExpectedCard:   baloot.NewCard(baloot.Seven, baloot.S2),
	}
}

// KabootMasterFirst is spec.md §8 scenario 5: we bought the contract
// and have won every trick so far (5 of 5); holding two unbeatable
// aces and a low side card, the kaboot pursuit module takes over and
// leads a master ace (A-S1, the first master in hand order; both
// master suits are one card long).
func KabootMasterFirst() Case {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Ace, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3),
	}
	history := make([]baloot.CompletedTrick, 5)
	for i := range history {
		history[i] = baloot.CompletedTrick{Leader: baloot.P0, Winner: baloot.P0}
	}
	obs := baloot.Observation{
		Phase:        baloot.PhasePlaying,
		MyPosition:   baloot.P0,
		MyHand:       hand,
		Mode:         baloot.SUN,
		Trump:        baloot.NoSuit,
		WeAreBuyers:  true,
		TricksPlayed: 5,
		TrickHistory: history,
		Difficulty:   baloot.Hard,
		Seed:         5,
	}
	trk := tracker.Begin(hand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "kaboot_master_first",
		Description: "A clean sweep is still alive after 5 tricks; two aces " +
			"(unbeatable regardless of what's still unseen) and a low side " +
			"card make MASTER_FIRST the only sound lead while pursuing.",
		Obs:            obs,
		Tracker:        trk,
		ExpectedLabels: []string{"KABOOT_MASTER_FIRST"},
		ExpectedCard:   baloot.NewCard(baloot.Ace, baloot.S1),
	}
}

// EndgameSolverWins is spec.md §8 scenario 6: 3 cards per seat, every
// hand fully determinized, SUN, our side holds the ace and king of
// the led suit split between the two of us — the solver should lead
// the ace and sweep the trick's full point value.
func EndgameSolverWins() Case {
	myHand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3),
	}
	known := map[baloot.Position][]baloot.Card{
		baloot.P1: {
			baloot.NewCard(baloot.Queen, baloot.S1),
			baloot.NewCard(baloot.Eight, baloot.S2),
			baloot.NewCard(baloot.Eight, baloot.S3),
		},
		baloot.P2: {
			baloot.NewCard(baloot.King, baloot.S1),
			baloot.NewCard(baloot.Nine, baloot.S2),
			baloot.NewCard(baloot.Nine, baloot.S3),
		},
		baloot.P3: {
			baloot.NewCard(baloot.Jack, baloot.S1),
			baloot.NewCard(baloot.Ten, baloot.S2),
			baloot.NewCard(baloot.Ten, baloot.S3),
		},
	}
	obs := baloot.Observation{
		Phase:        baloot.PhasePlaying,
		MyPosition:   baloot.P0,
		MyHand:       myHand,
		Mode:         baloot.SUN,
		Trump:        baloot.NoSuit,
		WeAreBuyers:  true,
		TricksPlayed: 5,
		Difficulty:   baloot.Expert,
		Seed:         6,
	}
	trk := tracker.Begin(myHand, obs.MyPosition, nil, obs.Mode, obs.Trump, baloot.Card{}, obs.Difficulty, obs.Seed)
	return Case{
		Name: "endgame_solver_wins",
		Description: "Three cards per seat, fully determinized, SUN: our " +
			"side holds the ace (me) and king (partner) of the led suit, so " +
			"leading the ace sweeps that trick's point value; every opening " +
			"nets -10 under perfect play, and the solver keeps the first " +
			"equally valued card, the ace.",
		Obs:            obs,
		Tracker:        trk,
		KnownHands:     known,
		ExpectedLabels: []string{"ENDGAME_SOLVER"},
		ExpectedCard:   baloot.NewCard(baloot.Ace, baloot.S1),
	}
}
