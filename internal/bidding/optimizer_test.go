package bidding

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/evaluation"
)

func TestOptimizeStrongHokumHand(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1), baloot.NewCard(baloot.Ace, baloot.S1), baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2), baloot.NewCard(baloot.Ace, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4), baloot.NewCard(baloot.Eight, baloot.S4),
	}
	obs := baloot.Observation{
		Phase:      baloot.PhaseBidding,
		MyPosition: baloot.P0,
		MyHand:     hand,
		Scores:     baloot.TeamScores{},
	}
	decision := Optimize(obs)
	if decision.Action.Kind != baloot.ActionHokum {
		t.Fatalf("expected HOKUM bid for a hand dominated by trump, got %v", decision.Action)
	}
	if decision.Action.Suit != baloot.S1 {
		t.Errorf("expected S1 chosen as trump, got %v", decision.Action.Suit)
	}
}

func TestOptimizePassesWeakHand(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1), baloot.NewCard(baloot.Eight, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S2), baloot.NewCard(baloot.Eight, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3), baloot.NewCard(baloot.Eight, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4), baloot.NewCard(baloot.Nine, baloot.S4),
	}
	obs := baloot.Observation{
		Phase:      baloot.PhaseBidding,
		MyPosition: baloot.P0,
		MyHand:     hand,
	}
	decision := Optimize(obs)
	if decision.Action.Kind != baloot.ActionPass {
		t.Fatalf("expected a pass on an all-low hand, got %v", decision.Action)
	}
}

func TestShouldDoubleRequiresQuickTricks(t *testing.T) {
	weak := evaluation.TrickProjection{Expected: 7.0, Quick: 1}
	pressure := evaluation.BidPressure{DoublingBias: 0}
	if ShouldDouble(weak, pressure) {
		t.Errorf("should not double with only 1 quick trick")
	}
}

func TestShouldDoubleFiresOnStrongHand(t *testing.T) {
	strong := evaluation.TrickProjection{Expected: 7.0, Quick: 3}
	pressure := evaluation.BidPressure{DoublingBias: 0}
	if !ShouldDouble(strong, pressure) {
		t.Errorf("expected double with 7 projected / 3 quick tricks and neutral pressure")
	}
}

func TestShouldDoubleSuppressedByPressure(t *testing.T) {
	strong := evaluation.TrickProjection{Expected: 7.0, Quick: 3}
	pressure := evaluation.BidPressure{DoublingBias: -0.5}
	if ShouldDouble(strong, pressure) {
		t.Errorf("expected pressure to suppress doubling when bias is strongly negative")
	}
}

func TestShouldStealRequiresOpponentCommitment(t *testing.T) {
	obs := baloot.Observation{MyPosition: baloot.P0}
	best := HokumCandidate{Suit: baloot.S1, Strength: 9.0}
	if ShouldSteal(obs, best, 9.0) {
		t.Errorf("should not steal when no opponent has bid yet")
	}
}

func TestShouldStealOnStrongOpposingHokum(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		BidHistory: []baloot.BidEntry{
			{Seat: baloot.P1, Action: baloot.Hokum(baloot.S2)},
		},
	}
	best := HokumCandidate{Suit: baloot.S2, Strength: 6.5}
	if !ShouldSteal(obs, best, 0) {
		t.Errorf("expected steal: matching opponent's suit with strength above 6.0")
	}
}

// strongHokumHand is the same dominant-trump hand TestOptimizeStrongHokumHand
// uses, pulled out so the legal-actions tests below can reuse it.
func strongHokumHand() []baloot.Card {
	return []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1), baloot.NewCard(baloot.Ace, baloot.S1), baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2), baloot.NewCard(baloot.Ace, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4), baloot.NewCard(baloot.Eight, baloot.S4),
	}
}

func TestOptimizeNeverReturnsAnActionOutsideBidLegalActions(t *testing.T) {
	obs := baloot.Observation{
		Phase:           baloot.PhaseBidding,
		MyPosition:      baloot.P0,
		MyHand:          strongHokumHand(),
		BidLegalActions: []baloot.BidAction{baloot.Pass(), baloot.Sun()},
	}
	decision := Optimize(obs)
	if !baloot.ContainsBidAction(obs.BidLegalActions, decision.Action) {
		t.Fatalf("Optimize returned %v, outside BidLegalActions %v", decision.Action, obs.BidLegalActions)
	}
}

func TestOptimizeFallsBackToAshkalWhenPreferredModeNotOffered(t *testing.T) {
	obs := baloot.Observation{
		Phase:           baloot.PhaseBidding,
		MyPosition:      baloot.P0,
		MyHand:          strongHokumHand(),
		BidLegalActions: []baloot.BidAction{baloot.Pass(), baloot.Ashkal()},
	}
	decision := Optimize(obs)
	if decision.Action.Kind != baloot.ActionAshkal {
		t.Fatalf("expected ASHKAL when HOKUM/SUN aren't offered but the hand still merits staying in, got %v", decision.Action)
	}
}

func TestOptimizeSelectsDoubleOnlyWhenOfferedAndBarCleared(t *testing.T) {
	obs := baloot.Observation{
		Phase:           baloot.PhaseBidding,
		MyPosition:      baloot.P0,
		MyHand:          strongHokumHand(),
		BidLegalActions: []baloot.BidAction{baloot.Pass(), baloot.Hokum(baloot.S1), baloot.Double()},
	}
	decision := Optimize(obs)
	if decision.Components.ShouldDouble {
		if decision.Action.Kind != baloot.ActionDouble {
			t.Fatalf("expected DOUBLE once offered and the bar is cleared, got %v", decision.Action)
		}
	} else if decision.Action.Kind != baloot.ActionHokum {
		t.Fatalf("expected the HOKUM fallback when the doubling bar isn't cleared, got %v", decision.Action)
	}
}

func TestOptimizeWithoutLegalActionsNeverSelectsDoubleOrRedouble(t *testing.T) {
	obs := baloot.Observation{
		Phase:      baloot.PhaseBidding,
		MyPosition: baloot.P0,
		MyHand:     strongHokumHand(),
	}
	decision := Optimize(obs)
	if decision.Action.Kind == baloot.ActionDouble || decision.Action.Kind == baloot.ActionRedouble {
		t.Fatalf("DOUBLE/REDOUBLE should never fire with an unpopulated BidLegalActions contract, got %v", decision.Action)
	}
}
