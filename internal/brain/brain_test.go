package brain

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

func TestDecidePlayEndgameSolverWinsWhenDeterminized(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.SUN,
		MyHand:     []baloot.Card{baloot.NewCard(baloot.Ace, baloot.S1)},
		Difficulty: baloot.Expert,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P3, Card: baloot.NewCard(baloot.King, baloot.S1)},
		},
	}
	trk := tracker.Begin(obs.MyHand, baloot.P0, nil, baloot.SUN, baloot.NoSuit, baloot.Card{}, baloot.Hard, 1)
	known := map[baloot.Position][]baloot.Card{
		baloot.P1: {baloot.NewCard(baloot.Seven, baloot.S2)},
		baloot.P2: {baloot.NewCard(baloot.Eight, baloot.S2)},
		baloot.P3: {},
	}

	decision := DecidePlay(obs, trk, known)
	if decision.StrategyLabel != "ENDGAME_SOLVER" {
		t.Fatalf("expected the endgame solver to own a fully determinized last trick, got %s", decision.StrategyLabel)
	}
	if obs.MyHand[decision.CardIndex].Rank != baloot.Ace {
		t.Errorf("expected the Ace to be selected, got %v", obs.MyHand[decision.CardIndex])
	}
}

func TestDecidePlayFallsThroughToDefaultTactical(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1), baloot.NewCard(baloot.Eight, baloot.S1),
		baloot.NewCard(baloot.Nine, baloot.S1), baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.Jack, baloot.S2), baloot.NewCard(baloot.Queen, baloot.S2),
		baloot.NewCard(baloot.King, baloot.S3), baloot.NewCard(baloot.Ace, baloot.S4),
	}
	obs := baloot.Observation{
		MyPosition:  baloot.P0,
		Mode:        baloot.SUN,
		MyHand:      hand,
		WeAreBuyers: false,
		TricksPlayed: 1,
	}
	trk := tracker.Begin(hand, baloot.P0, nil, baloot.SUN, baloot.NoSuit, baloot.Card{}, baloot.Hard, 1)

	decision := DecidePlay(obs, trk, nil)
	if decision.CardIndex < 0 || decision.CardIndex >= len(hand) {
		t.Fatalf("expected a valid card index, got %d", decision.CardIndex)
	}
	if len(decision.ModulesConsulted) == 0 {
		t.Errorf("expected modules_consulted to be populated")
	}
}

func TestDecideKabootPursuingOutranksDefaultTactical(t *testing.T) {
	hand := []baloot.Card{baloot.NewCard(baloot.Ace, baloot.S1), baloot.NewCard(baloot.King, baloot.S2)}
	obs := baloot.Observation{
		MyPosition:   baloot.P0,
		Mode:         baloot.SUN,
		MyHand:       hand,
		WeAreBuyers:  true,
		TricksPlayed: 5,
		TrickHistory: make([]baloot.CompletedTrick, 5),
		Difficulty:   baloot.Hard,
	}
	for i := range obs.TrickHistory {
		obs.TrickHistory[i] = baloot.CompletedTrick{Winner: baloot.P0}
	}
	trk := tracker.Begin(hand, baloot.P0, nil, baloot.SUN, baloot.NoSuit, baloot.Card{}, baloot.Hard, 1)

	decision := DecidePlay(obs, trk, nil)
	if decision.StrategyLabel != "KABOOT_MASTER_FIRST" {
		t.Errorf("expected kaboot pursuit to fire before the default tactical module, got %s", decision.StrategyLabel)
	}
}

// TestDecidePlayNeverReturnsAnIndexOutsideLegalContract exercises
// enforceLegality's clamp directly: PlayingLegalIndices excludes the
// card every decider in the cascade would otherwise converge on, so
// the final decision must come back pointing at one of the cards the
// contract actually allows.
func TestDecidePlayNeverReturnsAnIndexOutsideLegalContract(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S2),
		baloot.NewCard(baloot.Eight, baloot.S3),
	}
	obs := baloot.Observation{
		MyPosition:          baloot.P0,
		Mode:                baloot.SUN,
		MyHand:              hand,
		PlayingLegalIndices: []int{1, 2},
	}
	trk := tracker.Begin(hand, baloot.P0, nil, baloot.SUN, baloot.NoSuit, baloot.Card{}, baloot.Hard, 1)

	decision := DecidePlay(obs, trk, nil)
	if decision.CardIndex != 1 && decision.CardIndex != 2 {
		t.Fatalf("expected CardIndex in PlayingLegalIndices [1 2], got %d", decision.CardIndex)
	}
}

func TestDecideBidDelegatesToOptimizer(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1), baloot.NewCard(baloot.Ten, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S1), baloot.NewCard(baloot.Queen, baloot.S1),
		baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Ace, baloot.S2),
		baloot.NewCard(baloot.Ten, baloot.S2), baloot.NewCard(baloot.King, baloot.S3),
	}
	obs := baloot.Observation{MyPosition: baloot.P0, MyHand: hand}
	decision := DecideBid(obs)
	if decision.Reasoning == "" {
		t.Errorf("expected a reasoning string from the bid optimizer")
	}
}
