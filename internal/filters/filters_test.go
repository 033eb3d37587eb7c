package filters

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func TestApplyPersonalityBidAggressiveLoosensThreshold(t *testing.T) {
	decision := baloot.BidDecision{
		Action: baloot.Pass(),
		Components: baloot.BidComponents{
			HokumStrength:   6.0,
			SunStrength:     4.0,
			BestHokumSuit:   baloot.S1,
			ProjectedTricks: 3.2, // below the balanced 3.5 threshold, above 3.5*0.85
		},
	}
	out := ApplyPersonalityBid(decision, baloot.Aggressive)
	if out.Action.Kind != baloot.ActionHokum {
		t.Fatalf("expected AGGRESSIVE to loosen the threshold into a HOKUM bid, got %v", out.Action.Kind)
	}
}

func TestApplyPersonalityBidConservativeSuppressesDouble(t *testing.T) {
	decision := baloot.BidDecision{
		Action: baloot.Hokum(baloot.S1),
		Components: baloot.BidComponents{
			ShouldDouble:    true,
			ProjectedTricks: 6.5,
		},
	}
	out := ApplyPersonalityBid(decision, baloot.Conservative)
	if out.Components.ShouldDouble {
		t.Errorf("expected CONSERVATIVE to suppress doubling below 7 projected tricks")
	}
}

func TestApplyDifficultyPlayHardNeverAddsNoise(t *testing.T) {
	decision := baloot.PlayDecision{CardIndex: 0}
	obs := baloot.Observation{
		Difficulty:          baloot.Hard,
		PlayingLegalIndices: []int{0, 1, 2},
	}
	out := ApplyDifficultyPlay(decision, obs)
	if out.CardIndex != 0 {
		t.Errorf("HARD should never inject noise, got card index %d", out.CardIndex)
	}
}

func TestKabootPostureEasyNeverPursues(t *testing.T) {
	allowed, _ := KabootPosture(baloot.Easy)
	if allowed {
		t.Errorf("expected EASY to never pursue kaboot")
	}
}

func TestKabootPostureExpertPursuesImmediately(t *testing.T) {
	allowed, earliest := KabootPosture(baloot.Expert)
	if !allowed || earliest != 0 {
		t.Errorf("expected EXPERT to pursue aggressively from the first trick, got allowed=%v earliest=%d", allowed, earliest)
	}
}

func trickyHandWithEqualValuePair() []baloot.Card {
	return []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1),
		baloot.NewCard(baloot.Eight, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2),
	}
}

func TestApplyPersonalityPlayTrickyNeverFiresBelowConfidenceBar(t *testing.T) {
	hand := trickyHandWithEqualValuePair()
	decision := baloot.PlayDecision{CardIndex: 0, Confidence: 0.79}
	obs := baloot.Observation{
		Personality:         baloot.Tricky,
		MyHand:              hand,
		Mode:                baloot.SUN,
		PlayingLegalIndices: []int{0, 1, 2},
		Seed:                1,
	}
	for seed := int64(1); seed < 50; seed++ {
		obs.Seed = seed
		out := ApplyPersonalityPlay(decision, obs)
		if out.CardIndex != decision.CardIndex {
			t.Fatalf("expected confidence 0.79 to never clear the 0.8 false-signal bar, swapped to %d", out.CardIndex)
		}
	}
}

func TestApplyPersonalityPlayTrickyCanFireAtOrAboveConfidenceBar(t *testing.T) {
	hand := trickyHandWithEqualValuePair()
	decision := baloot.PlayDecision{CardIndex: 0, Confidence: 0.8}
	obs := baloot.Observation{
		Personality:         baloot.Tricky,
		MyHand:              hand,
		Mode:                baloot.SUN,
		PlayingLegalIndices: []int{0, 1, 2},
	}
	swapped := false
	for seed := int64(1); seed < 200; seed++ {
		obs.Seed = seed
		out := ApplyPersonalityPlay(decision, obs)
		if out.CardIndex != decision.CardIndex {
			swapped = true
			if out.CardIndex != 1 {
				t.Fatalf("expected the only equal-value candidate (index 1), got %d", out.CardIndex)
			}
			break
		}
	}
	if !swapped {
		t.Fatalf("expected at least one seed in 200 trials to roll under the 30%% swap rate")
	}
}
