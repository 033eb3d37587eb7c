package scenario

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/brain"
)

func TestAllScenariosReturnContractedLabel(t *testing.T) {
	for _, c := range All() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			decision := brain.DecidePlay(c.Obs, c.Tracker, c.KnownHands)

			if !c.Matches(decision.StrategyLabel) {
				t.Errorf("%s: label %q does not satisfy expected set %v (reasoning: %s)",
					c.Name, decision.StrategyLabel, c.ExpectedLabels, decision.Reasoning)
			}
			if decision.CardIndex < 0 || decision.CardIndex >= len(c.Obs.MyHand) {
				t.Fatalf("%s: card_index %d out of range for a %d-card hand", c.Name, decision.CardIndex, len(c.Obs.MyHand))
			}
			got := c.Obs.MyHand[decision.CardIndex]
			if !got.Equal(c.ExpectedCard) {
				t.Errorf("%s: played %v, want %v", c.Name, got, c.ExpectedCard)
			}
		})
	}
}

func TestScenarioCasesCoverAllSix(t *testing.T) {
	cases := All()
	if len(cases) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(cases))
	}
	seen := map[string]bool{}
	for _, c := range cases {
		if seen[c.Name] {
			t.Errorf("duplicate scenario name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.ExpectedLabels) == 0 {
			t.Errorf("%s: no expected labels recorded", c.Name)
		}
	}
}
