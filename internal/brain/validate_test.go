package brain

import (
	"errors"
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func TestValidateDecisionAcceptsLegalCard(t *testing.T) {
	obs := baloot.Observation{PlayingLegalIndices: []int{0, 2}}
	decision := baloot.PlayDecision{CardIndex: 2}
	if err := ValidateDecision(decision, obs); err != nil {
		t.Errorf("ValidateDecision rejected a legal index: %v", err)
	}
}

func TestValidateDecisionRejectsIllegalCard(t *testing.T) {
	obs := baloot.Observation{PlayingLegalIndices: []int{0, 2}}
	decision := baloot.PlayDecision{CardIndex: 1}
	err := ValidateDecision(decision, obs)
	if !errors.Is(err, baloot.ErrInternalLogic) {
		t.Errorf("ValidateDecision = %v, want baloot.ErrInternalLogic", err)
	}
}

func TestValidateDecisionSkipsWhenContractUnpopulated(t *testing.T) {
	obs := baloot.Observation{}
	decision := baloot.PlayDecision{CardIndex: 5}
	if err := ValidateDecision(decision, obs); err != nil {
		t.Errorf("ValidateDecision should no-op on an empty PlayingLegalIndices, got %v", err)
	}
}

func TestValidateBidDecisionAcceptsLegalAction(t *testing.T) {
	obs := baloot.Observation{BidLegalActions: []baloot.BidAction{baloot.Pass(), baloot.Sun()}}
	decision := baloot.BidDecision{Action: baloot.Sun()}
	if err := ValidateBidDecision(decision, obs); err != nil {
		t.Errorf("ValidateBidDecision rejected a legal action: %v", err)
	}
}

func TestValidateBidDecisionRejectsIllegalAction(t *testing.T) {
	obs := baloot.Observation{BidLegalActions: []baloot.BidAction{baloot.Pass()}}
	decision := baloot.BidDecision{Action: baloot.Hokum(baloot.S2)}
	err := ValidateBidDecision(decision, obs)
	if !errors.Is(err, baloot.ErrInternalLogic) {
		t.Errorf("ValidateBidDecision = %v, want baloot.ErrInternalLogic", err)
	}
}
