package brain

import "github.com/tazjel/baloot-ai/internal/baloot"

// ValidateDecision checks a PlayDecision against the Observation's own
// PlayingLegalIndices, the invariant spec.md §7 names as a signal that
// must never fire in practice: "a candidate card is not in
// legal_actions... fails with InternalLogicError and the host must
// abort the turn". DecidePlay never calls this itself — it clamps an
// out-of-contract index with enforceLegality instead — but a host wiring the core in (see
// cmd/balootctl) can call it on the way out to catch the invariant
// violation the spec treats as a test signal rather than a normal
// error path. An empty PlayingLegalIndices is treated as "host didn't
// populate the contract", not a violation.
func ValidateDecision(decision baloot.PlayDecision, obs baloot.Observation) error {
	if len(obs.PlayingLegalIndices) == 0 {
		return nil
	}
	for _, idx := range obs.PlayingLegalIndices {
		if idx == decision.CardIndex {
			return nil
		}
	}
	return baloot.ErrInternalLogic
}

// ValidateBidDecision is ValidateDecision's bidding-side counterpart,
// checked against BidLegalActions.
func ValidateBidDecision(decision baloot.BidDecision, obs baloot.Observation) error {
	if len(obs.BidLegalActions) == 0 {
		return nil
	}
	if !baloot.ContainsBidAction(obs.BidLegalActions, decision.Action) {
		return baloot.ErrInternalLogic
	}
	return nil
}
