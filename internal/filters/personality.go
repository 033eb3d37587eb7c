// Package filters implements the personality and difficulty
// post-processors of spec.md §4.8. Both operate strictly on the
// Decision a module already returned — never reaching back into
// bidding/brain internals — matching the spec's "pure post-processor,
// never intruding into modules" rule. Grounded on the teacher's
// difficulty-indexed threshold table in AI.New
// (internal/ai/rule_based/ai.go), generalized from one scalar
// threshold into the fuller Personality x Difficulty matrix.
package filters

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/bidding"
)

// personalityThresholdFactor scales the optimizer's base thresholds
// per spec.md §4.8 (AGGRESSIVE bids looser, CONSERVATIVE tighter).
func personalityThresholdFactor(p baloot.Personality) float64 {
	switch p {
	case baloot.Aggressive:
		return 0.85
	case baloot.Conservative:
		return 1.20
	default:
		return 1.0
	}
}

// ApplyPersonalityBid re-derives what the optimizer would have decided
// under a personality-scaled threshold, using only the Components the
// optimizer already returned (SunStrength/HokumStrength/ProjectedTricks),
// and flips the action when the scaled threshold newly admits or
// rejects a bid. It never recomputes hand strength itself.
func ApplyPersonalityBid(decision baloot.BidDecision, personality baloot.Personality) baloot.BidDecision {
	factor := personalityThresholdFactor(personality)
	if factor == 1.0 {
		return decision
	}

	comp := decision.Components
	adjSun := bidding.SunThreshold * factor
	adjHokum := bidding.HokumThreshold * factor

	hokumFires := comp.BestHokumSuit != baloot.NoSuit && comp.ProjectedTricks >= adjHokum && decision.Action.Kind == baloot.ActionHokum
	sunWouldFire := comp.ProjectedTricks >= adjSun

	switch decision.Action.Kind {
	case baloot.ActionPass:
		// A looser (AGGRESSIVE) threshold may newly admit a bid that the
		// balanced optimizer passed on; a tighter one never un-passes.
		if factor < 1.0 && comp.HokumStrength >= comp.SunStrength && comp.HokumStrength > 0 && comp.ProjectedTricks >= adjHokum {
			decision.Action = baloot.Hokum(comp.BestHokumSuit)
			decision.Reasoning = "personality-loosened HOKUM bid: " + decision.Reasoning
		} else if factor < 1.0 && sunWouldFire {
			decision.Action = baloot.Sun()
			decision.Reasoning = "personality-loosened SUN bid: " + decision.Reasoning
		}
	case baloot.ActionHokum:
		if factor > 1.0 && !hokumFires {
			decision.Action = baloot.Pass()
			decision.Reasoning = "personality-tightened to PASS: " + decision.Reasoning
		}
	case baloot.ActionSun:
		if factor > 1.0 && !sunWouldFire {
			decision.Action = baloot.Pass()
			decision.Reasoning = "personality-tightened to PASS: " + decision.Reasoning
		}
	}

	if personality == baloot.Conservative {
		// CONSERVATIVE never doubles below a 7-trick projection,
		// overriding whatever the optimizer's own doubling rule decided.
		if decision.Components.ProjectedTricks < 7.0 {
			decision.Components.ShouldDouble = false
		}
	}

	return decision
}
