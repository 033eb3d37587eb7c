package bidding

import (
	"fmt"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/evaluation"
)

// SunThreshold and HokumThreshold are the base projected-tricks
// thresholds from spec.md §4.3, before score-pressure, personality and
// position adjustments. Exported so internal/filters can re-derive
// what the optimizer would have decided under a personality-scaled
// threshold without reaching into the optimizer's internals.
const (
	SunThreshold   = 4.0
	HokumThreshold = 3.5
)

// lateAuctionBonus rewards having seen more of the auction before
// deciding (spec.md §4.3 "late position... adds a small confidence
// bonus").
func lateAuctionBonus(bidHistory []baloot.BidEntry) float64 {
	passes := 0
	for _, e := range bidHistory {
		if e.Action.Kind == baloot.ActionPass {
			passes++
		}
	}
	bonus := float64(passes) * 0.03
	if bonus > 0.12 {
		bonus = 0.12
	}
	return bonus
}

// Optimize assembles a BidDecision from the sun/hokum evaluators,
// score pressure, and hand shape, per spec.md §4.3's bid optimizer.
// When obs.BidLegalActions is populated, Optimize never returns an
// action outside that set (spec.md §6/P2's ground-truth contract) —
// it falls back through its priority order to whatever the table
// actually offers, down to PASS.
func Optimize(obs baloot.Observation) baloot.BidDecision {
	sunStrength, sunProjected, _ := EvaluateSun(obs.MyHand)
	bestHokum, _ := EvaluateHokum(obs.MyHand)
	pressure := evaluation.EvaluateBidPressure(obs.Scores)

	adjSunThreshold := SunThreshold - pressure.ThresholdDelta
	adjHokumThreshold := HokumThreshold - pressure.ThresholdDelta

	bonus := lateAuctionBonus(obs.BidHistory)

	sunFires := sunProjected.Expected >= adjSunThreshold
	hokumFires := bestHokum.Projected.Expected >= adjHokumThreshold
	preferHokum := hokumFires && (!sunFires || bestHokum.Strength >= sunStrength)

	comp := baloot.BidComponents{
		SunStrength:   sunStrength,
		HokumStrength: bestHokum.Strength,
		BestHokumSuit: bestHokum.Suit,
		PressureDelta: pressure.ThresholdDelta,
	}

	// projected is whichever mode we'd actually contest with, so
	// ShouldDouble has a real trick count to judge even when the
	// eventual action ends up being DOUBLE/REDOUBLE/ASHKAL rather than
	// a plain HOKUM/SUN bid.
	projected := sunProjected
	if preferHokum {
		projected = bestHokum.Projected
	}
	comp.ProjectedTricks = projected.Expected
	comp.QuickTricks = projected.Quick
	comp.ShouldDouble = ShouldDouble(projected, pressure)
	comp.ShouldSteal = ShouldSteal(obs, bestHokum, sunStrength)

	legal := obs.BidLegalActions
	// allowed is the permissive check for HOKUM/SUN/PASS: these are the
	// only actions the optimizer could choose before BidLegalActions
	// existed, so an unpopulated contract still lets them through
	// unconstrained. offered is the strict check for DOUBLE/REDOUBLE/
	// ASHKAL: those are only ever real options when the host's auction
	// state actually puts them on the table, so they stay disabled
	// until BidLegalActions says otherwise.
	allowed := func(a baloot.BidAction) bool {
		return len(legal) == 0 || baloot.ContainsBidAction(legal, a)
	}
	offered := func(a baloot.BidAction) bool {
		return len(legal) > 0 && baloot.ContainsBidAction(legal, a)
	}

	var action baloot.BidAction
	var confidence float64
	var reasoning string

	switch {
	case comp.ShouldDouble && offered(baloot.Redouble()):
		action = baloot.Redouble()
		confidence = 0.6 + bonus
		reasoning = fmt.Sprintf("REDOUBLE: projected %.1f tricks (%.1f quick) holds against the double",
			projected.Expected, projected.Quick)
	case comp.ShouldDouble && offered(baloot.Double()):
		action = baloot.Double()
		confidence = 0.6 + bonus
		reasoning = fmt.Sprintf("DOUBLE: projected %.1f tricks (%.1f quick) clears the doubling bar",
			projected.Expected, projected.Quick)
	case preferHokum && allowed(baloot.Hokum(bestHokum.Suit)):
		action = baloot.Hokum(bestHokum.Suit)
		confidence = 0.5 + (bestHokum.Projected.Expected-adjHokumThreshold)*0.1 + bonus
		reasoning = fmt.Sprintf("HOKUM %s: projected %.1f tricks (threshold %.2f), shape adj %.1f",
			bestHokum.Suit, bestHokum.Projected.Expected, adjHokumThreshold, bestHokum.Shape.HokumAdj)
	case sunFires && allowed(baloot.Sun()):
		action = baloot.Sun()
		confidence = 0.5 + (sunProjected.Expected-adjSunThreshold)*0.1 + bonus
		reasoning = fmt.Sprintf("SUN: projected %.1f tricks (threshold %.2f)", sunProjected.Expected, adjSunThreshold)
	case (sunFires || hokumFires || comp.ShouldSteal) && offered(baloot.Ashkal()):
		// The mode we'd rather bid (HOKUM/SUN, or a gablak steal) isn't
		// on offer at this point in the auction, but the hand still
		// merits staying in rather than passing outright.
		action = baloot.Ashkal()
		confidence = 0.5 + bonus
		reasoning = "ASHKAL: staying in the auction, preferred mode not currently offered"
	default:
		action = baloot.Pass()
		confidence = 0.6
		reasoning = fmt.Sprintf("no mode met its adjusted threshold (SUN %.1f<%.2f, HOKUM %.1f<%.2f)",
			sunProjected.Expected, adjSunThreshold, bestHokum.Projected.Expected, adjHokumThreshold)
	}

	if confidence > 1 {
		confidence = 1
	}

	return baloot.BidDecision{
		Action:     action,
		Confidence: confidence,
		Reasoning:  reasoning,
		Components: comp,
	}
}

// ShouldDouble implements spec.md §4.3's doubling rule: projected
// tricks >= 6.5, quick tricks >= 3, and score pressure permits (i.e.
// doubling bias is not strongly negative).
func ShouldDouble(projected evaluation.TrickProjection, pressure evaluation.BidPressure) bool {
	if projected.Expected < 6.5 || projected.Quick < 3 {
		return false
	}
	return pressure.DoublingBias >= -0.10
}

// ShouldSteal implements gablak: opponents already committed and our
// hand in their mode beats their inferred strength with margin.
func ShouldSteal(obs baloot.Observation, bestHokum HokumCandidate, sunStrength float64) bool {
	opponentCommitted := false
	var opponentMode baloot.Mode
	var opponentSuit baloot.Suit
	for _, e := range obs.BidHistory {
		if baloot.IsPartner(e.Seat, obs.MyPosition) {
			continue
		}
		switch e.Action.Kind {
		case baloot.ActionHokum:
			opponentCommitted = true
			opponentMode = baloot.HOKUM
			opponentSuit = e.Action.Suit
		case baloot.ActionSun, baloot.ActionAshkal:
			opponentCommitted = true
			opponentMode = baloot.SUN
		}
	}
	if !opponentCommitted {
		return false
	}
	const margin = 1.0
	if opponentMode == baloot.HOKUM {
		// Stealing the opponent's own suit needs a smaller margin
		// since we'd be contesting their declared strength directly.
		if bestHokum.Suit == opponentSuit {
			return bestHokum.Strength > 6.0
		}
		return bestHokum.Strength > 6.0+margin
	}
	return sunStrength > 6.0+margin
}
