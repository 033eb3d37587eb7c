package filters

import (
	"fmt"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

// ApplyPersonalityPlay implements spec.md §4.8's play-side personality
// adjustments. It only ever swaps the already-chosen card for another
// legal one; it never reaches into the brain's deciders.
func ApplyPersonalityPlay(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	switch obs.Personality {
	case baloot.Aggressive:
		return applyAggressiveChase(decision, obs)
	case baloot.Tricky:
		return applyTrickyFalseSignal(decision, obs)
	default:
		return decision
	}
}

// applyAggressiveChase prefers drawing trump when leading with a
// plausible sweep already underway (>=5 tricks won, per spec.md §4.8).
func applyAggressiveChase(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	if !obs.IsLeading() || obs.Mode != baloot.HOKUM || obs.TricksWonByUs() < 5 {
		return decision
	}
	jack := baloot.NewCard(baloot.Jack, obs.Trump)
	idx := indexOfLegalCard(obs, jack)
	if idx < 0 || idx == decision.CardIndex {
		return decision
	}
	decision.CardIndex = idx
	decision.StrategyLabel = "AGGRESSIVE_TRUMP_CHASE"
	decision.Reasoning = fmt.Sprintf("AGGRESSIVE personality overrides to draw trump while pursuing a sweep: %s", decision.Reasoning)
	return decision
}

// applyTrickyFalseSignal swaps the chosen card for another legal card
// of identical point value with 30% probability, misrepresenting hand
// shape without changing the trick's point total (spec.md §4.8). Only
// ever fires on a pre-filter decision confidence >= 0.8 (spec.md §9's
// resolved Open Question) — a low-confidence pick is already close to
// arbitrary, so misrepresenting it would teach nothing to an observer.
func applyTrickyFalseSignal(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	if decision.CardIndex < 0 || decision.CardIndex >= len(obs.MyHand) {
		return decision
	}
	if decision.Confidence < 0.8 {
		return decision
	}
	rng := obs.RNG()
	if rng.Float64() >= 0.30 {
		return decision
	}
	chosen := obs.MyHand[decision.CardIndex]
	var equalCandidates []int
	for _, idx := range obs.PlayingLegalIndices {
		if idx == decision.CardIndex || idx < 0 || idx >= len(obs.MyHand) {
			continue
		}
		c := obs.MyHand[idx]
		if c.Points(obs.Mode, obs.Trump) == chosen.Points(obs.Mode, obs.Trump) {
			equalCandidates = append(equalCandidates, idx)
		}
	}
	if len(equalCandidates) == 0 {
		return decision
	}
	pick := equalCandidates[rng.Intn(len(equalCandidates))]
	decision.CardIndex = pick
	decision.StrategyLabel = "TRICKY_FALSE_SIGNAL"
	decision.Reasoning = fmt.Sprintf("TRICKY personality swapped to an equal-value card to misrepresent shape: %s", decision.Reasoning)
	return decision
}

func indexOfLegalCard(obs baloot.Observation, c baloot.Card) int {
	for _, idx := range obs.PlayingLegalIndices {
		if idx >= 0 && idx < len(obs.MyHand) && obs.MyHand[idx].Equal(c) {
			return idx
		}
	}
	return -1
}
