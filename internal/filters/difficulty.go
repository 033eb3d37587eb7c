package filters

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
)

// noiseRate and secondBestRate implement spec.md §4.8's per-difficulty
// play noise: EASY swaps to a random legal card 15% of the time,
// MEDIUM swaps to a different legal candidate 10% of the time, HARD
// and EXPERT never inject noise (optimal play).
func noiseRate(d baloot.Difficulty) float64 {
	switch d {
	case baloot.Easy:
		return 0.15
	case baloot.Medium:
		return 0.10
	default:
		return 0
	}
}

// ApplyDifficultyPlay injects the noise spec.md §4.8 prescribes: a
// probabilistic swap to another legal card, never to an illegal one.
func ApplyDifficultyPlay(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	rate := noiseRate(obs.Difficulty)
	if rate == 0 || len(obs.PlayingLegalIndices) < 2 {
		return decision
	}
	rng := obs.RNG()
	if rng.Float64() >= rate {
		return decision
	}

	var alternatives []int
	for _, idx := range obs.PlayingLegalIndices {
		if idx != decision.CardIndex {
			alternatives = append(alternatives, idx)
		}
	}
	if len(alternatives) == 0 {
		return decision
	}

	pick := alternatives[rng.Intn(len(alternatives))]
	decision.CardIndex = pick
	decision.Confidence = 0
	decision.StrategyLabel = "DIFFICULTY_NOISE_" + obs.Difficulty.String()
	decision.Reasoning = obs.Difficulty.String() + " noise roll overrode the brain's choice: " + decision.Reasoning
	return decision
}

// KabootPosture implements spec.md §4.8's difficulty-gated kaboot
// pursuit aggressiveness: EASY never pursues, MEDIUM only pursues late
// (passive), HARD pursues once 3 tricks have been played (active),
// EXPERT pursues from the very first
// trick (aggressive). earliestTrick is the minimum TricksPlayed before
// the kaboot decider is even consulted.
func KabootPosture(d baloot.Difficulty) (allowed bool, earliestTrick int) {
	switch d {
	case baloot.Easy:
		return false, 0
	case baloot.Medium:
		return true, 6
	case baloot.Expert:
		return true, 0
	default: // Hard
		return true, 3
	}
}
