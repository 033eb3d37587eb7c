package matchup

import "github.com/tazjel/baloot-ai/internal/baloot"

// MatchWinRate seats a under configuration a at P0/P2 and b at
// P1/P3, plays trials independent rounds (buyer alternating every
// round so neither side is structurally favored by always opening),
// and returns the fraction of rounds team a's raw card points beat
// team b's — spec.md §8's P9 ("stronger difficulty wins more often")
// needs exactly this number across a spread of Difficulty pairs.
func MatchWinRate(a, b PlayerConfig, trials int, seed int64) float64 {
	if trials <= 0 {
		return 0
	}
	configs := [4]PlayerConfig{a, b, a, b}
	wins := 0
	for i := 0; i < trials; i++ {
		buyer := baloot.Position(i % 4)
		result := SimulateRound(configs, baloot.HOKUM, baloot.S1, buyer, seed+int64(i))
		if result.TeamPoints[0] > result.TeamPoints[1] {
			wins++
		}
	}
	return float64(wins) / float64(trials)
}
