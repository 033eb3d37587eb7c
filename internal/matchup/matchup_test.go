package matchup

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func TestBidRateIsWithinUnitRange(t *testing.T) {
	for _, cfg := range []PlayerConfig{
		{Difficulty: baloot.Easy, Personality: baloot.Conservative},
		{Difficulty: baloot.Hard, Personality: baloot.Aggressive},
	} {
		rate := BidRate(cfg, 200, 42)
		if rate < 0 || rate > 1 {
			t.Fatalf("BidRate(%+v) = %v, want a value in [0,1]", cfg, rate)
		}
	}
}

func TestBidRateAggressiveMeetsOrBeatsConservative(t *testing.T) {
	aggressive := BidRate(PlayerConfig{Difficulty: baloot.Medium, Personality: baloot.Aggressive}, 300, 7)
	conservative := BidRate(PlayerConfig{Difficulty: baloot.Medium, Personality: baloot.Conservative}, 300, 7)
	if aggressive < conservative {
		t.Errorf("aggressive bid rate %v is below conservative bid rate %v on the same seeded hands", aggressive, conservative)
	}
}

func TestBidRateZeroTrialsIsZero(t *testing.T) {
	if got := BidRate(PlayerConfig{}, 0, 1); got != 0 {
		t.Errorf("BidRate with 0 trials = %v, want 0", got)
	}
}

func TestSimulateRoundConservesCardPoints(t *testing.T) {
	configs := [4]PlayerConfig{
		{Difficulty: baloot.Hard, Personality: baloot.Balanced},
		{Difficulty: baloot.Hard, Personality: baloot.Balanced},
		{Difficulty: baloot.Hard, Personality: baloot.Balanced},
		{Difficulty: baloot.Hard, Personality: baloot.Balanced},
	}
	result := SimulateRound(configs, baloot.HOKUM, baloot.S1, baloot.P0, 99)

	// HOKUM with S1 trump: three side suits of 30 plus 62 in trump is
	// 152 card points, plus the 10-point last-trick bonus.
	total := result.TeamPoints[0] + result.TeamPoints[1]
	if total != 162 {
		t.Fatalf("total card points = %d, want all 162 (152 + last-trick bonus) across 8 tricks", total)
	}
	if result.TeamTricks[0]+result.TeamTricks[1] != 8 {
		t.Errorf("total tricks = %d, want 8", result.TeamTricks[0]+result.TeamTricks[1])
	}
}

func TestSimulateRoundIsDeterministic(t *testing.T) {
	configs := [4]PlayerConfig{
		{Difficulty: baloot.Expert, Personality: baloot.Tricky},
		{Difficulty: baloot.Easy, Personality: baloot.Conservative},
		{Difficulty: baloot.Expert, Personality: baloot.Tricky},
		{Difficulty: baloot.Easy, Personality: baloot.Conservative},
	}
	a := SimulateRound(configs, baloot.SUN, baloot.S1, baloot.P1, 123)
	b := SimulateRound(configs, baloot.SUN, baloot.S1, baloot.P1, 123)
	if a != b {
		t.Errorf("SimulateRound with the same seed produced different results: %+v vs %+v", a, b)
	}
}

func TestMatchWinRateIsWithinUnitRange(t *testing.T) {
	expert := PlayerConfig{Difficulty: baloot.Expert, Personality: baloot.Balanced}
	easy := PlayerConfig{Difficulty: baloot.Easy, Personality: baloot.Balanced}
	rate := MatchWinRate(expert, easy, 20, 55)
	if rate < 0 || rate > 1 {
		t.Fatalf("MatchWinRate = %v, want a value in [0,1]", rate)
	}
}

func TestMatchWinRateZeroTrialsIsZero(t *testing.T) {
	if got := MatchWinRate(PlayerConfig{}, PlayerConfig{}, 0, 1); got != 0 {
		t.Errorf("MatchWinRate with 0 trials = %v, want 0", got)
	}
}
