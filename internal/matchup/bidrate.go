package matchup

import (
	"math/rand"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/brain"
)

// randomHand deals an 8-card hand off a freshly shuffled deck using
// r, without touching the other 24 cards — BidRate only ever cares
// about one seat's opening hand.
func randomHand(r *rand.Rand) []baloot.Card {
	deck := baloot.FullDeck()
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return append([]baloot.Card(nil), deck[:8]...)
}

// BidRate deals trials independent 8-card hands from a PRNG seeded by
// seed, asks brain.DecideBid for each under cfg, and returns the
// fraction that came back as anything other than a pass — spec.md
// §8's P10 ("more aggressive personalities bid more often") needs
// exactly this number to compare two PlayerConfigs against each
// other.
func BidRate(cfg PlayerConfig, trials int, seed int64) float64 {
	if trials <= 0 {
		return 0
	}
	r := rand.New(rand.NewSource(seed))
	bids := 0
	for i := 0; i < trials; i++ {
		obs := baloot.Observation{
			Phase:       baloot.PhaseBidding,
			MyPosition:  baloot.P0,
			MyHand:      randomHand(r),
			Personality: cfg.Personality,
			Difficulty:  cfg.Difficulty,
			Seed:        r.Int63(),
		}
		decision := brain.DecideBid(obs)
		if decision.Action.Kind != baloot.ActionPass {
			bids++
		}
	}
	return float64(bids) / float64(trials)
}
