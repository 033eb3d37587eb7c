package matchup

import (
	"math/rand"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/brain"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// RoundResult is the raw card-point tally of one simulated round, team
// 0 being {P0,P2} and team 1 being {P1,P3}. Converting this into an
// official game score (doubling, kaboot, qahwa multipliers) is the
// host's job per spec.md §9; SimulateRound only ever produces the
// numbers the core itself can see.
type RoundResult struct {
	TeamPoints  [2]int
	TeamTricks  [2]int
	BuyerTeam   int
	BuyerPoints int // TeamPoints[BuyerTeam], for a quick buyer-made-it check
}

// dealHands shuffles a full 32-card deck with r and deals 8 cards to
// each of the four seats in position order.
func dealHands(r *rand.Rand) [4][]baloot.Card {
	deck := baloot.FullDeck()
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	var hands [4][]baloot.Card
	for seat := 0; seat < 4; seat++ {
		hands[seat] = append([]baloot.Card(nil), deck[seat*8:(seat+1)*8]...)
	}
	return hands
}

// legalIndices mirrors internal/macro/endgame.go's legalPlays, but
// returns hand indices rather than cards: Observation.PlayingLegalIndices
// is the contract internal/filters reads to pick a noise/false-signal
// swap, so SimulateRound has to populate it itself, standing in for
// the host's own legal-move enumeration.
func legalIndices(hand []baloot.Card, table []baloot.TableCard, mode baloot.Mode, trump baloot.Suit) []int {
	if len(table) == 0 {
		idx := make([]int, len(hand))
		for i := range hand {
			idx[i] = i
		}
		return idx
	}
	leadSuit := table[0].Card.EffectiveSuit(mode, trump)
	var following []int
	for i, c := range hand {
		if c.EffectiveSuit(mode, trump) == leadSuit {
			following = append(following, i)
		}
	}
	if len(following) > 0 {
		return following
	}
	if mode == baloot.HOKUM {
		var trumps []int
		for i, c := range hand {
			if c.IsTrump(mode, trump) {
				trumps = append(trumps, i)
			}
		}
		if len(trumps) > 0 {
			return trumps
		}
	}
	idx := make([]int, len(hand))
	for i := range hand {
		idx[i] = i
	}
	return idx
}

// trickWinner mirrors internal/macro/endgame.go's resolveTrick: the
// best card by Beats wins, points are the sum of every card's value.
func trickWinner(table []baloot.TableCard, mode baloot.Mode, trump baloot.Suit) (baloot.Position, int) {
	best := table[0]
	for _, tc := range table[1:] {
		if tc.Card.Beats(best.Card, mode, trump) {
			best = tc
		}
	}
	points := 0
	for _, tc := range table {
		points += tc.Card.Points(mode, trump)
	}
	return best.Seat, points
}

// SimulateRound plays one full 8-trick round with each seat running
// the cascade independently — its own hand, its own freshly-begun
// Tracker, its own PlayerConfig — sharing only the public TableCards
// and TrickHistory every Observation carries. As in internal/scenario,
// each seat's Tracker is rebuilt fresh from its current hand every
// decision rather than replayed forward through Observe/OnTrickCard:
// the difficulty/personality comparisons SimulateRound exists for
// don't depend on cross-trick unseen-card bookkeeping, only on which
// card each cascade picks given its hand and the public trick state.
//
// The seat right of buyer opens the first trick (mirrors
// internal/engine/round.go's findFirstLeader convention); the winner
// of each trick leads the next, and the final trick's winner also
// receives baloot.LastTrickBonus — SimulateRound stands in for the
// host scoring engine for the single round it plays, so it applies
// that bonus itself.
func SimulateRound(configs [4]PlayerConfig, mode baloot.Mode, trump baloot.Suit, buyer baloot.Position, seed int64) RoundResult {
	r := rand.New(rand.NewSource(seed))
	hands := dealHands(r)

	var history []baloot.CompletedTrick
	leader := buyer.Next()
	result := RoundResult{BuyerTeam: buyer.Team()}

	for trick := 0; trick < 8; trick++ {
		var table []baloot.TableCard
		seat := leader
		for i := 0; i < 4; i++ {
			obs := baloot.Observation{
				Phase:               baloot.PhasePlaying,
				MyPosition:          seat,
				MyHand:              hands[seat],
				Mode:                mode,
				Trump:               trump,
				Buyer:               buyer,
				WeAreBuyers:         seat.Team() == buyer.Team(),
				TricksPlayed:        trick,
				TableCards:          table,
				SeatInTrick:         baloot.SeatInTrick(i + 1),
				TrickHistory:        history,
				Personality:         configs[seat].Personality,
				Difficulty:          configs[seat].Difficulty,
				PlayingLegalIndices: legalIndices(hands[seat], table, mode, trump),
				Seed:                r.Int63(),
			}
			trk := tracker.Begin(hands[seat], seat, nil, mode, trump, baloot.Card{}, configs[seat].Difficulty, obs.Seed)
			decision := brain.DecidePlay(obs, trk, nil)
			if err := brain.ValidateDecision(decision, obs); err != nil {
				// spec.md §7's invariant violation: this must never
				// happen, so SimulateRound treats it the way a host
				// would — loudly, not as a normal error return.
				panic(err)
			}
			card := hands[seat][decision.CardIndex]
			table = append(table, baloot.TableCard{Seat: seat, Card: card})
			hands[seat] = baloot.RemoveCard(hands[seat], card)
			seat = seat.Next()
		}

		winner, points := trickWinner(table, mode, trump)
		if trick == 7 {
			points += baloot.LastTrickBonus
		}
		result.TeamPoints[winner.Team()] += points
		result.TeamTricks[winner.Team()]++
		history = append(history, baloot.CompletedTrick{Leader: leader, Cards: table, Winner: winner})
		leader = winner
	}

	result.BuyerPoints = result.TeamPoints[result.BuyerTeam]
	return result
}
