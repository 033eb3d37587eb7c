package tactics

import "github.com/tazjel/baloot-ai/internal/baloot"

// FollowLabel names which rule in the follow-optimizer cascade fired.
type FollowLabel int

const (
	FollowWinBig FollowLabel = iota
	FollowWinCheap
	FollowDodge
	FollowFeedPartner
	FollowTrumpIn
	FollowTrumpOver
	FollowDesperation
	FollowShedSafe
)

func (l FollowLabel) String() string {
	switch l {
	case FollowWinBig:
		return "WIN_BIG"
	case FollowWinCheap:
		return "WIN_CHEAP"
	case FollowDodge:
		return "DODGE"
	case FollowFeedPartner:
		return "FEED_PARTNER"
	case FollowTrumpIn:
		return "TRUMP_IN"
	case FollowTrumpOver:
		return "TRUMP_OVER"
	case FollowDesperation:
		return "DESPERATION"
	default:
		return "SHED_SAFE"
	}
}

// FollowChoice is the chosen card and the rule that picked it.
type FollowChoice struct {
	Card  baloot.Card
	Label FollowLabel
}

func tablePoints(obs baloot.Observation) int {
	total := 0
	for _, tc := range obs.TableCards {
		total += tc.Card.Points(obs.Mode, obs.Trump)
	}
	return total
}

func currentBest(obs baloot.Observation) (baloot.Card, baloot.Position) {
	best := obs.TableCards[0].Card
	winner := obs.TableCards[0].Seat
	for _, tc := range obs.TableCards[1:] {
		if tc.Card.Beats(best, obs.Mode, obs.Trump) {
			best = tc.Card
			winner = tc.Seat
		}
	}
	return best, winner
}

func anyOpponentTrumped(obs baloot.Observation, leadSuit baloot.Suit) bool {
	for _, tc := range obs.TableCards {
		if tc.Card.IsTrump(obs.Mode, obs.Trump) && tc.Card.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit {
			return true
		}
	}
	return false
}

// SelectFollow implements spec.md §4.5's 8-tactic follow-optimizer
// cascade for seats 2-4, grounded on the teacher's
// playFollowSuit/playTrump cheapest-beater search.
func SelectFollow(hand []baloot.Card, obs baloot.Observation, partnerVoids []baloot.Suit) FollowChoice {
	leadSuit := obs.TableCards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
	best, winner := currentBest(obs)
	partnerWinning := baloot.IsPartner(winner, obs.MyPosition)
	points := tablePoints(obs)

	var followSuit, trumps, offSuit []baloot.Card
	for _, c := range hand {
		switch {
		case c.EffectiveSuit(obs.Mode, obs.Trump) == leadSuit:
			followSuit = append(followSuit, c)
		case c.IsTrump(obs.Mode, obs.Trump):
			trumps = append(trumps, c)
		default:
			offSuit = append(offSuit, c)
		}
	}

	if len(followSuit) > 0 {
		var beaters []baloot.Card
		for _, c := range followSuit {
			if c.Beats(best, obs.Mode, obs.Trump) {
				beaters = append(beaters, c)
			}
		}
		if partnerWinning && points >= 15 {
			return FollowChoice{Card: highestNonOvertaking(followSuit, best, obs.Mode, obs.Trump), Label: FollowFeedPartner}
		}
		if len(beaters) > 0 {
			if points >= 16 {
				return FollowChoice{Card: highestCard(beaters, obs.Mode, obs.Trump), Label: FollowWinBig}
			}
			return FollowChoice{Card: cheapestWinner(beaters, obs.Mode, obs.Trump), Label: FollowWinCheap}
		}
		return FollowChoice{Card: cheapestCard(followSuit, obs.Mode, obs.Trump), Label: FollowShedSafe}
	}

	if obs.Mode == baloot.HOKUM && len(trumps) > 0 {
		opponentLed := !baloot.IsPartner(obs.TableCards[0].Seat, obs.MyPosition)
		if opponentLed && points >= 10 {
			return FollowChoice{Card: cheapestCard(trumps, obs.Mode, obs.Trump), Label: FollowTrumpIn}
		}
		if anyOpponentTrumped(obs, leadSuit) {
			var beaters []baloot.Card
			for _, c := range trumps {
				if c.Beats(best, obs.Mode, obs.Trump) {
					beaters = append(beaters, c)
				}
			}
			if len(beaters) > 0 {
				return FollowChoice{Card: cheapestCard(beaters, obs.Mode, obs.Trump), Label: FollowTrumpOver}
			}
		}
		// Void in the led suit while holding trump is a mandatory trump
		// play, win or not (the legal-actions contract never offers an
		// off-suit index here) — dodge with the cheapest trump rather
		// than shedding off-suit.
		return FollowChoice{Card: cheapestCard(trumps, obs.Mode, obs.Trump), Label: FollowDodge}
	}

	if len(offSuit) == 0 {
		return FollowChoice{Card: cheapestCard(trumps, obs.Mode, obs.Trump), Label: FollowShedSafe}
	}
	preferred := preferPartnerVoidSuits(offSuit, partnerVoids)
	return FollowChoice{Card: cheapestCard(preferred, obs.Mode, obs.Trump), Label: FollowShedSafe}
}

func cheapestCard(cards []baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Points(mode, trump) < best.Points(mode, trump) {
			best = c
		}
	}
	return best
}

func cheapestWinner(cards []baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	return cheapestCard(cards, mode, trump)
}

func highestNonOvertaking(cards []baloot.Card, best baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	var candidates []baloot.Card
	for _, c := range cards {
		if !c.Beats(best, mode, trump) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return cheapestCard(cards, mode, trump)
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Points(mode, trump) > top.Points(mode, trump) {
			top = c
		}
	}
	return top
}

func preferPartnerVoidSuits(cards []baloot.Card, partnerVoids []baloot.Suit) []baloot.Card {
	var preferred []baloot.Card
	for _, c := range cards {
		for _, v := range partnerVoids {
			if c.Suit == v {
				preferred = append(preferred, c)
				break
			}
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return cards
}
