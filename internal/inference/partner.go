// Package inference reads signal out of the bidding auction and the
// tricks played so far: what partner and opponents probably hold, and
// how the round is trending. Grounded on the teacher's
// PlayStrategy.selectFollow/playTrump partner-winning checks
// (internal/ai/rule_based/play.go), generalized from a single boolean
// ("is partner winning") into the full partner/opponent read of
// spec.md §4.4.
package inference

import "github.com/tazjel/baloot-ai/internal/baloot"

// PartnerRead is the evidence accumulated about partner's hand from
// their bids and plays.
type PartnerRead struct {
	LikelyStrongSuits []baloot.Suit
	LikelyVoidSuits   []baloot.Suit
	EstimatedTrumps   int
	HasHighTrumps     bool
	Confidence        float64
}

func addSuit(suits []baloot.Suit, s baloot.Suit) []baloot.Suit {
	for _, x := range suits {
		if x == s {
			return suits
		}
	}
	return append(suits, s)
}

// ReadPartner builds a PartnerRead from partner's bid actions and the
// cards they have played in completed tricks so far this round.
func ReadPartner(obs baloot.Observation) PartnerRead {
	var r PartnerRead
	evidence := 0.0

	for _, e := range obs.BidHistory {
		if !baloot.IsPartner(e.Seat, obs.MyPosition) {
			continue
		}
		switch e.Action.Kind {
		case baloot.ActionHokum:
			r.LikelyStrongSuits = addSuit(r.LikelyStrongSuits, e.Action.Suit)
			r.EstimatedTrumps += 3
			r.HasHighTrumps = true
			evidence += 0.35
		case baloot.ActionSun, baloot.ActionAshkal:
			evidence += 0.20
		case baloot.ActionDouble:
			evidence += 0.15
		}
	}

	for _, t := range obs.TrickHistory {
		partnerCard, played := cardPlayedBy(t, partnerOf(obs.MyPosition))
		if !played {
			continue
		}
		leadSuit := t.Cards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		isLead := t.Cards[0].Seat == partnerOf(obs.MyPosition)

		if isLead && highRank(partnerCard) {
			r.LikelyStrongSuits = addSuit(r.LikelyStrongSuits, partnerCard.Suit)
			evidence += 0.15
		}
		if obs.Mode == baloot.HOKUM && partnerCard.IsTrump(obs.Mode, obs.Trump) && partnerCard.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit && !isLead {
			r.HasHighTrumps = r.HasHighTrumps || partnerCard.Rank == baloot.Jack || partnerCard.Rank == baloot.Nine
			evidence += 0.20
		}
		if !isLead && partnerCard.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit && !partnerCard.IsTrump(obs.Mode, obs.Trump) {
			r.LikelyVoidSuits = addSuit(r.LikelyVoidSuits, leadSuit)
			evidence += 0.10
		}
	}

	if evidence > 1 {
		evidence = 1
	}
	r.Confidence = evidence
	return r
}

func partnerOf(p baloot.Position) baloot.Position {
	return p.Partner()
}

func cardPlayedBy(t baloot.CompletedTrick, seat baloot.Position) (baloot.Card, bool) {
	for _, tc := range t.Cards {
		if tc.Seat == seat {
			return tc.Card, true
		}
	}
	return baloot.Card{}, false
}

func highRank(c baloot.Card) bool {
	return c.Rank == baloot.Ace || c.Rank == baloot.King
}
