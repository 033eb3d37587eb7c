package inference

import "github.com/tazjel/baloot-ai/internal/baloot"

// BuyerTier classifies how strong the buyer's auction commitment
// looked, for use once play begins.
type BuyerTier int

const (
	TierUnknown BuyerTier = iota
	TierStrong
	TierMarginal
	TierOverbid
)

func (t BuyerTier) String() string {
	switch t {
	case TierStrong:
		return "STRONG"
	case TierMarginal:
		return "MARGINAL"
	case TierOverbid:
		return "OVERBID"
	default:
		return "UNKNOWN"
	}
}

// PlayImplications is the actionable distillate of the bid reader.
type PlayImplications struct {
	SafeLeads       []baloot.Suit
	AvoidLeads      []baloot.Suit
	PartnerLikelyHas []baloot.Suit
}

// BidRead is the play-phase intelligence extracted from the completed
// auction, per spec.md §4.4.
type BidRead struct {
	Buyer             baloot.Position
	BuyerTier         BuyerTier
	PasserWeakSuits   map[baloot.Position][]baloot.Suit
	PlayImplications  PlayImplications
}

// roundOfAction returns the 1-based auction round in which entry idx
// occurred, counting a full round as one action per seat.
func roundOfAction(idx int) int {
	return idx/4 + 1
}

// ReadBid derives buyer strength tier, per-passer weak suits, and the
// resulting safe/avoid/partner-likely-has suit sets.
func ReadBid(obs baloot.Observation) BidRead {
	r := BidRead{
		Buyer:           obs.Buyer,
		PasserWeakSuits: make(map[baloot.Position][]baloot.Suit),
	}

	opposedByDouble := false
	var buyerRound int
	for i, e := range obs.BidHistory {
		if e.Action.Kind == baloot.ActionDouble && e.Seat != obs.Buyer && !baloot.IsPartner(e.Seat, obs.Buyer) {
			opposedByDouble = true
		}
		if e.Seat == obs.Buyer && (e.Action.Kind == baloot.ActionHokum || e.Action.Kind == baloot.ActionSun || e.Action.Kind == baloot.ActionAshkal) {
			buyerRound = roundOfAction(i)
		}
		// A round-1 passer declined the face-up suit as trump; treat it
		// as a weak suit for that seat. Later rounds carry no such
		// signal since the face-up card is no longer biddable.
		if e.Action.Kind == baloot.ActionPass && roundOfAction(i) == 1 && obs.Mode == baloot.HOKUM {
			r.PasserWeakSuits[e.Seat] = addSuit(r.PasserWeakSuits[e.Seat], obs.FaceUpCard.Suit)
		}
	}

	switch {
	case buyerRound == 1 && !opposedByDouble:
		r.BuyerTier = TierStrong
	case buyerRound == 1 && opposedByDouble:
		r.BuyerTier = TierMarginal
	case buyerRound >= 2 && !opposedByDouble:
		r.BuyerTier = TierMarginal
	default:
		r.BuyerTier = TierOverbid
	}

	partner := ReadPartner(obs)
	opponents := ReadOpponents(obs)

	r.PlayImplications = PlayImplications{
		SafeLeads:        SafeLeadSuits(opponents),
		AvoidLeads:       AvoidLeadSuits(opponents),
		PartnerLikelyHas: partner.LikelyStrongSuits,
	}
	return r
}
