package inference

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func TestReadPartnerHokumBidSignalsTrump(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		BidHistory: []baloot.BidEntry{
			{Seat: baloot.P2, Action: baloot.Hokum(baloot.S3)},
		},
	}
	r := ReadPartner(obs)
	if !r.HasHighTrumps {
		t.Errorf("expected HasHighTrumps after partner's HOKUM bid")
	}
	if r.Confidence <= 0 {
		t.Errorf("expected positive confidence after a HOKUM bid, got %v", r.Confidence)
	}
	if !containsSuit(r.LikelyStrongSuits, baloot.S3) {
		t.Errorf("expected S3 recorded as a likely strong suit")
	}
}

func TestReadPartnerNoEvidenceIsZeroConfidence(t *testing.T) {
	obs := baloot.Observation{MyPosition: baloot.P0}
	r := ReadPartner(obs)
	if r.Confidence != 0 {
		t.Errorf("expected zero confidence with no bids or plays, got %v", r.Confidence)
	}
}

func TestReadOpponentDetectsVoid(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.HOKUM,
		Trump:      baloot.S1,
		TrickHistory: []baloot.CompletedTrick{
			{
				Leader: baloot.P0,
				Cards: []baloot.TableCard{
					{Seat: baloot.P0, Card: baloot.NewCard(baloot.Ace, baloot.S2)},
					{Seat: baloot.P1, Card: baloot.NewCard(baloot.Seven, baloot.S3)},
					{Seat: baloot.P2, Card: baloot.NewCard(baloot.Eight, baloot.S2)},
					{Seat: baloot.P3, Card: baloot.NewCard(baloot.Nine, baloot.S2)},
				},
				Winner: baloot.P0,
			},
		},
	}
	m := ReadOpponent(obs, baloot.P1)
	if !containsSuit(m.LikelyVoidSuits, baloot.S2) {
		t.Errorf("expected P1 flagged void in S2 after discarding off-suit, got %v", m.LikelyVoidSuits)
	}
}

func TestReadBidBuyerTierStrongOnRound1(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Buyer:      baloot.P0,
		BidHistory: []baloot.BidEntry{
			{Seat: baloot.P0, Action: baloot.Hokum(baloot.S1)},
		},
	}
	br := ReadBid(obs)
	if br.BuyerTier != TierStrong {
		t.Errorf("expected STRONG tier for an uncontested round-1 HOKUM, got %v", br.BuyerTier)
	}
}

func TestReadBidBuyerTierOverbidOnLateDoubledBid(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Buyer:      baloot.P0,
		BidHistory: []baloot.BidEntry{
			{Seat: baloot.P1, Action: baloot.Pass()},
			{Seat: baloot.P2, Action: baloot.Pass()},
			{Seat: baloot.P3, Action: baloot.Pass()},
			{Seat: baloot.P0, Action: baloot.Pass()},
			{Seat: baloot.P1, Action: baloot.Double()},
			{Seat: baloot.P2, Action: baloot.Pass()},
			{Seat: baloot.P3, Action: baloot.Pass()},
			{Seat: baloot.P0, Action: baloot.Hokum(baloot.S1)},
		},
	}
	br := ReadBid(obs)
	if br.BuyerTier != TierOverbid {
		t.Errorf("expected OVERBID tier for a round-2 bid opposed by a double, got %v", br.BuyerTier)
	}
}

func TestReviewMomentumCollapsing(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.SUN,
		TrickHistory: []baloot.CompletedTrick{
			{Leader: baloot.P1, Cards: []baloot.TableCard{{Seat: baloot.P1, Card: baloot.NewCard(baloot.Ace, baloot.S1)}}, Winner: baloot.P1},
			{Leader: baloot.P1, Cards: []baloot.TableCard{{Seat: baloot.P1, Card: baloot.NewCard(baloot.Ace, baloot.S2)}}, Winner: baloot.P3},
			{Leader: baloot.P1, Cards: []baloot.TableCard{{Seat: baloot.P1, Card: baloot.NewCard(baloot.Ace, baloot.S3)}}, Winner: baloot.P1},
		},
	}
	rv := Review(obs)
	if rv.Momentum != MomentumCollapsing {
		t.Errorf("expected COLLAPSING after losing all 3 tricks, got %v", rv.Momentum)
	}
	if rv.StrategyShift != ShiftDamageControl {
		t.Errorf("expected DAMAGE_CONTROL strategy shift, got %v", rv.StrategyShift)
	}
}
