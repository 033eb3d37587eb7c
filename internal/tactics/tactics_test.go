package tactics

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

func TestClassifyDensityBands(t *testing.T) {
	cases := []struct {
		points int
		want   PointDensity
	}{
		{0, DensityEmpty},
		{5, DensityLow},
		{12, DensityMedium},
		{20, DensityHigh},
		{30, DensityCritical},
	}
	for _, c := range cases {
		if got := ClassifyDensity(c.points); got != c.want {
			t.Errorf("ClassifyDensity(%d) = %v, want %v", c.points, got, c.want)
		}
	}
}

func TestManageTrumpDrawsWithJackAndNine(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1), baloot.NewCard(baloot.Nine, baloot.S1),
		baloot.NewCard(baloot.Ace, baloot.S2),
	}
	trk := tracker.Begin(hand, baloot.P0, nil, baloot.HOKUM, baloot.S1, baloot.Card{}, baloot.Hard, 1)
	plan := ManageTrump(hand, baloot.S1, trk, nil)
	if plan.Action != TrumpDraw {
		t.Fatalf("expected DRAW with J+9 of trump and enemies still holding trump, got %v", plan.Action)
	}
}

func TestManageTrumpPreservesWhenShort(t *testing.T) {
	hand := []baloot.Card{
		baloot.NewCard(baloot.Seven, baloot.S1),
		baloot.NewCard(baloot.Ace, baloot.S2),
	}
	trk := tracker.Begin(hand, baloot.P0, nil, baloot.HOKUM, baloot.S1, baloot.Card{}, baloot.Hard, 1)
	plan := ManageTrump(hand, baloot.S1, trk, nil)
	if plan.Action != TrumpPreserve {
		t.Fatalf("expected PRESERVE with only 1 trump and enemies holding more, got %v", plan.Action)
	}
}

func TestSelectFollowWinsCheaplyWhenBeatable(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.SUN,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P3, Card: baloot.NewCard(baloot.King, baloot.S1)},
		},
	}
	hand := []baloot.Card{
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.Ten, baloot.S1),
	}
	choice := SelectFollow(hand, obs, nil)
	if choice.Card.Rank != baloot.Ten {
		t.Errorf("expected WIN_CHEAP with the Ten over the Ace, got %v (%v)", choice.Card, choice.Label)
	}
	if choice.Label != FollowWinCheap {
		t.Errorf("expected label WIN_CHEAP, got %v", choice.Label)
	}
}

// TestSelectFollowForcesTrumpWhenVoidInHokum covers the case where the
// hand is void in the led suit, holds both trump and off-suit cards,
// and none of TRUMP_IN/TRUMP_OVER fires: the hand must still shed a
// trump, never an off-suit card, since legalIndices/legalPlays both
// treat any off-suit index as illegal here.
func TestSelectFollowForcesTrumpWhenVoidInHokum(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.HOKUM,
		Trump:      baloot.S1,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P1, Card: baloot.NewCard(baloot.Seven, baloot.S2)},
		},
	}
	hand := []baloot.Card{
		baloot.NewCard(baloot.Eight, baloot.S1), // trump, cheap
		baloot.NewCard(baloot.King, baloot.S3),  // off-suit
		baloot.NewCard(baloot.Ace, baloot.S4),   // off-suit
	}
	choice := SelectFollow(hand, obs, nil)
	if choice.Card.Suit != baloot.S1 {
		t.Fatalf("expected a forced trump play when void in the led suit while holding trump, got %v (%v)", choice.Card, choice.Label)
	}
}

func TestSelectFollowFeedsPartnerOnHighTrick(t *testing.T) {
	obs := baloot.Observation{
		MyPosition: baloot.P0,
		Mode:       baloot.SUN,
		TableCards: []baloot.TableCard{
			{Seat: baloot.P2, Card: baloot.NewCard(baloot.Ace, baloot.S1)},
			{Seat: baloot.P1, Card: baloot.NewCard(baloot.King, baloot.S1)},
		},
	}
	hand := []baloot.Card{
		baloot.NewCard(baloot.Queen, baloot.S1),
		baloot.NewCard(baloot.Seven, baloot.S1),
	}
	choice := SelectFollow(hand, obs, nil)
	if choice.Label != FollowFeedPartner {
		t.Errorf("expected FEED_PARTNER when partner already holds a 15+pt trick, got %v", choice.Label)
	}
	if choice.Card.Rank != baloot.Queen {
		t.Errorf("expected the Queen (highest non-overtaking) fed to partner, got %v", choice.Card)
	}
}
