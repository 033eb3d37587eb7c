package tracker

import (
	"testing"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

func newTestTracker(t *testing.T, difficulty baloot.Difficulty) *Tracker {
	t.Helper()
	hand := []baloot.Card{
		baloot.NewCard(baloot.Jack, baloot.S1),
		baloot.NewCard(baloot.Nine, baloot.S1),
		baloot.NewCard(baloot.Ace, baloot.S1),
		baloot.NewCard(baloot.King, baloot.S2),
		baloot.NewCard(baloot.Queen, baloot.S2),
		baloot.NewCard(baloot.Seven, baloot.S3),
		baloot.NewCard(baloot.Eight, baloot.S3),
		baloot.NewCard(baloot.Seven, baloot.S4),
	}
	return Begin(hand, baloot.P0, nil, baloot.HOKUM, baloot.S1, baloot.Card{}, difficulty, 42)
}

func TestVoidMonotonicity(t *testing.T) {
	tr := newTestTracker(t, baloot.Expert)
	tr.OnTrickCard(baloot.P1, baloot.NewCard(baloot.Seven, baloot.S2), baloot.S1)
	if tr.VoidProbability(baloot.P1, baloot.S1) != 1.0 {
		t.Fatalf("p1 should be marked void in S1 after failing to follow")
	}
	// Further observations must never lower an absorbed void (I2/P5).
	tr.OnTrickCard(baloot.P2, baloot.NewCard(baloot.Eight, baloot.S1), baloot.S1)
	if tr.VoidProbability(baloot.P1, baloot.S1) != 1.0 {
		t.Fatalf("void probability must stay absorbed at 1.0")
	}
}

func TestCardConservationAfterPlays(t *testing.T) {
	tr := newTestTracker(t, baloot.Expert)
	before := tr.UnseenCount()
	tr.OnTrickCard(baloot.P1, baloot.NewCard(baloot.Seven, baloot.S2), baloot.S2)
	if tr.UnseenCount() != before-1 {
		t.Fatalf("expected unseen count to drop by one, got %d -> %d", before, tr.UnseenCount())
	}
}

func TestIdempotentObservation(t *testing.T) {
	tr := newTestTracker(t, baloot.Expert)
	card := baloot.NewCard(baloot.Seven, baloot.S2)
	tr.OnTrickCard(baloot.P1, card, baloot.S2)
	count := tr.UnseenCount()
	// Replaying the exact same event must be a no-op (P7).
	tr.OnTrickCard(baloot.P1, card, baloot.S2)
	if tr.UnseenCount() != count {
		t.Fatalf("replaying the same trick card changed unseen count")
	}
}

func TestIsMasterInHand(t *testing.T) {
	tr := newTestTracker(t, baloot.Expert)
	// Jack of trump (S1) is the top trump; with all 32 cards minus my
	// hand unseen, no unseen trump outranks it.
	jackTrump := baloot.NewCard(baloot.Jack, baloot.S1)
	if !tr.IsMaster(jackTrump) {
		t.Errorf("trump jack should be a master at round start")
	}
}

func TestMasterCorrectnessAfterTopCardSeen(t *testing.T) {
	tr := newTestTracker(t, baloot.Expert)
	aceS4 := baloot.NewCard(baloot.Ace, baloot.S4)
	// My 7-S4 is not a master while the Ace of S4 is unseen.
	if tr.IsMaster(baloot.NewCard(baloot.Seven, baloot.S4)) {
		t.Fatalf("7 of S4 should not be master while ace unseen")
	}
	tr.OnTrickCard(baloot.P1, aceS4, baloot.S4)
	// Still other outranking cards unseen (8,J,Q,K,10) of non-trump S4.
	if tr.IsMaster(baloot.NewCard(baloot.Seven, baloot.S4)) {
		t.Fatalf("7 of S4 should still not be master, lower non-trump cards remain unseen only if outranking ones gone")
	}
}

func TestDifficultyGatingDropsUpdates(t *testing.T) {
	tr := Begin([]baloot.Card{baloot.NewCard(baloot.Seven, baloot.S1)}, baloot.P0, nil, baloot.HOKUM, baloot.S1, baloot.Card{}, baloot.Easy, 1)
	for i := 0; i < 50; i++ {
		tr.OnTrickCard(baloot.Position((i%3)+1), baloot.NewCard(baloot.Rank(i%8), baloot.Suit((i+1)%4)), baloot.Suit((i+1)%4))
		tr.EndTrick()
	}
	// With a 40% drop rate we expect at least some updates to have
	// been skipped; we can't assert exact values deterministically
	// without duplicating the RNG sequence, so just assert the
	// tracker didn't panic and unseen bookkeeping stayed exact.
	if tr.UnseenCount() > 31 {
		t.Fatalf("expected at least one card to be removed from unseen")
	}
}
