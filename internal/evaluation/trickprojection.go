package evaluation

import "github.com/tazjel/baloot-ai/internal/baloot"

// TrickProjection is the bounded heuristic output of spec.md §4.2: a
// {min, expected, max, quick} tricks estimate. It never performs
// search.
type TrickProjection struct {
	Min      float64
	Expected float64
	Max      float64
	Quick    float64
}

// ProjectTricks estimates trick-taking power for (hand, mode, trump)
// by combining masters-in-hand, long-suit runners, trump power, side
// aces, and shape, per spec.md §4.2.
func ProjectTricks(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit) TrickProjection {
	shape := EvaluateShape(hand, mode, trump)

	masters := 0.0
	sideAces := 0.0
	trumpPower := 0.0
	quick := 0.0

	for _, c := range hand {
		if mode == baloot.HOKUM && c.Suit == trump {
			switch c.Rank {
			case baloot.Jack:
				trumpPower += 3
				quick++
			case baloot.Nine:
				trumpPower += 2
				quick++
			case baloot.Ace:
				trumpPower += 1
				quick++
			}
			continue
		}
		if c.Rank == baloot.Ace {
			sideAces++
			if isLikelyMaster(hand, c, mode, trump) {
				masters++
				quick++
			}
		}
	}

	// Extra trump beyond the three counted ranks above still add
	// incremental power ("plus one per additional trump").
	trumpCount := 0
	for _, c := range hand {
		if mode == baloot.HOKUM && c.Suit == trump {
			trumpCount++
		}
	}
	if extra := trumpCount - 3; extra > 0 {
		trumpPower += float64(extra)
	}

	base := masters + float64(shape.LongSuitTricks) + trumpPower*0.5 + sideAces*0.5

	expected := base
	min := base - 1.5
	if min < 0 {
		min = 0
	}
	max := base + 1.5

	return TrickProjection{Min: min, Expected: expected, Max: max, Quick: quick}
}

// isLikelyMaster is a cheap static proxy for "probably the top card of
// its suit": true for an Ace, since nothing in a standalone hand
// evaluation can outrank it without tracker context. Callers with
// access to a live tracker should prefer tracker.IsMaster.
func isLikelyMaster(hand []baloot.Card, card baloot.Card, mode baloot.Mode, trump baloot.Suit) bool {
	return card.Rank == baloot.Ace
}
