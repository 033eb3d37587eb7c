package bidding

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/evaluation"
)

// HokumCandidate is the per-suit strength computed when scoring every
// suit as a candidate trump, per spec.md §4.3.
type HokumCandidate struct {
	Suit       baloot.Suit
	Strength   float64
	Projected  evaluation.TrickProjection
	Shape      evaluation.HandShape
}

// EvaluateHokum scores every suit independently as a candidate trump
// (trump power + side aces + shape bonus) and returns the best,
// mirroring the teacher's EvaluateRound2 suit loop.
func EvaluateHokum(hand []baloot.Card) (best HokumCandidate, all []HokumCandidate) {
	for i, suit := range baloot.Suits {
		shape := evaluation.EvaluateShape(hand, baloot.HOKUM, suit)
		projected := evaluation.ProjectTricks(hand, baloot.HOKUM, suit)
		strength := projected.Expected + shape.HokumAdj + shape.RuffPotential*0.25
		cand := HokumCandidate{Suit: suit, Strength: strength, Projected: projected, Shape: shape}
		all = append(all, cand)
		if i == 0 || cand.Strength > best.Strength {
			best = cand
		}
	}
	return
}
