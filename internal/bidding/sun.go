// Package bidding implements the sun/hokum evaluators and bid
// optimizer of spec.md §4.3, grounded on the teacher's
// BiddingEvaluator (internal/ai/rule_based/bidding.go).
package bidding

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/evaluation"
)

// EvaluateSun computes the raw SUN strength for a hand: combines
// trick projection and hand-shape adjustment, as in the teacher's
// evaluateHandStrength but re-targeted at SUN mode.
func EvaluateSun(hand []baloot.Card) (strength float64, projected evaluation.TrickProjection, shape evaluation.HandShape) {
	shape = evaluation.EvaluateShape(hand, baloot.SUN, baloot.NoSuit)
	projected = evaluation.ProjectTricks(hand, baloot.SUN, baloot.NoSuit)
	strength = projected.Expected + shape.SunAdj
	return
}
