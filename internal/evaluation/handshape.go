// Package evaluation implements the hand evaluators of spec.md §4.2:
// hand shape, trick projection, and score pressure/context.
package evaluation

import (
	"sort"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

// ShapeType classifies the 8-card suit distribution.
type ShapeType int

const (
	ShapeBalanced ShapeType = iota
	ShapeSemiBalanced
	ShapeUnbalanced
	ShapeUnbalancedVoid
	ShapeExtreme
)

func (s ShapeType) String() string {
	switch s {
	case ShapeBalanced:
		return "Balanced"
	case ShapeSemiBalanced:
		return "Semi"
	case ShapeUnbalanced:
		return "Unbalanced"
	case ShapeUnbalancedVoid:
		return "Unbalanced+"
	default:
		return "Extreme"
	}
}

// HandShape is the result of classifying a hand's distribution
// (spec.md §4.2).
type HandShape struct {
	Pattern       [4]int // sorted descending suit counts
	Type          ShapeType
	SunAdj        float64
	HokumAdj      float64
	RuffPotential float64
	LongSuitTricks int
	HasVoid       bool
}

// suitCounts returns the count of each suit in hand, keyed by suit.
func suitCounts(hand []baloot.Card) map[baloot.Suit]int {
	counts := map[baloot.Suit]int{baloot.S1: 0, baloot.S2: 0, baloot.S3: 0, baloot.S4: 0}
	for _, c := range hand {
		counts[c.Suit]++
	}
	return counts
}

// EvaluateShape classifies hand per the table in spec.md §4.2. trump
// is only meaningful in HOKUM.
func EvaluateShape(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit) HandShape {
	counts := suitCounts(hand)
	pattern := make([]int, 0, 4)
	hasVoid := false
	spareTrumps := 0
	for s, n := range counts {
		pattern = append(pattern, n)
		if n == 0 {
			hasVoid = true
		}
		if mode == baloot.HOKUM && s == trump && n > 2 {
			spareTrumps = n - 2
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pattern)))
	var p [4]int
	copy(p[:], pattern)

	shape := HandShape{Pattern: p, HasVoid: hasVoid}

	key := [4]int(p)
	// A 6+ card suit in an 8-card hand always leaves a void, so the
	// Extreme row is checked before the void row.
	if p[0] >= 6 {
		shape.Type = ShapeExtreme
		shape.SunAdj = -4
		shape.HokumAdj = 4 + float64(p[0]-6)
		if shape.HokumAdj > 6 {
			shape.HokumAdj = 6
		}
	} else if hasVoid {
		shape.Type = ShapeUnbalancedVoid
		shape.SunAdj, shape.HokumAdj = -4, 5
	} else {
		switch key {
		case [4]int{4, 3, 3, 2}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeBalanced, 0, -2
		case [4]int{4, 4, 3, 2}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeBalanced, 0, -1
		case [4]int{5, 3, 3, 2}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeSemiBalanced, -1, 2
		case [4]int{5, 4, 2, 2}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeSemiBalanced, -2, 3
		case [4]int{5, 3, 1, 1}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeUnbalanced, -3, 4
		case [4]int{5, 4, 3, 1}:
			shape.Type, shape.SunAdj, shape.HokumAdj = ShapeUnbalanced, -2, 3
		default:
			// No exact table match: a fixed semi-balanced classification
			// (SUN -1, HOKUM +1), whatever the suit lengths.
			shape.Type = ShapeSemiBalanced
			shape.SunAdj = -1
			shape.HokumAdj = 1
		}
	}

	if mode == baloot.HOKUM {
		voids := 0
		for _, n := range counts {
			if n == 0 {
				voids++
			}
		}
		singles := 0
		for _, n := range counts {
			if n == 1 {
				singles++
			}
		}
		shape.RuffPotential = float64(voids)*2*float64(max1(spareTrumps, 1)) + float64(singles)*1*float64(max1(spareTrumps, 1))
	}

	shape.LongSuitTricks = longSuitTricks(hand, counts)

	return shape
}

func max1(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// longSuitTricks counts running tricks in 5+ card suits topped by A or
// A-K, per spec.md §4.2's trick-projection inputs.
func longSuitTricks(hand []baloot.Card, counts map[baloot.Suit]int) int {
	total := 0
	for suit, n := range counts {
		if n < 5 {
			continue
		}
		hasAce := baloot.ContainsCard(hand, baloot.NewCard(baloot.Ace, suit))
		hasKing := baloot.ContainsCard(hand, baloot.NewCard(baloot.King, suit))
		if hasAce && hasKing {
			total += n - 2
		} else if hasAce {
			total += n - 3
			if total < 0 {
				total = 0
			}
		}
	}
	return total
}
