// Package tactics implements the trick-level tactical selectors of
// spec.md §4.5: point density, trump manager, lead selector, follow
// optimizer, seat strategy and cooperative play. Grounded on the
// teacher's PlayStrategy (internal/ai/rule_based/play.go): the
// "bucket into follow-suit/trump/off-suit, then cheapest-beater
// search" algorithm generalizes into the labeled tactic cascades spec.md
// requires.
package tactics

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
)

// PointDensity labels how much is riding on the current trick.
type PointDensity int

const (
	DensityEmpty PointDensity = iota
	DensityLow
	DensityMedium
	DensityHigh
	DensityCritical
)

func (d PointDensity) String() string {
	switch d {
	case DensityEmpty:
		return "EMPTY"
	case DensityLow:
		return "LOW"
	case DensityMedium:
		return "MEDIUM"
	case DensityHigh:
		return "HIGH"
	default:
		return "CRITICAL"
	}
}

// ClassifyDensity labels a point total per spec.md §4.5's bands.
func ClassifyDensity(points int) PointDensity {
	switch {
	case points <= 0:
		return DensityEmpty
	case points <= 6:
		return DensityLow
	case points <= 15:
		return DensityMedium
	case points <= 25:
		return DensityHigh
	default:
		return DensityCritical
	}
}

// PointDensityReport is the density classification plus the two
// derived booleans spec.md §4.5 asks for.
type PointDensityReport struct {
	Density        PointDensity
	TablePoints    int
	WorthFighting  bool
	ShouldPlayHigh bool
}

// EvaluatePointDensity classifies the table's current point sum and
// derives whether it is worth contesting.
func EvaluatePointDensity(obs baloot.Observation, partnerWinning bool) PointDensityReport {
	points := 0
	for _, tc := range obs.TableCards {
		points += tc.Card.Points(obs.Mode, obs.Trump)
	}
	r := PointDensityReport{Density: ClassifyDensity(points), TablePoints: points}

	r.WorthFighting = r.Density >= DensityMedium && !partnerWinning
	r.ShouldPlayHigh = r.WorthFighting || (partnerWinning && r.Density >= DensityHigh)

	if obs.CardsRemaining() <= 2 {
		r.ShouldPlayHigh = true
	}
	return r
}
