package tactics

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// TrumpAction is the HOKUM-only trump-management directive.
type TrumpAction int

const (
	TrumpNeutral TrumpAction = iota
	TrumpDraw
	TrumpPreserve
	TrumpCrossRuff
)

func (a TrumpAction) String() string {
	switch a {
	case TrumpDraw:
		return "DRAW"
	case TrumpPreserve:
		return "PRESERVE"
	case TrumpCrossRuff:
		return "CROSS_RUFF"
	default:
		return "NEUTRAL"
	}
}

// TrumpPlan is the trump manager's output.
type TrumpPlan struct {
	Action          TrumpAction
	LeadTrump       bool
	SafeSideSuits   []baloot.Suit
	RuffTargetSuits []baloot.Suit
}

func hasCard(hand []baloot.Card, r baloot.Rank, s baloot.Suit) bool {
	return baloot.ContainsCard(hand, baloot.NewCard(r, s))
}

func countTrumps(hand []baloot.Card, trump baloot.Suit) int {
	n := 0
	for _, c := range hand {
		if c.Suit == trump {
			n++
		}
	}
	return n
}

// ManageTrump implements spec.md §4.5's trump manager: first-match-wins
// over DRAW / PRESERVE / CROSS_RUFF / NEUTRAL.
func ManageTrump(hand []baloot.Card, trump baloot.Suit, trk *tracker.Tracker, partnerVoids []baloot.Suit) TrumpPlan {
	myTrumps := countTrumps(hand, trump)
	enemyTrumpsOut := len(trk.RemainingInSuit(trump))

	plan := TrumpPlan{}

	switch {
	case hasCard(hand, baloot.Jack, trump) && hasCard(hand, baloot.Nine, trump) && enemyTrumpsOut > 0:
		plan.Action = TrumpDraw
		plan.LeadTrump = true
	case myTrumps <= 2 && enemyTrumpsOut > myTrumps:
		plan.Action = TrumpPreserve
	case len(partnerVoids) > 0 && myTrumps > 0:
		plan.Action = TrumpCrossRuff
		plan.RuffTargetSuits = partnerVoids
	case enemyTrumpsOut == 0:
		plan.Action = TrumpNeutral
	default:
		plan.Action = TrumpNeutral
	}

	for _, suit := range baloot.Suits {
		if suit == trump {
			continue
		}
		if len(trk.GetVoids(suit)) == 0 {
			plan.SafeSideSuits = append(plan.SafeSideSuits, suit)
		}
	}

	return plan
}
