package macro

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// MidGamePlanKind names one of the five ordered mid-game plans.
type MidGamePlanKind int

const (
	PlanNone MidGamePlanKind = iota
	PlanCashAndExit
	PlanStripThenEndplay
	PlanTrumpForce
	PlanCountAndDuck
	PlanDesperationGambit
)

func (k MidGamePlanKind) String() string {
	switch k {
	case PlanCashAndExit:
		return "CASH_AND_EXIT"
	case PlanStripThenEndplay:
		return "STRIP_THEN_ENDPLAY"
	case PlanTrumpForce:
		return "TRUMP_FORCE"
	case PlanCountAndDuck:
		return "COUNT_AND_DUCK"
	case PlanDesperationGambit:
		return "DESPERATION_GAMBIT"
	default:
		return "NONE"
	}
}

// MidGamePlan is the mid-game planner's output.
type MidGamePlan struct {
	Plan           MidGamePlanKind
	Confidence     float64
	ExpectedTricks float64
	CardIndex      int
}

// controlsAllRemaining returns the first suit we hold in which no card
// remains unseen, i.e. every card of it outside our hand is played.
func controlsAllRemaining(hand []baloot.Card, trk *tracker.Tracker) (baloot.Suit, bool) {
	for _, s := range baloot.Suits {
		var mine []baloot.Card
		for _, c := range hand {
			if c.Suit == s {
				mine = append(mine, c)
			}
		}
		if len(mine) == 0 {
			continue
		}
		if len(mine)+len(trk.RemainingInSuit(s)) == len(mine) {
			return s, true
		}
	}
	return baloot.NoSuit, false
}

func lowestOfSuit(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit, suit baloot.Suit) baloot.Card {
	best := baloot.Card{}
	bestOrder := 999
	for _, c := range hand {
		if c.Suit != suit {
			continue
		}
		o := c.RankOrder(mode, trump)
		if o < bestOrder {
			bestOrder = o
			best = c
		}
	}
	return best
}

func indexOfCard(hand []baloot.Card, c baloot.Card) int {
	for i, h := range hand {
		if h.Equal(c) {
			return i
		}
	}
	return 0
}

// PlanMidGame implements spec.md §4.6's mid-game planner, active for
// 4-6 tricks remaining: evaluates five plans in order, returning the
// first with confidence >= 0.5.
func PlanMidGame(hand []baloot.Card, obs baloot.Observation, trk *tracker.Tracker, losing bool) MidGamePlan {
	// 1. CASH_AND_EXIT: hold >=1 master plus a non-master exit card in
	// a different suit.
	if master, ok := shortestMasterSuit(hand, trk); ok {
		for _, c := range hand {
			if c.Suit != master.Suit && !trk.IsMaster(c) {
				return MidGamePlan{Plan: PlanCashAndExit, Confidence: 0.65, ExpectedTricks: 1.5, CardIndex: indexOfCard(hand, master)}
			}
		}
	}

	// 2. STRIP_THEN_ENDPLAY: we control all remaining cards in some
	// suit (every unseen card of it is already accounted for).
	if suit, ok := controlsAllRemaining(hand, trk); ok {
		lead := lowestOfSuit(hand, obs.Mode, obs.Trump, suit)
		return MidGamePlan{Plan: PlanStripThenEndplay, Confidence: 0.6, ExpectedTricks: 2.0, CardIndex: indexOfCard(hand, lead)}
	}

	// 3. TRUMP_FORCE (HOKUM): lead non-trump non-masters to exhaust
	// opponents' trumps.
	if obs.Mode == baloot.HOKUM {
		enemyTrumps := len(trk.RemainingInSuit(obs.Trump))
		if enemyTrumps > 0 {
			for _, c := range hand {
				if c.Suit != obs.Trump && !trk.IsMaster(c) {
					return MidGamePlan{Plan: PlanTrumpForce, Confidence: 0.55, ExpectedTricks: 1.0, CardIndex: indexOfCard(hand, c)}
				}
			}
		}
	}

	// 4. COUNT_AND_DUCK: losing on tricks but holding future winners.
	if losing && anyMaster(hand, trk) {
		for _, c := range hand {
			if !trk.IsMaster(c) {
				return MidGamePlan{Plan: PlanCountAndDuck, Confidence: 0.5, ExpectedTricks: 0.5, CardIndex: indexOfCard(hand, c)}
			}
		}
	}

	// 5. DESPERATION_GAMBIT: losing badly, lead highest card.
	if losing && len(hand) > 0 {
		top := hand[0]
		for _, c := range hand[1:] {
			if c.Beats(top, obs.Mode, obs.Trump) {
				top = c
			}
		}
		return MidGamePlan{Plan: PlanDesperationGambit, Confidence: 0.5, ExpectedTricks: 0.2, CardIndex: indexOfCard(hand, top)}
	}

	return MidGamePlan{Plan: PlanNone, Confidence: 0}
}
