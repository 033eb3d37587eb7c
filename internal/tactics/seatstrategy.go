package tactics

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// SeatRefinement names the seat-specific tactic spec.md §4.5 layers on
// top of the follow optimizer.
type SeatRefinement int

const (
	SeatNone SeatRefinement = iota
	SeatFinesse4th
	SeatHedge
	SeatCommit
	SeatDuck
)

func (s SeatRefinement) String() string {
	switch s {
	case SeatFinesse4th:
		return "FINESSE_4TH"
	case SeatHedge:
		return "HEDGE"
	case SeatCommit:
		return "COMMIT"
	case SeatDuck:
		return "DUCK"
	default:
		return "NONE"
	}
}

// RefineForSeat adjusts a follow choice using the seat-in-trick's
// information advantage. Seat 4 plays last with full information;
// seats 2-3 must hedge against seats yet to act.
func RefineForSeat(hand []baloot.Card, obs baloot.Observation, base FollowChoice, trk *tracker.Tracker) (baloot.Card, SeatRefinement) {
	leadSuit := obs.TableCards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
	best, _ := currentBest(obs)
	points := tablePoints(obs)

	switch obs.SeatInTrick {
	case 4:
		var winners []baloot.Card
		for _, c := range hand {
			if c.EffectiveSuit(obs.Mode, obs.Trump) == leadSuit || c.IsTrump(obs.Mode, obs.Trump) {
				if c.Beats(best, obs.Mode, obs.Trump) {
					winners = append(winners, c)
				}
			}
		}
		if len(winners) > 0 {
			return cheapestCard(winners, obs.Mode, obs.Trump), SeatFinesse4th
		}
		return base.Card, SeatNone

	case 3:
		remaining := trk.RemainingInSuit(leadSuit)
		for _, c := range remaining {
			if c.Beats(base.Card, obs.Mode, obs.Trump) && c.Beats(best, obs.Mode, obs.Trump) {
				return base.Card, SeatHedge
			}
		}
		return base.Card, SeatNone

	case 2:
		if trk.IsMaster(base.Card) || points >= 15 {
			return base.Card, SeatCommit
		}
		var cheaper []baloot.Card
		for _, c := range hand {
			if c.EffectiveSuit(obs.Mode, obs.Trump) == base.Card.EffectiveSuit(obs.Mode, obs.Trump) {
				cheaper = append(cheaper, c)
			}
		}
		if len(cheaper) > 0 {
			return cheapestCard(cheaper, obs.Mode, obs.Trump), SeatDuck
		}
		return base.Card, SeatNone

	default:
		return base.Card, SeatNone
	}
}
