// Package macro implements the macro-level planners of spec.md §4.6:
// kaboot pursuit, the mid-game planner, and the endgame minimax
// solver. Endgame search is grounded structurally on
// a029b0b4_janpfeifer-hiveGo's alphabeta.Searcher (stats struct,
// move-ordering comments) and signalnine-darwindeck's mcts.Search
// (clone-state-then-iterate, fall back on exhaustion); kaboot/mid-game
// bookkeeping is grounded on the teacher's RoundResult trick counting
// (internal/engine/round.go).
package macro

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// KabootStatus reports whether a sweep (kaboot) attempt is alive.
type KabootStatus int

const (
	KabootAbort KabootStatus = iota
	KabootPursuing
	KabootLocked
)

func (s KabootStatus) String() string {
	switch s {
	case KabootPursuing:
		return "PURSUING"
	case KabootLocked:
		return "LOCKED"
	default:
		return "ABORT"
	}
}

// KabootLeadPlan names the lead choice while pursuing a sweep.
type KabootLeadPlan int

const (
	KabootNoLead KabootLeadPlan = iota
	KabootMasterFirst
	KabootLongSuit
	KabootTrumpDraw
)

func (p KabootLeadPlan) String() string {
	switch p {
	case KabootMasterFirst:
		return "MASTER_FIRST"
	case KabootLongSuit:
		return "LONG_SUIT"
	case KabootTrumpDraw:
		return "TRUMP_DRAW"
	default:
		return "NONE"
	}
}

// KabootPlan is the kaboot pursuit module's output.
type KabootPlan struct {
	Status KabootStatus
	Lead   KabootLeadPlan
}

func suitLen(hand []baloot.Card, s baloot.Suit) int {
	n := 0
	for _, c := range hand {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func anyMaster(hand []baloot.Card, trk *tracker.Tracker) bool {
	for _, c := range hand {
		if trk.IsMaster(c) {
			return true
		}
	}
	return false
}

// EvaluateKaboot implements spec.md §4.6's kaboot pursuit. Only
// meaningful when we are the buyers and have won every trick so far;
// callers should check that precondition (tricks_won_by_us ==
// tricks_played) before trusting a PURSUING/LOCKED result.
func EvaluateKaboot(hand []baloot.Card, obs baloot.Observation, trk *tracker.Tracker, partnerVoids []baloot.Suit) KabootPlan {
	if !obs.WeAreBuyers || obs.TricksWonByUs() != obs.TricksPlayed {
		return KabootPlan{Status: KabootAbort}
	}

	if !anyMaster(hand, trk) && obs.TricksPlayed < 5 {
		return KabootPlan{Status: KabootAbort}
	}

	if obs.Mode == baloot.HOKUM {
		enemiesHaveTrump := false
		for _, p := range baloot.Positions {
			if baloot.IsPartner(p, obs.MyPosition) {
				continue
			}
			if trk.VoidProbability(p, obs.Trump) < 0.5 {
				enemiesHaveTrump = true
				break
			}
		}
		if suitLen(hand, obs.Trump) == 0 && enemiesHaveTrump {
			return KabootPlan{Status: KabootAbort}
		}
	}

	if obs.TricksPlayed >= 2 && !obs.IsLeading() && obs.TableCards[0].Seat == obs.MyPosition.Partner() {
		// Partner is leading this trick; trust them, no override.
		return KabootPlan{Status: KabootAbort}
	}

	if !obs.IsLeading() {
		return KabootPlan{Status: KabootLocked}
	}

	plan := KabootPlan{Status: KabootPursuing}
	if m, ok := shortestMasterSuit(hand, trk); ok {
		_ = m
		plan.Lead = KabootMasterFirst
	} else if obs.Mode == baloot.HOKUM && hasCard(hand, baloot.Jack, obs.Trump) && hasCard(hand, baloot.Nine, obs.Trump) {
		plan.Lead = KabootTrumpDraw
	} else {
		plan.Lead = KabootLongSuit
	}
	return plan
}

func shortestMasterSuit(hand []baloot.Card, trk *tracker.Tracker) (baloot.Card, bool) {
	best := baloot.Card{}
	bestLen := 99
	found := false
	for _, c := range hand {
		if !trk.IsMaster(c) {
			continue
		}
		n := suitLen(hand, c.Suit)
		if n < bestLen {
			bestLen = n
			best = c
			found = true
		}
	}
	return best, found
}

func hasCard(hand []baloot.Card, r baloot.Rank, s baloot.Suit) bool {
	return baloot.ContainsCard(hand, baloot.NewCard(r, s))
}
