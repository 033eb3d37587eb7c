package tactics

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/inference"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// LeadLabel names which rule in the lead-selector cascade fired.
type LeadLabel int

const (
	LeadMasterCash LeadLabel = iota
	LeadTrumpDraw
	LeadDefensePriority
	LeadPartnerFeed
	LeadLongRun
	LeadAvoidDanger
	LeadDesperation
	LeadDefault
)

func (l LeadLabel) String() string {
	switch l {
	case LeadMasterCash:
		return "MASTER_CASH"
	case LeadTrumpDraw:
		return "TRUMP_DRAW"
	case LeadDefensePriority:
		return "DEFENSE_PRIORITY"
	case LeadPartnerFeed:
		return "PARTNER_FEED"
	case LeadLongRun:
		return "LONG_RUN"
	case LeadAvoidDanger:
		return "AVOID_DANGER"
	case LeadDesperation:
		return "DESPERATION"
	default:
		return "DEFAULT"
	}
}

// LeadChoice is the chosen card and the rule that picked it.
type LeadChoice struct {
	Card  baloot.Card
	Label LeadLabel
}

// DefensePlan is the priority/avoid suit set a defending partnership
// works from, derived from the bid reader's read on the buyer.
type DefensePlan struct {
	PrioritySuits []baloot.Suit
	AvoidSuits    []baloot.Suit
}

// BuildDefensePlan turns a bid read into a defense plan: lead the
// suits neither opponent is read as void or strong in, avoid the suits
// either one is.
func BuildDefensePlan(bidRead inference.BidRead) DefensePlan {
	return DefensePlan{
		PrioritySuits: bidRead.PlayImplications.SafeLeads,
		AvoidSuits:    bidRead.PlayImplications.AvoidLeads,
	}
}

func suitCount(hand []baloot.Card, s baloot.Suit) int {
	n := 0
	for _, c := range hand {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func shortestSuitWithMaster(hand []baloot.Card, trk *tracker.Tracker, mode baloot.Mode, trump baloot.Suit) (baloot.Card, bool) {
	best := baloot.Card{}
	bestLen := 99
	found := false
	for _, c := range hand {
		if !trk.IsMaster(c) {
			continue
		}
		n := suitCount(hand, c.Suit)
		if n < bestLen {
			bestLen = n
			best = c
			found = true
		}
	}
	return best, found
}

func longestNonTrumpLowest(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	counts := map[baloot.Suit]int{}
	for _, c := range hand {
		if c.Suit != trump {
			counts[c.Suit]++
		}
	}
	var longest baloot.Suit = baloot.NoSuit
	longestCount := -1
	for s, n := range counts {
		if n > longestCount {
			longestCount = n
			longest = s
		}
	}
	if longest == baloot.NoSuit {
		return lowestOffSuit(hand, mode, trump)
	}
	return lowestInSuit(hand, mode, trump, longest)
}

// lowestInSuit returns the lowest-ranked card of suit, ordered by the
// given mode/trump so HOKUM trump ranking (where 9 and J outrank A) is
// respected rather than the deck's raw rank enumeration.
func lowestInSuit(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit, suit baloot.Suit) baloot.Card {
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

func lowestOffSuit(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	best := baloot.Card{}
	bestOrder := 999
	for _, c := range hand {
		if c.Suit == trump {
			continue
		}
		o := c.RankOrder(mode, trump)
		if o < bestOrder {
			bestOrder = o
			best = c
		}
	}
	if best == (baloot.Card{}) && len(hand) > 0 {
		return lowestInSuit(hand, mode, trump, trump)
	}
	return best
}

func highestCard(hand []baloot.Card, mode baloot.Mode, trump baloot.Suit) baloot.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if c.Beats(best, mode, trump) {
			best = c
		}
	}
	return best
}

// longCardTopByAce reports a 4+ card suit topped by an ace, returning
// its ace.
func longCardTopByAce(hand []baloot.Card, trump baloot.Suit) (baloot.Card, bool) {
	counts := map[baloot.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}
	for s, n := range counts {
		if s == trump || n < 4 {
			continue
		}
		if hasCard(hand, baloot.Ace, s) {
			return baloot.NewCard(baloot.Ace, s), true
		}
	}
	return baloot.Card{}, false
}

// SelectLead implements spec.md §4.5's 8-step lead-selector cascade.
func SelectLead(hand []baloot.Card, obs baloot.Observation, trk *tracker.Tracker, trumpPlan TrumpPlan, defending bool, plan DefensePlan, partner inference.PartnerRead, avoidSuits []baloot.Suit, trickIndex int, losingBadly bool) LeadChoice {
	if c, ok := shortestSuitWithMaster(hand, trk, obs.Mode, obs.Trump); ok {
		return LeadChoice{Card: c, Label: LeadMasterCash}
	}

	if trumpPlan.Action == TrumpDraw && trumpPlan.LeadTrump {
		if c := lowestInSuit(hand, obs.Mode, obs.Trump, obs.Trump); c != (baloot.Card{}) {
			return LeadChoice{Card: c, Label: LeadTrumpDraw}
		}
	}

	if defending && len(plan.PrioritySuits) > 0 {
		for _, s := range plan.PrioritySuits {
			if c := lowestInSuit(hand, obs.Mode, obs.Trump, s); c != (baloot.Card{}) {
				return LeadChoice{Card: c, Label: LeadDefensePriority}
			}
		}
	}

	if partner.Confidence >= 0.4 && len(partner.LikelyStrongSuits) > 0 {
		for _, s := range partner.LikelyStrongSuits {
			if c := lowestInSuit(hand, obs.Mode, obs.Trump, s); c != (baloot.Card{}) {
				return LeadChoice{Card: c, Label: LeadPartnerFeed}
			}
		}
	}

	if c, ok := longCardTopByAce(hand, obs.Trump); ok {
		return LeadChoice{Card: c, Label: LeadLongRun}
	}

	safe := excludeSuits(hand, avoidSuits)
	if len(safe) > 0 && len(safe) != len(hand) {
		hand = safe
	}

	if trickIndex >= 6 && losingBadly {
		return LeadChoice{Card: highestCard(hand, obs.Mode, obs.Trump), Label: LeadDesperation}
	}

	return LeadChoice{Card: longestNonTrumpLowest(hand, obs.Mode, obs.Trump), Label: LeadDefault}
}

func excludeSuits(hand []baloot.Card, avoid []baloot.Suit) []baloot.Card {
	if len(avoid) == 0 {
		return hand
	}
	var out []baloot.Card
	for _, c := range hand {
		skip := false
		for _, s := range avoid {
			if c.Suit == s {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}
