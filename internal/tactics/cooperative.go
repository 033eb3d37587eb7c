package tactics

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/inference"
)

// LeadOverride is an optional leading-phase override bridged from
// partner_read.
type LeadOverride int

const (
	LeadOverrideNone LeadOverride = iota
	LeadOverrideFeedStrong
	LeadOverrideAvoidVoid
	LeadOverrideDrawTrump
	LeadOverrideSetupRun
)

func (o LeadOverride) String() string {
	switch o {
	case LeadOverrideFeedStrong:
		return "FEED_STRONG"
	case LeadOverrideAvoidVoid:
		return "AVOID_VOID"
	case LeadOverrideDrawTrump:
		return "DRAW_TRUMP"
	case LeadOverrideSetupRun:
		return "SETUP_RUN"
	default:
		return "NONE"
	}
}

// FollowOverride is an optional following-phase override bridged from
// partner_read.
type FollowOverride int

const (
	FollowOverrideNone FollowOverride = iota
	FollowOverrideSacrifice
	FollowOverrideSmartDiscard
	FollowOverrideTrumpSupport
)

func (o FollowOverride) String() string {
	switch o {
	case FollowOverrideSacrifice:
		return "SACRIFICE"
	case FollowOverrideSmartDiscard:
		return "SMART_DISCARD"
	case FollowOverrideTrumpSupport:
		return "TRUMP_SUPPORT"
	default:
		return "NONE"
	}
}

// CooperativeLead returns a leading override bridged from the partner
// read, or LeadOverrideNone when confidence is insufficient
// (<0.25, per spec.md §4.5).
func CooperativeLead(hand []baloot.Card, obs baloot.Observation, partner inference.PartnerRead, trumpPlan TrumpPlan) (baloot.Card, LeadOverride, bool) {
	if partner.Confidence < 0.25 {
		return baloot.Card{}, LeadOverrideNone, false
	}

	if len(partner.LikelyStrongSuits) > 0 {
		for _, s := range partner.LikelyStrongSuits {
			if c := lowestInSuit(hand, obs.Mode, obs.Trump, s); c != (baloot.Card{}) {
				return c, LeadOverrideFeedStrong, true
			}
		}
	}

	if len(partner.LikelyVoidSuits) > 0 {
		safe := excludeSuits(hand, partner.LikelyVoidSuits)
		if len(safe) > 0 {
			return longestNonTrumpLowest(safe, obs.Mode, obs.Trump), LeadOverrideAvoidVoid, true
		}
	}

	if obs.Mode == baloot.HOKUM && trumpPlan.Action == TrumpDraw && partner.HasHighTrumps {
		if c := lowestInSuit(hand, obs.Mode, obs.Trump, obs.Trump); c != (baloot.Card{}) {
			return c, LeadOverrideDrawTrump, true
		}
	}

	if c, ok := longCardTopByAce(hand, obs.Trump); ok && partner.EstimatedTrumps <= 1 {
		return c, LeadOverrideSetupRun, true
	}

	return baloot.Card{}, LeadOverrideNone, false
}

// CooperativeFollow returns a following override bridged from the
// partner read, or FollowOverrideNone when confidence is insufficient
// (<0.20, per spec.md §4.5).
func CooperativeFollow(hand []baloot.Card, obs baloot.Observation, partner inference.PartnerRead) (baloot.Card, FollowOverride, bool) {
	if partner.Confidence < 0.20 {
		return baloot.Card{}, FollowOverrideNone, false
	}

	_, winner := currentBest(obs)
	partnerWinning := baloot.IsPartner(winner, obs.MyPosition)

	if partnerWinning && len(partner.LikelyVoidSuits) > 0 {
		leadSuit := obs.TableCards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		isVoidForPartner := false
		for _, s := range partner.LikelyVoidSuits {
			if s == leadSuit {
				isVoidForPartner = true
				break
			}
		}
		if isVoidForPartner && obs.Mode == baloot.HOKUM {
			var trumps []baloot.Card
			for _, c := range hand {
				if c.IsTrump(obs.Mode, obs.Trump) {
					trumps = append(trumps, c)
				}
			}
			if len(trumps) > 0 {
				return cheapestCard(trumps, obs.Mode, obs.Trump), FollowOverrideTrumpSupport, true
			}
		}
	}

	if !partnerWinning && tablePoints(obs) >= 26 {
		leadSuit := obs.TableCards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		var unwinnable []baloot.Card
		for _, c := range hand {
			if c.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit && !c.IsTrump(obs.Mode, obs.Trump) {
				unwinnable = append(unwinnable, c)
			}
		}
		if len(unwinnable) > 0 {
			// Nothing to be done this trick: dump the highest point card
			// we cannot protect rather than hoard it for a trick we will
			// also lose.
			top := unwinnable[0]
			for _, c := range unwinnable[1:] {
				if c.Points(obs.Mode, obs.Trump) > top.Points(obs.Mode, obs.Trump) {
					top = c
				}
			}
			return top, FollowOverrideSacrifice, true
		}
	}

	if !partnerWinning && partner.HasHighTrumps {
		var offSuit []baloot.Card
		leadSuit := obs.TableCards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		for _, c := range hand {
			if c.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit && !c.IsTrump(obs.Mode, obs.Trump) {
				offSuit = append(offSuit, c)
			}
		}
		if len(offSuit) > 0 {
			return cheapestCard(offSuit, obs.Mode, obs.Trump), FollowOverrideSmartDiscard, true
		}
	}

	return baloot.Card{}, FollowOverrideNone, false
}
