package inference

import "github.com/tazjel/baloot-ai/internal/baloot"

// PlayStyle characterizes an opponent's aggression from observed leads
// and discards.
type PlayStyle int

const (
	StyleUnknown PlayStyle = iota
	StyleAggressive
	StylePassive
)

func (s PlayStyle) String() string {
	switch s {
	case StyleAggressive:
		return "AGGRESSIVE"
	case StylePassive:
		return "PASSIVE"
	default:
		return "UNKNOWN"
	}
}

// OpponentModel mirrors PartnerRead for a single opponent, plus the
// aggression/danger signals spec.md §4.4 adds for adversaries.
type OpponentModel struct {
	Position          baloot.Position
	LikelyStrongSuits []baloot.Suit
	LikelyVoidSuits   []baloot.Suit
	EstimatedTrumps   int
	HasHighTrumps     bool
	Confidence        float64
	PlayStyle         PlayStyle
	DangerLevel       float64
}

// ReadOpponent builds the model for one named opponent position.
func ReadOpponent(obs baloot.Observation, opp baloot.Position) OpponentModel {
	m := OpponentModel{Position: opp}
	evidence := 0.0
	highPlays, lowDiscards := 0, 0

	for _, e := range obs.BidHistory {
		if e.Seat != opp {
			continue
		}
		switch e.Action.Kind {
		case baloot.ActionHokum:
			m.LikelyStrongSuits = addSuit(m.LikelyStrongSuits, e.Action.Suit)
			m.EstimatedTrumps += 3
			m.HasHighTrumps = true
			evidence += 0.35
		case baloot.ActionSun, baloot.ActionAshkal, baloot.ActionDouble:
			evidence += 0.15
		}
	}

	for _, t := range obs.TrickHistory {
		card, played := cardPlayedBy(t, opp)
		if !played {
			continue
		}
		leadSuit := t.Cards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		isLead := t.Cards[0].Seat == opp

		if isLead && highRank(card) {
			m.LikelyStrongSuits = addSuit(m.LikelyStrongSuits, card.Suit)
			highPlays++
			evidence += 0.15
		}
		if obs.Mode == baloot.HOKUM && !isLead && card.IsTrump(obs.Mode, obs.Trump) && card.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit {
			m.HasHighTrumps = m.HasHighTrumps || card.Rank == baloot.Jack || card.Rank == baloot.Nine
			highPlays++
			evidence += 0.20
		}
		if !isLead && card.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit && !card.IsTrump(obs.Mode, obs.Trump) {
			m.LikelyVoidSuits = addSuit(m.LikelyVoidSuits, leadSuit)
			if card.Rank == baloot.Seven || card.Rank == baloot.Eight {
				lowDiscards++
			}
			evidence += 0.10
		}
	}

	total := highPlays + lowDiscards
	switch {
	case total == 0:
		m.PlayStyle = StyleUnknown
	case float64(highPlays)/float64(total) >= 0.6:
		m.PlayStyle = StyleAggressive
	default:
		m.PlayStyle = StylePassive
	}

	if evidence > 1 {
		evidence = 1
	}
	m.Confidence = evidence

	danger := float64(m.EstimatedTrumps) / 8.0
	if m.HasHighTrumps {
		danger += 0.3
	}
	danger += float64(len(m.LikelyStrongSuits)) * 0.1
	if m.PlayStyle == StyleAggressive {
		danger += 0.15
	}
	if danger > 1 {
		danger = 1
	}
	m.DangerLevel = danger

	return m
}

// ReadOpponents builds both opponent models in seat order.
func ReadOpponents(obs baloot.Observation) [2]OpponentModel {
	opps := obs.MyPosition.Opponents()
	return [2]OpponentModel{ReadOpponent(obs, opps[0]), ReadOpponent(obs, opps[1])}
}

// SafeLeadSuits returns suits where neither opponent is void or strong.
func SafeLeadSuits(models [2]OpponentModel) []baloot.Suit {
	var out []baloot.Suit
	for _, suit := range baloot.Suits {
		safe := true
		for _, m := range models {
			if containsSuit(m.LikelyVoidSuits, suit) || containsSuit(m.LikelyStrongSuits, suit) {
				safe = false
				break
			}
		}
		if safe {
			out = append(out, suit)
		}
	}
	return out
}

// AvoidLeadSuits returns suits where either opponent is void or strong.
func AvoidLeadSuits(models [2]OpponentModel) []baloot.Suit {
	var out []baloot.Suit
	for _, suit := range baloot.Suits {
		for _, m := range models {
			if containsSuit(m.LikelyVoidSuits, suit) || containsSuit(m.LikelyStrongSuits, suit) {
				out = addSuit(out, suit)
				break
			}
		}
	}
	return out
}

func containsSuit(suits []baloot.Suit, s baloot.Suit) bool {
	for _, x := range suits {
		if x == s {
			return true
		}
	}
	return false
}
