package inference

import "github.com/tazjel/baloot-ai/internal/baloot"

// Momentum summarises how the round in progress is trending for us.
type Momentum int

const (
	MomentumTied Momentum = iota
	MomentumWinning
	MomentumLosing
	MomentumCollapsing
)

func (m Momentum) String() string {
	switch m {
	case MomentumWinning:
		return "WINNING"
	case MomentumLosing:
		return "LOSING"
	case MomentumCollapsing:
		return "COLLAPSING"
	default:
		return "TIED"
	}
}

// StrategyShift is the recommended adjustment following trick review.
type StrategyShift int

const (
	ShiftNone StrategyShift = iota
	ShiftConservative
	ShiftAggressive
	ShiftDamageControl
)

func (s StrategyShift) String() string {
	switch s {
	case ShiftConservative:
		return "CONSERVATIVE"
	case ShiftAggressive:
		return "AGGRESSIVE"
	case ShiftDamageControl:
		return "DAMAGE_CONTROL"
	default:
		return "NONE"
	}
}

// SuitResult tallies what happened whenever a suit was led.
type SuitResult struct {
	Led        int
	Won        int
	Lost       int
	GotTrumped int
	PointsLost int
}

// TrickReview summarises the tricks played so far in the current
// round, per spec.md §4.4.
type TrickReview struct {
	OurTricks          int
	TheirTricks        int
	Momentum           Momentum
	PointsWonByUs      int
	PointsWonByThem    int
	SuitResults        map[baloot.Suit]SuitResult
	StrategyShift      StrategyShift
	PartnerContribution float64
	OpponentCooperation float64
}

// Review builds the TrickReview from the observation's completed
// tricks; match scores are not consulted.
func Review(obs baloot.Observation) TrickReview {
	rv := TrickReview{SuitResults: make(map[baloot.Suit]SuitResult)}

	partner := obs.MyPosition.Partner()
	partnerWins, partnerCardPoints := 0, 0
	oppContributions := 0

	for _, t := range obs.TrickHistory {
		weWon := baloot.IsPartner(t.Winner, obs.MyPosition)
		points := t.PointsWon(obs.Mode, obs.Trump)

		if weWon {
			rv.OurTricks++
			rv.PointsWonByUs += points
		} else {
			rv.TheirTricks++
			rv.PointsWonByThem += points
		}
		if t.Winner == partner {
			partnerWins++
			partnerCardPoints += points
		}
		if !weWon && len(t.Cards) > 0 {
			leader := t.Cards[0].Seat
			if baloot.IsPartner(leader, obs.MyPosition) && leader != obs.MyPosition {
				oppContributions++ // partner led and still lost it: no credit
			}
		}

		leadSuit := t.Cards[0].Card.EffectiveSuit(obs.Mode, obs.Trump)
		res := rv.SuitResults[leadSuit]
		res.Led++
		if weWon {
			res.Won++
		} else {
			res.Lost++
			res.PointsLost += points
		}
		for _, tc := range t.Cards {
			if tc.Card.EffectiveSuit(obs.Mode, obs.Trump) != leadSuit {
				res.GotTrumped++
				break
			}
		}
		rv.SuitResults[leadSuit] = res
	}

	switch {
	case len(obs.TrickHistory) == 0:
		rv.Momentum = MomentumTied
	case rv.OurTricks == 0 && rv.TheirTricks >= 3:
		rv.Momentum = MomentumCollapsing
	case rv.OurTricks > rv.TheirTricks:
		rv.Momentum = MomentumWinning
	case rv.OurTricks < rv.TheirTricks:
		rv.Momentum = MomentumLosing
	default:
		rv.Momentum = MomentumTied
	}

	switch rv.Momentum {
	case MomentumCollapsing:
		rv.StrategyShift = ShiftDamageControl
	case MomentumLosing:
		rv.StrategyShift = ShiftAggressive
	case MomentumWinning:
		rv.StrategyShift = ShiftConservative
	default:
		rv.StrategyShift = ShiftNone
	}

	if len(obs.TrickHistory) > 0 {
		rv.PartnerContribution = float64(partnerWins) / float64(len(obs.TrickHistory))
		if rv.OurTricks > 0 && partnerCardPoints > 0 {
			// partner's tricks carrying above-average points add 0.1 to
			// contribution credit (capped at 1).
			avg := float64(rv.PointsWonByUs) / float64(rv.OurTricks)
			if float64(partnerCardPoints)/float64(max1(partnerWins, 1)) > avg {
				rv.PartnerContribution += 0.1
				if rv.PartnerContribution > 1 {
					rv.PartnerContribution = 1
				}
			}
		}
		if rv.TheirTricks > 0 {
			rv.OpponentCooperation = 1 - float64(oppContributions)/float64(rv.TheirTricks)
		}
	}

	return rv
}

func max1(a, b int) int {
	if a > b {
		return a
	}
	return b
}
