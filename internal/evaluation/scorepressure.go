package evaluation

import "github.com/tazjel/baloot-ai/internal/baloot"

// MatchPhase labels where the match stands by total points, per
// spec.md §4.2.
type MatchPhase int

const (
	PhaseEarly MatchPhase = iota
	PhaseMid
	PhaseLate
	PhaseMatchPoint
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseMid:
		return "MID"
	case PhaseLate:
		return "LATE"
	case PhaseMatchPoint:
		return "MATCH_POINT"
	default:
		return "EARLY"
	}
}

// Situation labels relative standing.
type Situation int

const (
	SituationNeutral Situation = iota
	SituationLeading
	SituationTrailing
	SituationDesperate
)

func (s Situation) String() string {
	switch s {
	case SituationLeading:
		return "LEADING"
	case SituationTrailing:
		return "TRAILING"
	case SituationDesperate:
		return "DESPERATE"
	default:
		return "NEUTRAL"
	}
}

func classify(us, them int) (MatchPhase, Situation) {
	var phase MatchPhase
	switch {
	case us >= 145 || them >= 145:
		phase = PhaseMatchPoint
	case us >= 100 || them >= 100:
		phase = PhaseLate
	case us >= 50 || them >= 50:
		phase = PhaseMid
	default:
		phase = PhaseEarly
	}

	diff := us - them
	var situation Situation
	switch {
	case diff >= 15:
		situation = SituationLeading
	case diff <= -25:
		situation = SituationDesperate
	case diff <= -15:
		situation = SituationTrailing
	default:
		situation = SituationNeutral
	}
	return phase, situation
}

// BidPressure is the score-pressure output consumed by the bid
// optimizer.
type BidPressure struct {
	Phase         MatchPhase
	Situation     Situation
	ThresholdDelta float64 // in [-0.25, +0.25]
	DoublingBias  float64
}

// EvaluateBidPressure converts match scores into a bidding threshold
// delta and doubling bias (spec.md §4.2).
func EvaluateBidPressure(scores baloot.TeamScores) BidPressure {
	phase, situation := classify(scores.MatchPointsUs, scores.MatchPointsThem)

	delta := 0.0
	bias := 0.0
	switch situation {
	case SituationTrailing:
		delta = -0.10
		bias = 0.05
	case SituationDesperate:
		delta = -0.25
		bias = 0.15
	case SituationLeading:
		delta = 0.10
		bias = -0.05
	}
	if phase == PhaseMatchPoint {
		if situation == SituationTrailing || situation == SituationDesperate {
			delta -= 0.10
			if delta < -0.25 {
				delta = -0.25
			}
			bias += 0.10
		} else if situation == SituationLeading {
			delta += 0.05
			if delta > 0.25 {
				delta = 0.25
			}
			bias -= 0.05
		}
	}
	return BidPressure{Phase: phase, Situation: situation, ThresholdDelta: delta, DoublingBias: bias}
}

// PlayPressure is the score-pressure output consumed by play-phase
// tactics.
type PlayPressure struct {
	Phase          MatchPhase
	Situation      Situation
	Aggression     float64 // multiplicative modifier, 1.0 = neutral
	RiskTolerance  float64 // 0..1
}

// EvaluatePlayPressure mirrors EvaluateBidPressure for the play phase.
func EvaluatePlayPressure(scores baloot.TeamScores) PlayPressure {
	phase, situation := classify(scores.MatchPointsUs, scores.MatchPointsThem)

	aggression := 1.0
	risk := 0.5
	switch situation {
	case SituationTrailing:
		aggression = 1.15
		risk = 0.65
	case SituationDesperate:
		aggression = 1.35
		risk = 0.85
	case SituationLeading:
		aggression = 0.85
		risk = 0.35
	}
	if phase == PhaseMatchPoint && (situation == SituationTrailing || situation == SituationDesperate) {
		aggression += 0.10
		risk += 0.10
		if risk > 1 {
			risk = 1
		}
	}
	return PlayPressure{Phase: phase, Situation: situation, Aggression: aggression, RiskTolerance: risk}
}
