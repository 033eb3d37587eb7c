// Package brain implements the cascade orchestrator of spec.md §4.7:
// an ordered list of deciders sharing one interface, walked until one
// produces confidence >= 0.5. Grounded on spec.md §9's own guidance
// and on the teacher's top-level AI.DecidePlay/DecideBid dispatch
// shape (internal/ai/rule_based/ai.go) — generalized from "one
// hardcoded strategy object" into an ordered, swappable module list.
package brain

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/inference"
	"github.com/tazjel/baloot-ai/internal/tactics"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// Context bundles everything a decider might need, precomputed once
// per decision so every decider shares the same evidence.
type Context struct {
	Obs     baloot.Observation
	Hand    []baloot.Card
	Tracker *tracker.Tracker

	Partner   inference.PartnerRead
	Opponents [2]inference.OpponentModel
	BidRead   inference.BidRead
	Review    inference.TrickReview

	Defending bool
	Defense   tactics.DefensePlan
	TrumpPlan tactics.TrumpPlan
	Density   tactics.PointDensityReport

	KnownHands map[baloot.Position][]baloot.Card // only non-nil near the endgame
}

// BuildContext runs every inference/tactical precomputation once.
func BuildContext(obs baloot.Observation, trk *tracker.Tracker, knownHands map[baloot.Position][]baloot.Card) *Context {
	ctx := &Context{
		Obs:        obs,
		Hand:       obs.MyHand,
		Tracker:    trk,
		KnownHands: knownHands,
	}

	ctx.Partner = inference.ReadPartner(obs)
	ctx.Opponents = inference.ReadOpponents(obs)
	ctx.BidRead = inference.ReadBid(obs)
	ctx.Review = inference.Review(obs)
	ctx.Defending = !obs.WeAreBuyers
	ctx.Defense = tactics.BuildDefensePlan(ctx.BidRead)

	if obs.Mode == baloot.HOKUM {
		ctx.TrumpPlan = tactics.ManageTrump(ctx.Hand, obs.Trump, trk, ctx.Partner.LikelyVoidSuits)
	}

	partnerWinning := false
	if !obs.IsLeading() {
		_, winner := tablePosWinner(obs)
		partnerWinning = baloot.IsPartner(winner, obs.MyPosition)
	}
	ctx.Density = tactics.EvaluatePointDensity(obs, partnerWinning)

	return ctx
}

func tablePosWinner(obs baloot.Observation) (baloot.Card, baloot.Position) {
	best := obs.TableCards[0].Card
	winner := obs.TableCards[0].Seat
	for _, tc := range obs.TableCards[1:] {
		if tc.Card.Beats(best, obs.Mode, obs.Trump) {
			best = tc.Card
			winner = tc.Seat
		}
	}
	return best, winner
}

func indexOfCard(hand []baloot.Card, c baloot.Card) int {
	for i, h := range hand {
		if h.Equal(c) {
			return i
		}
	}
	return -1
}
