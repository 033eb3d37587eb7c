package brain

import (
	"github.com/rs/zerolog"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/bidding"
	"github.com/tazjel/baloot-ai/internal/filters"
	"github.com/tazjel/baloot-ai/internal/obslog"
)

// DecideBid is the bidding-phase counterpart of DecidePlay. Unlike
// play, which walks a priority cascade of narrow tactical modules,
// bidding is a single optimizer pass (spec.md §4.3) — there is only
// one decision point per turn, not a trick's worth of sub-questions.
// The personality filter (spec.md §4.8) is applied last, exactly as
// DecidePlay applies its own post-processors.
func DecideBid(obs baloot.Observation) baloot.BidDecision {
	return decideBid(obs, obslog.Nop())
}

// DecideBidTraced is DecideBid plus a debug-level bid_decision event,
// for the same CLI/replay/scenario callers DecidePlayTraced serves.
func DecideBidTraced(obs baloot.Observation, log zerolog.Logger) baloot.BidDecision {
	return decideBid(obs, log)
}

func decideBid(obs baloot.Observation, log zerolog.Logger) baloot.BidDecision {
	decision := bidding.Optimize(obs)
	decision = filters.ApplyPersonalityBid(decision, obs.Personality)
	obslog.BidDecision(log, decision.Action.Kind.String(), decision.Confidence, decision.Reasoning)
	return decision
}
