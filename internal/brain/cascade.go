package brain

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/filters"
	"github.com/tazjel/baloot-ai/internal/inference"
	"github.com/tazjel/baloot-ai/internal/macro"
	"github.com/tazjel/baloot-ai/internal/obslog"
	"github.com/tazjel/baloot-ai/internal/tactics"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// candidate is the common currency every decider in the cascade
// produces: a card to play, how sure it is, and a human-readable
// label for logging/replay.
type candidate struct {
	CardIndex  int
	Card       baloot.Card
	Confidence float64
	Label      string
	Fired      bool
}

// decider is the shared interface of spec.md §4.7's ordered module
// list: given the precomputed context, either produce a confident
// candidate or decline (Fired == false).
type decider func(ctx *Context) candidate

// cascade is the fixed priority order from spec.md §4.7. Every entry
// names the module and its activation condition in the doc comment
// next to its decider function below.
var cascade = []struct {
	Name string
	Run  decider
}{
	{"endgame_solver", decideEndgame},
	{"kaboot_pursuit", decideKaboot},
	{"mid_game_planner", decideMidGame},
	{"point_density", decidePointDensity},
	{"trump_manager", decideTrumpManager},
	{"cooperative_play", decideCooperative},
	{"partner_signal", decidePartnerSignal},
	{"default_tactical", decideDefaultTactical},
}

// DecidePlay walks the cascade in priority order and stops at the
// first module producing confidence >= 0.5, boosting by 0.1 (capped
// at 1.0) whenever two consecutively consulted modules agree on the
// same card — spec.md §4.7's corroboration rule. The decision core
// itself never logs (spec.md §5); callers that want cascade tracing
// should use DecidePlayTraced instead.
func DecidePlay(obs baloot.Observation, trk *tracker.Tracker, knownHands map[baloot.Position][]baloot.Card) baloot.PlayDecision {
	return decidePlay(obs, trk, knownHands, obslog.Nop())
}

// DecidePlayTraced is DecidePlay plus debug-level module_consulted
// events on the given logger, for the CLI/replay/scenario harness
// layers (spec.md §9's "Logging" ambient stack) — never used from
// inside the pure decision path itself.
func DecidePlayTraced(obs baloot.Observation, trk *tracker.Tracker, knownHands map[baloot.Position][]baloot.Card, log zerolog.Logger) baloot.PlayDecision {
	return decidePlay(obs, trk, knownHands, log)
}

func decidePlay(obs baloot.Observation, trk *tracker.Tracker, knownHands map[baloot.Position][]baloot.Card, log zerolog.Logger) baloot.PlayDecision {
	ctx := BuildContext(obs, trk, knownHands)

	var consulted []string
	var previous candidate
	havePrevious := false

	for _, step := range cascade {
		result := step.Run(ctx)
		consulted = append(consulted, step.Name)
		obslog.ModuleConsulted(log, step.Name, result.Fired, result.Confidence, result.Label)
		if step.Name == "endgame_solver" && !result.Fired {
			obslog.EndgameOverflow(log, len(ctx.Hand))
		}
		if !result.Fired {
			continue
		}

		if havePrevious && previous.Fired && previous.Card.Equal(result.Card) {
			result.Confidence += 0.1
			if result.Confidence > 1 {
				result.Confidence = 1
			}
		}

		if result.Confidence >= 0.5 {
			decision := baloot.PlayDecision{
				CardIndex:        result.CardIndex,
				StrategyLabel:    result.Label,
				Confidence:       result.Confidence,
				Reasoning:        fmt.Sprintf("%s selected %s (confidence %.2f) after consulting %v", step.Name, result.Card, result.Confidence, consulted),
				ModulesConsulted: append([]string(nil), consulted...),
			}
			return enforceLegality(finalizePlay(decision, obs), obs)
		}

		previous = result
		havePrevious = true
	}

	// Nothing fired confidently; default tactical always fires, so this
	// is unreachable in practice but keeps the function total.
	fallback := decideDefaultTactical(ctx)
	decision := baloot.PlayDecision{
		CardIndex:        fallback.CardIndex,
		StrategyLabel:    fallback.Label,
		Confidence:       fallback.Confidence,
		Reasoning:        fmt.Sprintf("default_tactical selected %s after no earlier module reached confidence 0.5", fallback.Card),
		ModulesConsulted: append(consulted, "default_tactical"),
	}
	return enforceLegality(finalizePlay(decision, obs), obs)
}

// enforceLegality is the cascade's ground-truth backstop: every decider
// derives legality from its own suit/trump bookkeeping rather than
// consulting obs.PlayingLegalIndices directly, so a single bug in one
// decider's candidate set (as followoptimizer.go's forced-trump case
// used to be) must not be able to hand a host an out-of-contract index.
// When the contract is populated and the chosen index isn't in it, this
// substitutes the cheapest legal card rather than trusting the cascade's
// own arithmetic — spec.md §6/P1 treat legal_actions as ground truth.
func enforceLegality(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	if len(obs.PlayingLegalIndices) == 0 {
		return decision
	}
	for _, idx := range obs.PlayingLegalIndices {
		if idx == decision.CardIndex {
			return decision
		}
	}
	best := obs.PlayingLegalIndices[0]
	for _, idx := range obs.PlayingLegalIndices[1:] {
		if idx < 0 || idx >= len(obs.MyHand) || best < 0 || best >= len(obs.MyHand) {
			continue
		}
		if obs.MyHand[idx].Points(obs.Mode, obs.Trump) < obs.MyHand[best].Points(obs.Mode, obs.Trump) {
			best = idx
		}
	}
	decision.CardIndex = best
	decision.Confidence = 0
	decision.StrategyLabel = "LEGALITY_CLAMP"
	decision.Reasoning = "cascade candidate fell outside PlayingLegalIndices; clamped to the cheapest legal card: " + decision.Reasoning
	return decision
}

// finalizePlay applies the personality and difficulty post-processors
// of spec.md §4.8 as the last step before a Decision leaves the core.
// Neither filter ever reaches back into the cascade's internals — each
// operates solely on the Decision and the Observation already in hand.
func finalizePlay(decision baloot.PlayDecision, obs baloot.Observation) baloot.PlayDecision {
	decision = filters.ApplyPersonalityPlay(decision, obs)
	decision = filters.ApplyDifficultyPlay(decision, obs)
	return decision
}

// 1. Endgame solver: fires once every hand in play has shrunk to the
// solver's branching cap and a full determinization is available.
// spec.md §4.8 reserves the exhaustive search for EXPERT difficulty
// ("optimal + enables endgame solver and squeeze detection").
func decideEndgame(ctx *Context) candidate {
	if len(ctx.Hand) == 0 || ctx.Obs.Difficulty != baloot.Expert {
		return candidate{}
	}
	res := macro.Solve(ctx.Hand, ctx.Obs, ctx.Tracker, ctx.KnownHands)
	if res.Overflowed {
		return candidate{}
	}
	return candidate{
		CardIndex:  res.CardIndex,
		Card:       res.Card,
		Confidence: 0.95,
		Label:      "ENDGAME_SOLVER",
		Fired:      true,
	}
}

// 2. Kaboot pursuit: fires while a clean sweep is still alive and we
// bought the contract.
func decideKaboot(ctx *Context) candidate {
	if !ctx.Obs.WeAreBuyers || ctx.Obs.TricksWonByUs() != ctx.Obs.TricksPlayed {
		return candidate{}
	}
	allowed, earliest := filters.KabootPosture(ctx.Obs.Difficulty)
	if !allowed || ctx.Obs.TricksPlayed < earliest {
		return candidate{}
	}
	plan := macro.EvaluateKaboot(ctx.Hand, ctx.Obs, ctx.Tracker, ctx.Partner.LikelyVoidSuits)
	if plan.Status != macro.KabootPursuing || plan.Lead == macro.KabootNoLead {
		return candidate{}
	}
	card, idx := leadCardFor(ctx, plan.Lead)
	if idx < 0 {
		return candidate{}
	}
	return candidate{CardIndex: idx, Card: card, Confidence: 0.85, Label: "KABOOT_" + plan.Lead.String(), Fired: true}
}

// leadCardFor translates a kaboot lead plan into a concrete card: the
// tracker already knows which of our cards are masters, so
// MASTER_FIRST and TRUMP_DRAW resolve directly; LONG_SUIT falls back
// to the general-purpose lead selector.
func leadCardFor(ctx *Context, plan macro.KabootLeadPlan) (baloot.Card, int) {
	switch plan {
	case macro.KabootMasterFirst:
		for _, c := range ctx.Hand {
			if ctx.Tracker.IsMaster(c) {
				return c, indexOfCard(ctx.Hand, c)
			}
		}
	case macro.KabootTrumpDraw:
		jack := baloot.NewCard(baloot.Jack, ctx.Obs.Trump)
		if baloot.ContainsCard(ctx.Hand, jack) {
			return jack, indexOfCard(ctx.Hand, jack)
		}
	}
	choice := tactics.SelectLead(ctx.Hand, ctx.Obs, ctx.Tracker, ctx.TrumpPlan, ctx.Defending, ctx.Defense, ctx.Partner, nil, ctx.Obs.TricksPlayed, false)
	return choice.Card, indexOfCard(ctx.Hand, choice.Card)
}

// 3. Mid-game planner: fires with 4-6 tricks remaining in the round,
// while leading. Its five plans (cash-and-exit, strip-then-endplay,
// trump-force, count-and-duck, desperation) all choose what to lead
// next, not how to follow a suit already in play, so it has nothing
// to say once a trick is underway and we're merely following.
func decideMidGame(ctx *Context) candidate {
	if !ctx.Obs.IsLeading() {
		return candidate{}
	}
	tricksRemaining := 8 - ctx.Obs.TricksPlayed
	if tricksRemaining < 4 || tricksRemaining > 6 {
		return candidate{}
	}
	losing := ctx.Obs.TricksWonByThem() > ctx.Obs.TricksWonByUs()
	plan := macro.PlanMidGame(ctx.Hand, ctx.Obs, ctx.Tracker, losing)
	if plan.Plan == macro.PlanNone || plan.CardIndex >= len(ctx.Hand) {
		return candidate{}
	}
	return candidate{
		CardIndex:  plan.CardIndex,
		Card:       ctx.Hand[plan.CardIndex],
		Confidence: plan.Confidence,
		Label:      plan.Plan.String(),
		Fired:      plan.Confidence >= 0.5,
	}
}

// 4. Point density: fires once at least one card is already on the
// table this trick. Runs the same base-choice-plus-seat-refinement
// pipeline default_tactical falls back on, rather than a bare follow
// selection, so a seat-4 full-information finesse still applies when
// this module is the one that ends up deciding the card.
func decidePointDensity(ctx *Context) candidate {
	if ctx.Obs.IsLeading() {
		return candidate{}
	}
	if !ctx.Density.WorthFighting {
		return candidate{}
	}
	base := tactics.SelectFollow(ctx.Hand, ctx.Obs, ctx.Partner.LikelyVoidSuits)
	refined, refinement := tactics.RefineForSeat(ctx.Hand, ctx.Obs, base, ctx.Tracker)
	label := base.Label.String()
	if refinement != tactics.SeatNone {
		label = refinement.String()
	}
	idx := indexOfCard(ctx.Hand, refined)
	conf := 0.5
	if ctx.Density.Density == tactics.DensityCritical {
		conf = 0.65
	}
	return candidate{CardIndex: idx, Card: refined, Confidence: conf, Label: "POINT_DENSITY_" + label, Fired: true}
}

// 5. Trump manager: fires in HOKUM rounds while we hold the lead.
func decideTrumpManager(ctx *Context) candidate {
	if ctx.Obs.Mode != baloot.HOKUM || !ctx.Obs.IsLeading() {
		return candidate{}
	}
	if ctx.TrumpPlan.Action != tactics.TrumpDraw && ctx.TrumpPlan.Action != tactics.TrumpCrossRuff {
		return candidate{}
	}
	if ctx.TrumpPlan.Action == tactics.TrumpDraw && ctx.TrumpPlan.LeadTrump {
		jack := baloot.NewCard(baloot.Jack, ctx.Obs.Trump)
		if baloot.ContainsCard(ctx.Hand, jack) {
			return candidate{CardIndex: indexOfCard(ctx.Hand, jack), Card: jack, Confidence: 0.6, Label: "TRUMP_DRAW", Fired: true}
		}
	}
	if ctx.TrumpPlan.Action == tactics.TrumpCrossRuff && len(ctx.TrumpPlan.RuffTargetSuits) > 0 {
		for _, c := range ctx.Hand {
			if c.Suit == ctx.Obs.Trump {
				return candidate{CardIndex: indexOfCard(ctx.Hand, c), Card: c, Confidence: 0.55, Label: "TRUMP_CROSS_RUFF", Fired: true}
			}
		}
	}
	return candidate{}
}

// 6. Defense / cooperative play: on lead, fires when we're defending
// (not the buyers) or when partner read confidence is strong enough to
// trust a cooperative override; in the follow seat, only when defending.
func decideCooperative(ctx *Context) candidate {
	if ctx.Obs.IsLeading() {
		if !ctx.Defending && ctx.Partner.Confidence < 0.25 {
			return candidate{}
		}
		if card, override, ok := tactics.CooperativeLead(ctx.Hand, ctx.Obs, ctx.Partner, ctx.TrumpPlan); ok {
			idx := indexOfCard(ctx.Hand, card)
			return candidate{CardIndex: idx, Card: card, Confidence: 0.55, Label: "COOP_" + override.String(), Fired: true}
		}
		return candidate{}
	}
	if !ctx.Defending {
		return candidate{}
	}
	if card, override, ok := tactics.CooperativeFollow(ctx.Hand, ctx.Obs, ctx.Partner); ok {
		idx := indexOfCard(ctx.Hand, card)
		return candidate{CardIndex: idx, Card: card, Confidence: 0.55, Label: "COOP_" + override.String(), Fired: true}
	}
	return candidate{}
}

// 7. Partner signal: fires whenever the partner read carries enough
// confidence to steer a lead even outside an explicit cooperative
// override above.
func decidePartnerSignal(ctx *Context) candidate {
	if ctx.Partner.Confidence < 0.4 || !ctx.Obs.IsLeading() {
		return candidate{}
	}
	if len(ctx.Partner.LikelyStrongSuits) == 0 {
		return candidate{}
	}
	for _, s := range ctx.Partner.LikelyStrongSuits {
		for _, c := range ctx.Hand {
			if c.Suit == s && !c.IsTrump(ctx.Obs.Mode, ctx.Obs.Trump) {
				return candidate{CardIndex: indexOfCard(ctx.Hand, c), Card: c, Confidence: 0.5, Label: "PARTNER_SIGNAL_FEED", Fired: true}
			}
		}
	}
	return candidate{}
}

// 8. Default tactical: the lead selector / follow optimizer plus seat
// refinement, always fires last.
func decideDefaultTactical(ctx *Context) candidate {
	if ctx.Obs.IsLeading() {
		choice := tactics.SelectLead(ctx.Hand, ctx.Obs, ctx.Tracker, ctx.TrumpPlan, ctx.Defending, ctx.Defense, ctx.Partner, nil, ctx.Obs.TricksPlayed, ctx.Review.Momentum == inference.MomentumCollapsing)
		return candidate{CardIndex: indexOfCard(ctx.Hand, choice.Card), Card: choice.Card, Confidence: 0.5, Label: choice.Label.String(), Fired: true}
	}
	base := tactics.SelectFollow(ctx.Hand, ctx.Obs, ctx.Partner.LikelyVoidSuits)
	refined, refinement := tactics.RefineForSeat(ctx.Hand, ctx.Obs, base, ctx.Tracker)
	label := base.Label.String()
	if refinement != tactics.SeatNone {
		label = refinement.String()
	}
	return candidate{CardIndex: indexOfCard(ctx.Hand, refined), Card: refined, Confidence: 0.5, Label: label, Fired: true}
}
