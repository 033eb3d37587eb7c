// Package matchup gives spec.md §8's two cross-cutting testable
// properties — P9 (stronger difficulty wins more often) and P10
// (more aggressive personalities bid more often) — something concrete
// to run against, by driving brain.DecideBid/DecidePlay over many
// deterministically seeded deals instead of asserting the properties
// in prose. Grounded on the teacher's own round/trick bookkeeping
// (internal/engine/round.go's winner-leads-next convention) and on
// internal/macro/endgame.go's legalPlays simplification of Baloot's
// follow-suit rule, reused here rather than re-derived.
package matchup

import "github.com/tazjel/baloot-ai/internal/baloot"

// PlayerConfig names one seat's skill/temperament pairing, the two
// axes spec.md §4.8 applies as post-processing filters over the
// cascade's raw decision.
type PlayerConfig struct {
	Difficulty  baloot.Difficulty
	Personality baloot.Personality
}
