// Package obslog wraps zerolog for the debug-level event tracing
// spec.md §9 calls for around the decision core: module_consulted,
// bid_decision, endgame_overflow. Grounded on
// freeeve-polite-betrayal/api's cmd/bot and cmd/botmatch, which both
// configure a zerolog.ConsoleWriter logger and gate verbosity with
// zerolog.SetGlobalLevel. The core itself never logs (spec.md §5: pure
// function, no I/O); only cmd/balootctl's decide-bid/decide-play, via
// brain.DecideBidTraced/DecidePlayTraced, hold a non-nop Logger.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger at the given level, in the
// teacher-pack's idiom (freeeve-polite-betrayal/api/cmd/bot/main.go).
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// Nop is the default, silent logger that brain.DecidePlay/DecideBid
// pass to the cascade; hosts opt into tracing via the Traced variants.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ModuleConsulted logs one cascade step's verdict.
func ModuleConsulted(log zerolog.Logger, module string, fired bool, confidence float64, label string) {
	log.Debug().
		Str("module", module).
		Bool("fired", fired).
		Float64("confidence", confidence).
		Str("label", label).
		Msg("module_consulted")
}

// BidDecision logs a completed decide_bid call.
func BidDecision(log zerolog.Logger, action string, confidence float64, reasoning string) {
	log.Debug().
		Str("action", action).
		Float64("confidence", confidence).
		Str("reasoning", reasoning).
		Msg("bid_decision")
}

// EndgameOverflow logs when the endgame solver declined to run and the
// cascade fell through to the mid-game planner.
func EndgameOverflow(log zerolog.Logger, handSize int) {
	log.Debug().
		Int("hand_size", handSize).
		Msg("endgame_overflow")
}
