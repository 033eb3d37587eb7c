package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/brain"
	"github.com/tazjel/baloot-ai/internal/obslog"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

var commonFlags = []cli.Flag{
	&cli.StringFlag{Name: "hand", Required: true, Usage: "comma-separated hand, e.g. AS1,10S1,KS2"},
	&cli.StringFlag{Name: "mode", Value: "SUN", Usage: "SUN or HOKUM"},
	&cli.StringFlag{Name: "trump", Value: "S1", Usage: "trump suit (HOKUM only)"},
	&cli.StringFlag{Name: "difficulty", Value: "hard", Usage: "easy, medium, hard, expert"},
	&cli.StringFlag{Name: "personality", Value: "balanced", Usage: "balanced, aggressive, conservative, tricky"},
	&cli.Int64Flag{Name: "seed", Value: 1, Usage: "decision seed"},
	&cli.BoolFlag{Name: "verbose", Usage: "trace every cascade module to stderr"},
}

func decideBidCommand() *cli.Command {
	return &cli.Command{
		Name:  "decide-bid",
		Usage: "run the bid optimizer over a hand and print the decision as JSON",
		Flags: append(append([]cli.Flag{}, commonFlags...),
			&cli.IntFlag{Name: "round-points-us", Value: 0},
			&cli.IntFlag{Name: "round-points-them", Value: 0},
		),
		Action: func(c *cli.Context) error {
			hand, err := parseHand(c.String("hand"))
			if err != nil {
				return err
			}
			mode, err := parseMode(c.String("mode"))
			if err != nil {
				return err
			}
			trump, err := parseSuit(c.String("trump"))
			if err != nil {
				return err
			}
			difficulty, err := parseDifficulty(c.String("difficulty"))
			if err != nil {
				return err
			}
			personality, err := parsePersonality(c.String("personality"))
			if err != nil {
				return err
			}

			obs := baloot.Observation{
				Phase:       baloot.PhaseBidding,
				MyPosition:  baloot.P0,
				MyHand:      hand,
				Mode:        mode,
				Trump:       trump,
				Difficulty:  difficulty,
				Personality: personality,
				Scores: baloot.TeamScores{
					RoundPointsUs:   c.Int("round-points-us"),
					RoundPointsThem: c.Int("round-points-them"),
				},
				Seed: c.Int64("seed"),
			}

			log := obslog.Nop()
			if c.Bool("verbose") {
				log = obslog.New(zerolog.DebugLevel)
			}
			decision := brain.DecideBidTraced(obs, log)
			return printJSON(decision)
		},
	}
}

// decidePlayCommand only ever asks "what would I lead with this hand
// at this point in the round" — TableCards stays empty, so the
// follow-suit half of the cascade never triggers. Inspecting a
// mid-trick follow decision needs the full Observation, which is what
// replay/simulate exist for; this command is the quick single-shot
// debugging surface spec.md §9 calls for.
func decidePlayCommand() *cli.Command {
	return &cli.Command{
		Name:  "decide-play",
		Usage: "run the play cascade over a hand (as the lead) and print the decision as JSON",
		Flags: append(append([]cli.Flag{}, commonFlags...),
			&cli.IntFlag{Name: "tricks-played", Value: 0},
			&cli.BoolFlag{Name: "we-are-buyers"},
		),
		Action: func(c *cli.Context) error {
			hand, err := parseHand(c.String("hand"))
			if err != nil {
				return err
			}
			mode, err := parseMode(c.String("mode"))
			if err != nil {
				return err
			}
			trump, err := parseSuit(c.String("trump"))
			if err != nil {
				return err
			}
			difficulty, err := parseDifficulty(c.String("difficulty"))
			if err != nil {
				return err
			}
			personality, err := parsePersonality(c.String("personality"))
			if err != nil {
				return err
			}

			obs := baloot.Observation{
				Phase:               baloot.PhasePlaying,
				MyPosition:          baloot.P0,
				MyHand:              hand,
				Mode:                mode,
				Trump:               trump,
				WeAreBuyers:         c.Bool("we-are-buyers"),
				TricksPlayed:        c.Int("tricks-played"),
				Difficulty:          difficulty,
				Personality:         personality,
				PlayingLegalIndices: allIndices(len(hand)),
				Seed:                c.Int64("seed"),
			}

			trk := tracker.Begin(hand, obs.MyPosition, nil, mode, trump, baloot.Card{}, difficulty, obs.Seed)

			log := obslog.Nop()
			if c.Bool("verbose") {
				log = obslog.New(zerolog.DebugLevel)
			}
			decision := brain.DecidePlayTraced(obs, trk, nil, log)
			if err := brain.ValidateDecision(decision, obs); err != nil {
				return err
			}
			return printJSON(decision)
		},
	}
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
