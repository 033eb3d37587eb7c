package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/brain"
	"github.com/tazjel/baloot-ai/internal/replay"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// replayCommand wraps internal/replay's flatbuffer codec: "record"
// runs decide-play and writes the (Observation, Decision) pair to a
// .balootreplay file, "show" decodes one back to JSON on stdout.
func replayCommand() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "record or inspect a decision replay bundle",
		Subcommands: []*cli.Command{
			{
				Name:  "record",
				Usage: "decide-play plus encode the (hand, decision) pair to a file",
				Flags: append(append([]cli.Flag{}, commonFlags...),
					&cli.StringFlag{Name: "out", Required: true},
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
						Difficulty:          difficulty,
						Personality:         personality,
						PlayingLegalIndices: allIndices(len(hand)),
						Seed:                c.Int64("seed"),
					}
					trk := tracker.Begin(hand, obs.MyPosition, nil, mode, trump, baloot.Card{}, difficulty, obs.Seed)
					decision := brain.DecidePlay(obs, trk, nil)

					rec := replay.NewRecord(obs, decision)
					if err := os.WriteFile(c.String("out"), replay.Encode(rec), 0o644); err != nil {
						return err
					}
					fmt.Printf("wrote %s (record %s)\n", c.String("out"), rec.ID)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "decode a replay bundle and print it as JSON",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: balootctl replay show <file>")
					}
					buf, err := os.ReadFile(c.Args().First())
					if err != nil {
						return err
					}
					rec, err := replay.Decode(buf)
					if err != nil {
						return err
					}
					return printJSON(rec)
				},
			},
		},
	}
}
