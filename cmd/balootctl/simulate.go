package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/tazjel/baloot-ai/internal/brain"
	"github.com/tazjel/baloot-ai/internal/matchup"
	"github.com/tazjel/baloot-ai/internal/scenario"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	headStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "run the scenario and difficulty/personality matchup harnesses",
		Subcommands: []*cli.Command{
			simulateScenariosCommand(),
			simulateMatchupCommand(),
		},
	}
}

// simulateScenariosCommand runs every internal/scenario.Case against
// the live cascade and reports pass/fail per scenario, the same check
// scenario_test.go makes, surfaced as an operator-facing report.
func simulateScenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "run the six named cascade scenarios and report pass/fail",
		Action: func(c *cli.Context) error {
			fmt.Println(headStyle.Render("scenario"), headStyle.Render("result"))
			failures := 0
			for _, cs := range scenario.All() {
				decision := brain.DecidePlay(cs.Obs, cs.Tracker, cs.KnownHands)
				ok := cs.Matches(decision.StrategyLabel)
				status := passStyle.Render("PASS")
				if !ok {
					status = failStyle.Render("FAIL")
					failures++
				}
				fmt.Printf("%-30s %s  (%s)\n", cs.Name, status, decision.StrategyLabel)
			}
			if failures > 0 {
				return fmt.Errorf("%d scenario(s) failed", failures)
			}
			return nil
		},
	}
}

// simulateMatchupCommand compares two (difficulty, personality)
// configurations over trials seeded rounds, per internal/matchup.
func simulateMatchupCommand() *cli.Command {
	return &cli.Command{
		Name:  "matchup",
		Usage: "compare two difficulty/personality configurations over many seeded rounds",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "difficulty-a", Value: "expert"},
			&cli.StringFlag{Name: "personality-a", Value: "balanced"},
			&cli.StringFlag{Name: "difficulty-b", Value: "easy"},
			&cli.StringFlag{Name: "personality-b", Value: "balanced"},
			&cli.IntFlag{Name: "trials", Value: 100},
			&cli.Int64Flag{Name: "seed", Value: 1},
		},
		Action: func(c *cli.Context) error {
			diffA, err := parseDifficulty(c.String("difficulty-a"))
			if err != nil {
				return err
			}
			persA, err := parsePersonality(c.String("personality-a"))
			if err != nil {
				return err
			}
			diffB, err := parseDifficulty(c.String("difficulty-b"))
			if err != nil {
				return err
			}
			persB, err := parsePersonality(c.String("personality-b"))
			if err != nil {
				return err
			}

			a := matchup.PlayerConfig{Difficulty: diffA, Personality: persA}
			b := matchup.PlayerConfig{Difficulty: diffB, Personality: persB}
			trials := c.Int("trials")
			seed := c.Int64("seed")

			winRate := matchup.MatchWinRate(a, b, trials, seed)
			bidRateA := matchup.BidRate(a, trials, seed)
			bidRateB := matchup.BidRate(b, trials, seed)

			fmt.Printf("A = %s/%s, B = %s/%s, %d rounds (seed %d)\n",
				diffA, persA, diffB, persB, trials, seed)
			fmt.Printf("A win rate:  %.1f%%\n", winRate*100)
			fmt.Printf("A bid rate:  %.1f%%\n", bidRateA*100)
			fmt.Printf("B bid rate:  %.1f%%\n", bidRateB*100)
			return nil
		},
	}
}
