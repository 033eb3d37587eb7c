// balootctl is the operator/debug CLI around the decision core: ask
// it for a single bid or play decision, record and inspect replay
// bundles, or run the scenario/matchup harnesses that back up
// spec.md §8's testable properties. It never hosts a game itself —
// that, and everything about presentation, stays the caller's job
// per spec.md §1.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "balootctl",
		Usage:   "inspect and exercise the Baloot decision core",
		Version: "0.1.0",
		Commands: []*cli.Command{
			decideBidCommand(),
			decidePlayCommand(),
			replayCommand(),
			simulateCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
