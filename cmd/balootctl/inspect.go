package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/tazjel/baloot-ai/internal/replay"
)

// inspectModel renders one decoded replay.Record as a bubbletea
// program — the only place this CLI uses a TUI, scoped to the
// debuggability surface spec.md §9 calls out rather than to game
// presentation.
type inspectModel struct {
	rec replay.Record
}

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

func (m inspectModel) Init() tea.Cmd { return nil }

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	hand := make([]string, len(m.rec.Hand))
	for i, c := range m.rec.Hand {
		hand[i] = c.String()
	}
	modules := strings.Join(m.rec.ModulesConsulted, " -> ")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("record"), m.rec.ID)
	fmt.Fprintf(&b, "%s %s (seat %s)\n", labelStyle.Render("phase"), m.rec.Phase, m.rec.MyPosition)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("hand"), strings.Join(hand, " "))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("label"), m.rec.StrategyLabel)
	fmt.Fprintf(&b, "%s %.2f\n", labelStyle.Render("confidence"), m.rec.Confidence)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("modules"), modules)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("reasoning"), m.rec.Reasoning)
	b.WriteString("\n(press q to quit)")

	return boxStyle.Render(b.String())
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "open a replay bundle in an interactive viewer",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: balootctl inspect <file>")
			}
			buf, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			rec, err := replay.Decode(buf)
			if err != nil {
				return err
			}
			p := tea.NewProgram(inspectModel{rec: rec})
			_, err = p.Run()
			return err
		},
	}
}
