package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/report"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements and the milestone board",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			printAchievements(cmd, s.ctrl.Progress())
			return nil
		},
	}
}

func printAchievements(cmd *cobra.Command, p *progress.Progress) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Achievements (%d of %d)\n", len(p.Achievements), len(gamification.Definitions()))
	fmt.Fprintln(out, strings.Repeat(rule, 40))
	for _, d := range gamification.Definitions() {
		mark := " "
		if p.HasAchievement(string(d.ID)) {
			mark = "✓"
		}
		fmt.Fprintf(out, "[%s] %-16s  %s\n", mark, d.Name, d.Description())
	}

	board := report.Board(p)
	for _, c := range report.Categories() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, c)
		fmt.Fprintln(out, strings.Repeat(rule, 40))
		for _, m := range board {
			if m.Category != c {
				continue
			}
			if m.Earned {
				fmt.Fprintf(out, "[✓] %s\n", m.Name)
			} else {
				fmt.Fprintf(out, "[ ] %s (%d to go)\n", m.Name, m.Remaining)
			}
		}
		if goal := report.NextGoal(p, c); goal != "" {
			fmt.Fprintln(out, goal)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Topic Mastery")
	fmt.Fprintln(out, strings.Repeat(rule, 40))
	for _, t := range report.TopicMastery(p) {
		fmt.Fprintln(out, t.Label())
	}
}
