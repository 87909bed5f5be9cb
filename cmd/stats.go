package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/report"
)

const rule = "─"

func newStatsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			recent, _ := cmd.Flags().GetInt("recent")

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			printStats(cmd, s.ctrl.Progress(), recent)
			return nil
		},
	}
	c.Flags().IntP("recent", "n", report.DefaultRecent, "Number of recent attempts to show")
	return c
}

func printStats(cmd *cobra.Command, p *progress.Progress, recent int) {
	out := cmd.OutOrStdout()
	sum := report.Summarize(p)

	name := p.StudentName
	if name == "" {
		name = "(no name yet)"
	}
	fmt.Fprintf(out, "Student:       %s (%s)\n", name, p.Grade)
	fmt.Fprintf(out, "Level:         %d (%d points to Level %d)\n", sum.Level, sum.ToNextLevel, sum.Level+1)
	fmt.Fprintf(out, "Points:        %d\n", sum.Points)
	fmt.Fprintf(out, "Daily streak:  %d\n", sum.Streak)
	fmt.Fprintf(out, "Solved:        %d across %d topics\n", sum.ProblemsSolved, sum.TopicsPracticed)
	fmt.Fprintf(out, "Achievements:  %d\n", sum.Achievements)

	if days := report.PointsByDay(p); len(days) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Points by Day")
		fmt.Fprintln(out, strings.Repeat(rule, 40))
		for _, d := range days {
			fmt.Fprintf(out, "%-10s  %+6d  %8d total\n", d.Date, d.Gained, d.Total)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Topics")
	fmt.Fprintln(out, strings.Repeat(rule, 40))
	fmt.Fprintf(out, "%-14s  %6s  %6s  %8s\n", "Topic", "Solved", "Share", "Accuracy")
	acc := report.TopicAccuracy(p)
	for i, t := range report.TopicDistribution(p) {
		rate := "-"
		if acc[i].Attempted > 0 {
			rate = fmt.Sprintf("%.0f%%", acc[i].Rate()*100)
		}
		fmt.Fprintf(out, "%-14s  %6d  %5.0f%%  %8s\n", t.Topic, t.Count, t.Share*100, rate)
	}

	if entries := report.RecentActivity(p, recent); len(entries) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent Activity")
		fmt.Fprintln(out, strings.Repeat(rule, 40))
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %-14s  %-14s  %s\n", e.Time, e.Topic, e.Kind, e.Outcome)
		}
	}
}
