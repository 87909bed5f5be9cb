package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/gamification"
)

func newChallengeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			ch := s.ctrl.TodayChallenge()
			fmt.Fprintf(out, "Today's challenge: %s: %s\n", ch.Topic, ch.Task)
			if s.ctrl.ChallengeStartedToday() {
				fmt.Fprintln(out, "Started ✓")
			} else {
				fmt.Fprintf(out, "Not started yet. Run `mathdash challenge start` for +%d points.\n", gamification.DailyChallengePoints)
			}
			return nil
		},
	}
	c.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start today's challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			res, err := s.ctrl.StartDailyChallenge(cmd.Context())
			if errors.Is(err, gamification.ErrChallengeAlreadyStarted) {
				fmt.Fprintln(out, "Today's challenge is already started.")
				return nil
			}
			if err != nil {
				return err
			}
			ch := s.ctrl.TodayChallenge()
			fmt.Fprintf(out, "Challenge started: %s\n", ch.Task)
			for _, e := range res.Events {
				fmt.Fprintln(out, e.Message())
			}
			warnSave(cmd, res.SaveErr)
			return nil
		},
	})
	return c
}
