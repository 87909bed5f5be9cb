package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reset",
		Short: "Clear points, streaks, achievements and history",
		Long:  "Clear all earned progress. The learner's name and grade are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprint(out, "This erases all progress. Type 'yes' to confirm: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() || strings.TrimSpace(strings.ToLower(scanner.Text())) != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.ctrl.Reset(cmd.Context())
			if err != nil {
				return err
			}
			if res.SaveErr != nil {
				return res.SaveErr
			}
			fmt.Fprintln(out, "Progress reset.")
			return nil
		},
	}
	c.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return c
}
