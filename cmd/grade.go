package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/progress"
)

func newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "grade [GRADE]",
		Short:   "Show or change the learner's grade",
		Example: "  mathdash grade 10\n  mathdash grade \"Grade 12\"",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var grade progress.Grade
			if len(args) == 1 {
				g, err := progress.ParseGrade(args[0])
				if err != nil {
					return err
				}
				grade = g
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			if grade == "" {
				fmt.Fprintf(out, "Grade: %s\n", s.ctrl.Progress().Grade)
				return nil
			}
			res, err := s.ctrl.SetGrade(cmd.Context(), grade)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Grade set to %s.\n", grade)
			warnSave(cmd, res.SaveErr)
			return nil
		},
	}
}
