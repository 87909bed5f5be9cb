package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/questionbank"
)

func newBankCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bank",
		Short: "Inspect the question bank",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the problems in the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics := questionbank.Topics()
			if name, _ := cmd.Flags().GetString("topic"); name != "" {
				t, err := questionbank.ParseTopic(name)
				if err != nil {
					return err
				}
				topics = []questionbank.Topic{t}
			}
			bank := questionbank.Default()
			printBank(cmd, bank, topics)
			if len(topics) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d problems in %d topics\n", bank.Count(), len(topics))
			}
			return nil
		},
	}
	list.Flags().StringP("topic", "t", "", "Only list problems for this topic")
	c.AddCommand(list)
	return c
}

func printBank(cmd *cobra.Command, bank *questionbank.Bank, topics []questionbank.Topic) {
	out := cmd.OutOrStdout()
	for i, t := range topics {
		if i > 0 {
			fmt.Fprintln(out)
		}
		problems := bank.ProblemsFor(t)
		fmt.Fprintf(out, "%s %s (%d)\n", t.Icon(), t, len(problems))
		fmt.Fprintln(out, strings.Repeat(rule, 60))
		for _, p := range problems {
			fmt.Fprintf(out, "  %-12s  %s  => %s\n", p.Kind, p.PlainPrompt(), p.Answer)
		}
	}
}
