package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/app"
)

func newPlayCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "play",
		Short: "Open the practice dashboard",
		RunE:  runApp,
	}
	c.Flags().Bool("no-splash", false, "Skip the welcome animation")
	return c
}

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(cmd.Context(), app.Options{
		Controller:  s.ctrl,
		Warning:     s.warning,
		SkipWelcome: skip,
	})
}
