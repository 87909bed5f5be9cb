package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mathdash",
		Short: "Math practice dashboard",
		Long:  "MathDash: a terminal dashboard for practicing algebra, geometry, trigonometry, calculus and statistics, with points, levels, streaks and achievements.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		RunE: runApp,

		SilenceUsage: true,
	}

	root.PersistentFlags().String("data", "", "Path to the progress file (overrides MATHDASH_DATA env var)")
	root.PersistentFlags().String("backend", "", "Storage backend: json or sqlite (overrides MATHDASH_BACKEND env var)")
	root.Flags().Bool("no-splash", false, "Skip the welcome animation")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newAchievementsCmd())
	root.AddCommand(newChallengeCmd())
	root.AddCommand(newGradeCmd())
	root.AddCommand(newBankCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadDotEnv reads .env from the working directory. Variables already set
// in the environment win; a missing file is not an error.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// resolveStore returns the backend and data path using the flags (highest
// priority), then MATHDASH_BACKEND / MATHDASH_DATA, then the XDG default.
func resolveStore(cmd *cobra.Command) (string, store.Backend, error) {
	name, _ := cmd.Flags().GetString("backend")
	if name == "" {
		name = os.Getenv("MATHDASH_BACKEND")
	}
	backend, err := store.ParseBackend(name)
	if err != nil {
		return "", "", err
	}

	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, backend, nil
	}
	p, err := store.DefaultPath(backend)
	if err != nil {
		return "", "", fmt.Errorf("resolve data path: %w", err)
	}
	return p, backend, nil
}

// session is an opened progress store and the controller over it.
type session struct {
	ctrl *dashboard.Controller
	repo store.Repo

	// warning is set when the stored progress was unreadable and a fresh
	// record was started instead.
	warning string
}

func (s *session) Close() error {
	return s.repo.Close()
}

func openSession(cmd *cobra.Command) (*session, error) {
	path, backend, err := resolveStore(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{}
	repo, err := store.Open(path, backend)
	if err != nil {
		if !store.IsRecoverable(err) {
			return nil, fmt.Errorf("open store: %w", err)
		}
		s.warn(cmd, path, err)
		repo = store.Unavailable(path, err)
	}
	s.repo = repo

	p, err := store.LoadOrNew(cmd.Context(), repo, progress.DefaultGrade)
	if err != nil {
		if !store.IsRecoverable(err) {
			repo.Close()
			return nil, fmt.Errorf("load progress: %w", err)
		}
		s.warn(cmd, repo.Path(), err)
	}

	s.ctrl = dashboard.New(dashboard.Options{Repo: repo, Progress: p})
	return s, nil
}

func (s *session) warn(cmd *cobra.Command, path string, err error) {
	s.warning = fmt.Sprintf("warning: %s is unreadable, starting with fresh progress: %v", path, err)
	fmt.Fprintln(cmd.ErrOrStderr(), s.warning)
}

// warnSave reports a failed save after an in-memory change was applied.
func warnSave(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: progress not saved:", err)
	}
}
