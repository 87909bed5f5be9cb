package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathdash/internal/progress"
)

// unavailableRepo stands in for a store that could not be opened. It loads
// nothing and every save fails with the open error.
type unavailableRepo struct {
	path string
	err  error
}

// Unavailable returns a Repo for path that holds nothing and rejects every
// save with cause, so a session can continue in memory.
func Unavailable(path string, cause error) Repo {
	return &unavailableRepo{path: path, err: cause}
}

func (r *unavailableRepo) Path() string { return r.path }

func (r *unavailableRepo) Load(ctx context.Context) (*progress.Progress, error) {
	return nil, ctx.Err()
}

func (r *unavailableRepo) Save(ctx context.Context, _ *progress.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("store unavailable: %w", r.err)
}

func (r *unavailableRepo) Close() error { return nil }
