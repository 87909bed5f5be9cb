package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/mathdash/internal/progress"
)

// FileRepo stores progress as a single indented JSON file.
type FileRepo struct {
	path string
}

// NewFileRepo returns a repo for the JSON file at path. The file need
// not exist yet.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Path() string { return r.path }

func (r *FileRepo) Load(ctx context.Context) (*progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read progress: %w: %w", ErrUnreadable, err)
	}
	p, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return p, nil
}

// Save writes to a temp file in the same directory and renames it over
// the target, so a reader never sees a partial document.
func (r *FileRepo) Save(ctx context.Context, p *progress.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(p)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepo) Close() error { return nil }
