package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/mathdash/internal/progress"
)

// ErrCorrupt is returned by Load when the stored document cannot be read
// back as progress.
var ErrCorrupt = errors.New("corrupt progress data")

// ErrUnreadable is returned when the backing file exists but cannot be
// read or opened as a store at all.
var ErrUnreadable = errors.New("unreadable progress store")

// Repo persists the single learner's progress document.
type Repo interface {
	// Load returns the stored progress, or nil with a nil error when
	// nothing has been saved yet.
	Load(ctx context.Context) (*progress.Progress, error)

	// Save writes p in full, replacing whatever was stored.
	Save(ctx context.Context, p *progress.Progress) error

	// Path returns the location of the backing file.
	Path() string

	Close() error
}

// Backend selects the storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend resolves a backend name. The empty string means JSON.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want json or sqlite)", s)
	}
}

func (b Backend) fileName() string {
	if b == BackendSQLite {
		return "progress.db"
	}
	return "progress.json"
}

// Open returns the repo for backend at path, creating the parent
// directory if needed.
func Open(path string, backend Backend) (Repo, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	switch backend {
	case BackendSQLite:
		r, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendJSON, "":
		return NewFileRepo(path), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// LoadOrNew loads progress from repo, falling back to a fresh record for
// grade when nothing is stored. A corrupt or unreadable document also
// yields a fresh record; the returned error then wraps ErrCorrupt or
// ErrUnreadable and should be reported as a warning.
func LoadOrNew(ctx context.Context, repo Repo, grade progress.Grade) (*progress.Progress, error) {
	p, err := repo.Load(ctx)
	if err != nil {
		if IsRecoverable(err) {
			return progress.New(grade), err
		}
		return nil, err
	}
	if p == nil {
		return progress.New(grade), nil
	}
	return p, nil
}

// IsRecoverable reports whether err means the stored progress is lost but
// a fresh record can be used in its place.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrCorrupt) || errors.Is(err, ErrUnreadable)
}

// DefaultPath resolves the data file path in priority order:
// 1. MATHDASH_DATA environment variable
// 2. $XDG_DATA_HOME/mathdash/progress.{json,db}
// 3. ~/.local/share/mathdash/progress.{json,db}
func DefaultPath(backend Backend) (string, error) {
	if p := os.Getenv("MATHDASH_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "mathdash", backend.fileName()), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
