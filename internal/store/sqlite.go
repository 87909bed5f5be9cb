package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathdash/internal/progress"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DefaultKeepSnapshots is how many saved documents SQLiteRepo retains.
const DefaultKeepSnapshots = 5

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS progress_snapshots (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	saved_at TEXT    NOT NULL,
	document TEXT    NOT NULL
)`

// SQLiteRepo stores each save as a snapshot row holding the full JSON
// document. Load returns the newest; older rows are pruned to Keep.
type SQLiteRepo struct {
	db   *sql.DB
	path string

	// Keep is the number of snapshots retained after each save.
	Keep int

	// Now stamps saved_at. OpenSQLite sets it to time.Now.
	Now func() time.Time
}

// OpenSQLite opens (or creates) the database at dsn. A file that is not a
// usable database yields an error wrapping ErrUnreadable.
func OpenSQLite(dsn string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer; keeps the per-connection pragmas in effect.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w: %w", ErrUnreadable, err)
	}

	if _, err := db.Exec(createSnapshotsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w: %w", ErrUnreadable, err)
	}

	return &SQLiteRepo{db: db, path: dsn, Keep: DefaultKeepSnapshots, Now: time.Now}, nil
}

func (r *SQLiteRepo) Path() string { return r.path }

// DB returns the underlying *sql.DB for raw queries.
func (r *SQLiteRepo) DB() *sql.DB { return r.db }

func (r *SQLiteRepo) Load(ctx context.Context) (*progress.Progress, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM progress_snapshots ORDER BY id DESC LIMIT 1`).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	p, err := decode([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return p, nil
}

func (r *SQLiteRepo) Save(ctx context.Context, p *progress.Progress) error {
	data, err := encode(p)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := r.Now
	if now == nil {
		now = time.Now
	}
	savedAt := now().Format(progress.TimestampLayout)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO progress_snapshots (saved_at, document) VALUES (?, ?)`,
		savedAt, string(data)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	keep := r.Keep
	if keep < 1 {
		keep = 1
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM progress_snapshots WHERE id NOT IN (
			SELECT id FROM progress_snapshots ORDER BY id DESC LIMIT ?)`,
		keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
