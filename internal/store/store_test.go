package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

func sampleProgress(t *testing.T) *progress.Progress {
	t.Helper()
	p := progress.New(progress.Grade9)
	p.StudentName = "Ada"
	p.Points = 115
	p.DailyStreak = 3
	last := progress.Date{Year: 2026, Month: time.October, Day: 19}
	p.LastActivityDate = &last
	p.AddDailyChallenge(last)
	p.AddAchievement("50_points")
	p.AddAchievement("100_points")
	p.AddAchievement("3_day_streak")
	at := progress.NewTimestamp(time.Date(2026, time.October, 19, 9, 30, 5, 0, time.Local))
	p.PointsHistory = append(p.PointsHistory, progress.PointsEntry{Time: at, PointsGained: 15, TotalPoints: 115})
	p.ProblemsCompleted[questionbank.TopicStatistics] = 2
	p.ProblemsCompleted[questionbank.TopicAlgebra] = 5
	p.QuizHistory = append(p.QuizHistory, progress.QuizEntry{
		Time:      at,
		Topic:     questionbank.TopicStatistics,
		Kind:      "mean",
		Outcome:   progress.OutcomeCorrect,
		Points:    15,
		SessionID: "6f1c2f0e-7a0b-4c43-9d7e-3c1f4f3f6b2a",
	})
	return p
}

func mustJSON(t *testing.T, p *progress.Progress) string {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return string(b)
}

type repoFactory func(t *testing.T, dir string) Repo

var backends = map[string]repoFactory{
	"json": func(t *testing.T, dir string) Repo {
		return NewFileRepo(filepath.Join(dir, "progress.json"))
	},
	"sqlite": func(t *testing.T, dir string) Repo {
		r, err := OpenSQLite(filepath.Join(dir, "progress.db"))
		require.NoError(t, err)
		return r
	},
}

func TestRepo_LoadMissing(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t, t.TempDir())
			defer repo.Close()

			p, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestRepo_RoundTrip(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t, t.TempDir())
			defer repo.Close()
			ctx := context.Background()
			want := sampleProgress(t)

			require.NoError(t, repo.Save(ctx, want))
			got, err := repo.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, got)

			assert.JSONEq(t, mustJSON(t, want), mustJSON(t, got))
			assert.Equal(t, "Ada", got.StudentName)
			assert.Equal(t, progress.Grade9, got.Grade)
			assert.Equal(t, 2, got.Level())
			assert.Equal(t, 2, got.ProblemsCompleted[questionbank.TopicStatistics])
			assert.Equal(t, *want.LastActivityDate, *got.LastActivityDate)
			require.Len(t, got.QuizHistory, 1)
			assert.True(t, got.QuizHistory[0].Time.Equal(want.QuizHistory[0].Time.Time))
		})
	}
}

func TestRepo_SaveOverwrites(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t, t.TempDir())
			defer repo.Close()
			ctx := context.Background()

			p := progress.New(progress.DefaultGrade)
			for i := 1; i <= 8; i++ {
				p.Points = i * 10
				require.NoError(t, repo.Save(ctx, p))
			}

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 80, got.Points)
		})
	}
}

func TestFileRepo_Format(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")
	repo := NewFileRepo(path)
	require.NoError(t, repo.Save(context.Background(), sampleProgress(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"student_name\": \"Ada\"")
	assert.Contains(t, string(raw), `"level": 2`)
	assert.Contains(t, string(raw), `"date": "2026-10-19 09:30:05"`)
	assert.Contains(t, string(raw), `"last_activity_date": "2026-10-19"`)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileRepo_LoadLegacyDocument(t *testing.T) {
	doc := `{
    "student_name": "",
    "current_grade": "Grade 7",
    "points": 60,
    "level": 99,
    "daily_streak": 1,
    "last_activity_date": "2024-03-04",
    "daily_challenges_completed": [],
    "achievements": ["50_points"],
    "points_history": [
        {"date": "2024-03-04 10:00:00", "points_gained": 60, "total_points": 60}
    ],
    "math_problems_completed": {"Algebra": 6},
    "math_quiz_history": [
        {"timestamp": "2024-03-04 10:00:00", "topic": "Algebra", "question_type": "linear", "result": "Correct", "points": 10}
    ]
}`
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := NewFileRepo(path).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 60, p.Points)
	assert.Equal(t, 1, p.Level(), "stored level is recomputed")
	assert.Equal(t, 6, p.ProblemsCompleted[questionbank.TopicAlgebra])
	assert.NotNil(t, p.DailyChallengesCompleted)
	assert.Equal(t, "", p.QuizHistory[0].SessionID)
}

func TestFileRepo_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"points": `},
		{"empty", ``},
		{"wrong type", `{"points": "lots"}`},
		{"negative counter", `{"math_problems_completed": {"Algebra": -1}}`},
		{"bad date", `{"last_activity_date": "yesterday"}`},
		{"impossible date", `{"last_activity_date": "2024-13-45"}`},
		{"bad result", `{"math_quiz_history": [{"timestamp": "2024-03-04 10:00:00", "topic": "Algebra", "result": "Maybe"}]}`},
		{"top level array", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "progress.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			p, err := NewFileRepo(path).Load(context.Background())
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrCorrupt), "err = %v, want ErrCorrupt", err)
		})
	}
}

func TestFileRepo_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewFileRepo(filepath.Join(blocker, "progress.json"))
	err := repo.Save(context.Background(), progress.New(progress.DefaultGrade))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrCorrupt))
}

func TestLoadOrNew(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		repo := NewFileRepo(filepath.Join(t.TempDir(), "progress.json"))
		p, err := LoadOrNew(ctx, repo, progress.Grade11)
		require.NoError(t, err)
		assert.Equal(t, progress.Grade11, p.Grade)
		assert.Zero(t, p.Points)
	})

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "progress.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
		p, err := LoadOrNew(ctx, NewFileRepo(path), progress.DefaultGrade)
		assert.ErrorIs(t, err, ErrCorrupt)
		require.NotNil(t, p)
		assert.Equal(t, progress.DefaultGrade, p.Grade)
	})

	t.Run("directory at path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "progress.json")
		require.NoError(t, os.Mkdir(path, 0o755))
		p, err := LoadOrNew(ctx, NewFileRepo(path), progress.DefaultGrade)
		assert.ErrorIs(t, err, ErrUnreadable)
		assert.True(t, IsRecoverable(err))
		require.NotNil(t, p)
		assert.Zero(t, p.Points)
		assert.Equal(t, 1, strings.Count(err.Error(), path), "path repeated in %q", err)
	})

	t.Run("existing", func(t *testing.T) {
		repo := NewFileRepo(filepath.Join(t.TempDir(), "progress.json"))
		require.NoError(t, repo.Save(ctx, sampleProgress(t)))
		p, err := LoadOrNew(ctx, repo, progress.DefaultGrade)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.StudentName)
	})
}

func TestSQLiteRepo_PragmasApplied(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer repo.Close()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, repo.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSQLiteRepo_Prune(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer repo.Close()
	repo.Keep = 3
	ctx := context.Background()

	p := progress.New(progress.DefaultGrade)
	for i := 0; i < 7; i++ {
		p.Points = i
		require.NoError(t, repo.Save(ctx, p))
	}

	var count int
	require.NoError(t, repo.DB().QueryRow(`SELECT COUNT(*) FROM progress_snapshots`).Scan(&count))
	assert.Equal(t, 3, count)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Points)
}

func TestSQLiteRepo_Corrupt(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.DB().Exec(`INSERT INTO progress_snapshots (saved_at, document) VALUES ('now', '{"points": -5}')`)
	require.NoError(t, err)

	p, err := repo.Load(context.Background())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestSQLiteRepo_SavedAtUsesClock(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer repo.Close()
	stamp := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local)
	repo.Now = func() time.Time { return stamp }

	require.NoError(t, repo.Save(context.Background(), progress.New(progress.DefaultGrade)))

	var savedAt string
	require.NoError(t, repo.DB().QueryRow(`SELECT saved_at FROM progress_snapshots`).Scan(&savedAt))
	assert.Equal(t, stamp.Format(progress.TimestampLayout), savedAt)
}

func TestOpen_GarbageSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a database\n", 256)), 0o644))

	repo, err := Open(path, BackendSQLite)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.True(t, repo == nil, "repo = %#v, want untyped nil", repo)
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("file is not a database")
	repo := Unavailable("/data/progress.db", cause)

	p, err := LoadOrNew(ctx, repo, progress.Grade10)
	require.NoError(t, err)
	assert.Equal(t, progress.Grade10, p.Grade)
	assert.Equal(t, "/data/progress.db", repo.Path())

	err = repo.Save(ctx, p)
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, repo.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	jsonRepo, err := Open(filepath.Join(dir, "nested", "progress.json"), BackendJSON)
	require.NoError(t, err)
	assert.IsType(t, &FileRepo{}, jsonRepo)
	assert.DirExists(t, filepath.Join(dir, "nested"))

	sqlRepo, err := Open(filepath.Join(dir, "db", "progress.db"), BackendSQLite)
	require.NoError(t, err)
	defer sqlRepo.Close()
	assert.IsType(t, &SQLiteRepo{}, sqlRepo)

	_, err = Open(filepath.Join(dir, "x"), Backend("yaml"))
	assert.Error(t, err)
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendJSON, false},
		{"json", BackendJSON, false},
		{" SQLite ", BackendSQLite, false},
		{"postgres", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("MATHDASH_DATA", "/tmp/custom.json")
		p, err := DefaultPath(BackendJSON)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.json", p)
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("MATHDASH_DATA", "")
		t.Setenv("XDG_DATA_HOME", "/data")
		p, err := DefaultPath(BackendSQLite)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/data", "mathdash", "progress.db"), p)
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("MATHDASH_DATA", "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		p, err := DefaultPath(BackendJSON)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "mathdash", "progress.json"), p)
	})
}
