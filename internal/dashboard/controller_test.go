package dashboard

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/quiz"
	"github.com/abhisek/mathdash/internal/store"
)

// memRepo is an in-memory store.Repo that can be made to fail.
type memRepo struct {
	saved   *progress.Progress
	saves   int
	failErr error
}

func (r *memRepo) Load(context.Context) (*progress.Progress, error) {
	if r.saved == nil {
		return nil, nil
	}
	return r.saved.Clone(), nil
}

func (r *memRepo) Save(_ context.Context, p *progress.Progress) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.saves++
	r.saved = p.Clone()
	return nil
}

func (r *memRepo) Path() string { return "memory" }
func (r *memRepo) Close() error { return nil }

// clock is a settable test clock.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

// Monday 2026-10-19.
var monday = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local)

func newTestController(repo store.Repo) (*Controller, *clock) {
	clk := &clock{t: monday}
	c := New(Options{
		Repo:  repo,
		Clock: clk.now,
		Rand:  rand.New(rand.NewSource(1)),
	})
	return c, clk
}

// present requests problems until one with answer is shown.
func present(t *testing.T, c *Controller, topic questionbank.Topic, answer string) {
	t.Helper()
	for i := 0; i < 500; i++ {
		p, err := c.RequestNewProblem(topic)
		require.NoError(t, err)
		if p.Answer == answer {
			return
		}
	}
	t.Fatalf("no %s problem with answer %q", topic, answer)
}

func TestSubmitAnswer_CorrectPersists(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)
	ctx := context.Background()

	present(t, c, questionbank.TopicStatistics, "9")
	out, err := c.SubmitAnswer(ctx, " 9 ")
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.NoError(t, out.SaveErr)

	assert.True(t, out.Result.Correct())
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 15, repo.saved.Points)
	assert.Equal(t, 1, repo.saved.ProblemsCompleted[questionbank.TopicStatistics])
	assert.Equal(t, 1, repo.saved.DailyStreak)
	assert.Len(t, repo.saved.QuizHistory, 1)
	assert.NotEmpty(t, gamification.Filter(out.Events, gamification.EventPointsAwarded))
	assert.False(t, c.Quiz().Active())
}

func TestSubmitAnswer_IncorrectAlsoPersists(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)

	present(t, c, questionbank.TopicTrigonometry, "0.5")
	out, err := c.SubmitAnswer(context.Background(), "1/2")
	require.NoError(t, err)

	assert.False(t, out.Result.Correct())
	assert.Equal(t, "0.5", out.Result.CorrectAnswer)
	assert.Empty(t, out.Events)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 0, repo.saved.Points)
	require.Len(t, repo.saved.QuizHistory, 1)
	assert.Equal(t, progress.OutcomeIncorrect, repo.saved.QuizHistory[0].Outcome)
}

func TestSubmitAnswer_NoProblem(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)

	_, err := c.SubmitAnswer(context.Background(), "9")
	assert.ErrorIs(t, err, quiz.ErrNoActiveProblem)
	assert.Zero(t, repo.saves)
}

func TestSubmitAnswer_SaveFailureIsNonFatal(t *testing.T) {
	boom := errors.New("disk full")
	repo := &memRepo{failErr: boom}
	c, _ := newTestController(repo)
	ctx := context.Background()

	present(t, c, questionbank.TopicStatistics, "9")
	out, err := c.SubmitAnswer(ctx, "9")
	require.NoError(t, err)
	assert.ErrorIs(t, out.SaveErr, boom)

	// In-memory state is retained.
	assert.Equal(t, 15, c.Progress().Points)

	// A later save succeeds once the store recovers.
	repo.failErr = nil
	require.NoError(t, c.Save(ctx))
	assert.Equal(t, 15, repo.saved.Points)
}

func TestRequestNewProblem(t *testing.T) {
	c, _ := newTestController(&memRepo{})

	p, err := c.RequestNewProblem(questionbank.TopicCalculus)
	require.NoError(t, err)
	assert.Equal(t, questionbank.TopicCalculus, p.Topic)

	q := c.Quiz()
	assert.True(t, q.Active())
	assert.Equal(t, questionbank.TopicCalculus, q.Topic)

	_, err = c.RequestNewProblem(questionbank.Topic("Chemistry"))
	assert.ErrorIs(t, err, questionbank.ErrUnknownTopic)
}

func TestLevelUpAcrossAnswers(t *testing.T) {
	c, _ := newTestController(&memRepo{})
	ctx := context.Background()

	var levelUps []gamification.Event
	for i := 0; i < 7; i++ {
		present(t, c, questionbank.TopicStatistics, "9")
		out, err := c.SubmitAnswer(ctx, "9")
		require.NoError(t, err)
		levelUps = append(levelUps, gamification.Filter(out.Events, gamification.EventLevelUp)...)
	}

	// 7 * 15 = 105 points: one level-up from 1 to 2.
	p := c.Progress()
	assert.Equal(t, 105, p.Points)
	assert.Equal(t, 2, p.Level())
	require.Len(t, levelUps, 1)
	assert.Equal(t, 1, levelUps[0].FromLevel)
	assert.Equal(t, 2, levelUps[0].ToLevel)
	assert.True(t, p.HasAchievement(string(gamification.Achievement50Points)))
	assert.True(t, p.HasAchievement(string(gamification.Achievement100Points)))
}

func TestStreakAcrossDays(t *testing.T) {
	c, clk := newTestController(&memRepo{})
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		clk.t = monday.AddDate(0, 0, day)
		present(t, c, questionbank.TopicStatistics, "9")
		_, err := c.SubmitAnswer(ctx, "9")
		require.NoError(t, err)
	}
	p := c.Progress()
	assert.Equal(t, 3, p.DailyStreak)
	assert.True(t, p.HasAchievement(string(gamification.Achievement3DayStreak)))

	// Skipping a day resets to 1.
	clk.t = monday.AddDate(0, 0, 5)
	present(t, c, questionbank.TopicStatistics, "9")
	_, err := c.SubmitAnswer(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Progress().DailyStreak)
	assert.True(t, c.Progress().HasAchievement(string(gamification.Achievement3DayStreak)))
}

func TestStartDailyChallenge(t *testing.T) {
	repo := &memRepo{}
	c, clk := newTestController(repo)
	ctx := context.Background()

	assert.False(t, c.ChallengeStartedToday())
	assert.Equal(t, "Algebra", c.TodayChallenge().Topic)

	out, err := c.StartDailyChallenge(ctx)
	require.NoError(t, err)
	assert.NoError(t, out.SaveErr)
	assert.True(t, c.ChallengeStartedToday())
	assert.Equal(t, gamification.DailyChallengePoints, repo.saved.Points)
	assert.Equal(t, 1, repo.saved.DailyStreak)

	_, err = c.StartDailyChallenge(ctx)
	assert.ErrorIs(t, err, gamification.ErrChallengeAlreadyStarted)
	assert.Equal(t, gamification.DailyChallengePoints, c.Progress().Points)

	clk.t = monday.AddDate(0, 0, 1)
	assert.False(t, c.ChallengeStartedToday())
	_, err = c.StartDailyChallenge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Progress().DailyStreak)
}

func TestOutcomeEventsArePerAction(t *testing.T) {
	c, _ := newTestController(&memRepo{})
	ctx := context.Background()

	first, err := c.StartDailyChallenge(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, gamification.Filter(first.Events, gamification.EventPointsAwarded))
	snapshot := append([]gamification.Event(nil), first.Events...)

	present(t, c, questionbank.TopicTrigonometry, "0.5")
	second, err := c.SubmitAnswer(ctx, "wrong")
	require.NoError(t, err)
	assert.Empty(t, second.Events)

	present(t, c, questionbank.TopicStatistics, "9")
	third, err := c.SubmitAnswer(ctx, "9")
	require.NoError(t, err)
	points := gamification.Filter(third.Events, gamification.EventPointsAwarded)
	require.Len(t, points, 1)
	assert.Equal(t, 15, points[0].Points)
	assert.Equal(t, snapshot, first.Events, "earlier outcome must not change")
}

func TestSummary(t *testing.T) {
	c, _ := newTestController(&memRepo{})
	assert.Equal(t, Summary{Level: 1}, c.Summary())

	_, err := c.StartDailyChallenge(context.Background())
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		present(t, c, questionbank.TopicStatistics, "9")
		_, err := c.SubmitAnswer(context.Background(), "9")
		require.NoError(t, err)
	}

	p := c.Progress()
	assert.Equal(t, Summary{Level: p.Level(), Points: p.Points, Streak: p.DailyStreak}, c.Summary())
	assert.Equal(t, Summary{Level: 2, Points: 115, Streak: 1}, c.Summary())
}

func TestSetStudentName(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)
	ctx := context.Background()

	_, err := c.SetStudentName(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = c.SetStudentName(ctx, "  Ada Lovelace ")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", repo.saved.StudentName)

	_, err = c.SetStudentName(ctx, "Grace")
	assert.ErrorIs(t, err, ErrNameAlreadySet)
	assert.Equal(t, "Ada Lovelace", c.Progress().StudentName)
}

func TestSetGrade(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)
	ctx := context.Background()

	assert.Equal(t, progress.DefaultGrade, c.Progress().Grade)

	_, err := c.SetGrade(ctx, progress.Grade10)
	require.NoError(t, err)
	assert.Equal(t, progress.Grade10, repo.saved.Grade)

	_, err = c.SetGrade(ctx, progress.Grade("Grade 3"))
	assert.Error(t, err)
	assert.Equal(t, progress.Grade10, c.Progress().Grade)
}

func TestReset(t *testing.T) {
	repo := &memRepo{}
	c, _ := newTestController(repo)
	ctx := context.Background()

	_, err := c.SetStudentName(ctx, "Ada")
	require.NoError(t, err)
	present(t, c, questionbank.TopicStatistics, "9")
	_, err = c.SubmitAnswer(ctx, "9")
	require.NoError(t, err)
	_, err = c.RequestNewProblem(questionbank.TopicAlgebra)
	require.NoError(t, err)

	_, err = c.Reset(ctx)
	require.NoError(t, err)

	p := c.Progress()
	assert.Equal(t, "Ada", p.StudentName)
	assert.Zero(t, p.Points)
	assert.Empty(t, p.QuizHistory)
	assert.False(t, c.Quiz().Active())
	assert.Zero(t, repo.saved.Points)
}

func TestProgressSnapshotIsDetached(t *testing.T) {
	c, _ := newTestController(&memRepo{})
	snap := c.Progress()
	snap.Points = 999
	snap.ProblemsCompleted[questionbank.TopicAlgebra] = 50
	assert.Zero(t, c.Progress().Points)
	assert.Zero(t, c.Progress().ProblemsCompleted[questionbank.TopicAlgebra])
}

func TestWithFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.json")
	repo := store.NewFileRepo(path)

	c, _ := newTestController(repo)
	present(t, c, questionbank.TopicStatistics, "9")
	out, err := c.SubmitAnswer(ctx, "9")
	require.NoError(t, err)
	require.NoError(t, out.SaveErr)

	// A new process picks up where the last left off.
	p, err := store.LoadOrNew(ctx, repo, progress.DefaultGrade)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Points)
	assert.Equal(t, 1, p.ProblemsCompleted[questionbank.TopicStatistics])
	assert.Empty(t, c.Quiz().ID)
	require.Len(t, p.QuizHistory, 1)
	assert.Equal(t, out.Result.SessionID, p.QuizHistory[0].SessionID)
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{})
	assert.NotNil(t, c.Bank())
	assert.Equal(t, progress.DefaultGrade, c.Progress().Grade)
	assert.NoError(t, c.Save(context.Background()))
	assert.Equal(t, "", c.StorePath())
}
