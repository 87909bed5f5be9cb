// Package dashboard owns the learner's in-memory progress and dispatches
// each user action to the quiz session, the gamification engine and the
// store.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/quiz"
	"github.com/abhisek/mathdash/internal/store"
)

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrNameAlreadySet = errors.New("name is already set")
)

// Outcome is what one user action produced.
type Outcome struct {
	// Events are the gamification events to display, in emission order.
	Events []gamification.Event

	// Result is set by SubmitAnswer.
	Result *quiz.Result

	// SaveErr is set when the change was applied in memory but could not
	// be written. A later Save retries.
	SaveErr error
}

// Options configures a Controller.
type Options struct {
	Repo     store.Repo
	Progress *progress.Progress

	// Bank defaults to questionbank.Default().
	Bank *questionbank.Bank

	// Clock defaults to time.Now.
	Clock func() time.Time

	// Rand defaults to a time-seeded source.
	Rand *rand.Rand
}

// Controller is the single owner of the learner's progress for the life of
// the process. It is not safe for concurrent use.
type Controller struct {
	repo     store.Repo
	progress *progress.Progress
	bank     *questionbank.Bank
	engine   *gamification.Engine
	session  *quiz.Session
	rng      *rand.Rand
}

// New creates a Controller. A nil Progress starts a fresh record.
func New(opts Options) *Controller {
	if opts.Bank == nil {
		opts.Bank = questionbank.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock().UnixNano()))
	}
	if opts.Progress == nil {
		opts.Progress = progress.New(progress.DefaultGrade)
	}
	return &Controller{
		repo:     opts.Repo,
		progress: opts.Progress,
		bank:     opts.Bank,
		engine:   gamification.NewEngine(opts.Clock),
		session:  quiz.NewSession(opts.Bank, opts.Rand),
		rng:      opts.Rand,
	}
}

// RequestNewProblem presents a random problem from topic, replacing any
// problem still awaiting an answer.
func (c *Controller) RequestNewProblem(topic questionbank.Topic) (questionbank.Problem, error) {
	if !topic.Valid() {
		return questionbank.Problem{}, fmt.Errorf("%w: %q", questionbank.ErrUnknownTopic, topic)
	}
	return c.session.RequestProblem(topic, c.engine.Now()), nil
}

// SubmitAnswer grades text against the presented problem, applies rewards
// and persists. Every attempt is saved, correct or not.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) (Outcome, error) {
	c.engine.ResetSession()
	res, err := c.session.Submit(c.progress, text, c.engine)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Events: slices.Clone(c.engine.SessionEvents), Result: res, SaveErr: c.Save(ctx)}, nil
}

// StartDailyChallenge marks today's challenge as started, awarding its
// bonus once per day.
func (c *Controller) StartDailyChallenge(ctx context.Context) (Outcome, error) {
	c.engine.ResetSession()
	if _, err := c.engine.StartDailyChallenge(c.progress); err != nil {
		return Outcome{}, err
	}
	return Outcome{Events: slices.Clone(c.engine.SessionEvents), SaveErr: c.Save(ctx)}, nil
}

// SetStudentName records the learner's name. It can be set only once.
func (c *Controller) SetStudentName(ctx context.Context, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Outcome{}, ErrEmptyName
	}
	if c.progress.StudentName != "" {
		return Outcome{}, ErrNameAlreadySet
	}
	c.progress.StudentName = name
	return Outcome{SaveErr: c.Save(ctx)}, nil
}

// SetGrade changes the learner's grade.
func (c *Controller) SetGrade(ctx context.Context, grade progress.Grade) (Outcome, error) {
	if !slices.Contains(progress.Grades(), grade) {
		return Outcome{}, fmt.Errorf("unknown grade %q", grade)
	}
	if c.progress.Grade == grade {
		return Outcome{}, nil
	}
	c.progress.Grade = grade
	return Outcome{SaveErr: c.Save(ctx)}, nil
}

// Reset clears earned progress, keeping name and grade, and abandons any
// presented problem.
func (c *Controller) Reset(ctx context.Context) (Outcome, error) {
	c.progress.Reset()
	c.session = quiz.NewSession(c.bank, c.rng)
	c.engine.ResetSession()
	return Outcome{SaveErr: c.Save(ctx)}, nil
}

// Save writes the current progress. Without a repo it is a no-op.
func (c *Controller) Save(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	if err := c.repo.Save(ctx, c.progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Summary is the headline standing shown on every frame.
type Summary struct {
	Level  int
	Points int
	Streak int
}

// Summary returns the learner's level, points and streak without copying
// the histories.
func (c *Controller) Summary() Summary {
	return Summary{
		Level:  c.progress.Level(),
		Points: c.progress.Points,
		Streak: c.progress.DailyStreak,
	}
}

// Progress returns a snapshot of the learner's progress.
func (c *Controller) Progress() *progress.Progress {
	return c.progress.Clone()
}

// Quiz returns a snapshot of the quiz session.
func (c *Controller) Quiz() quiz.Session {
	return c.session.Snapshot()
}

// TodayChallenge returns the challenge for the current weekday.
func (c *Controller) TodayChallenge() questionbank.DailyChallenge {
	return questionbank.ChallengeFor(c.engine.Today().Weekday())
}

// ChallengeStartedToday reports whether today's challenge was started.
func (c *Controller) ChallengeStartedToday() bool {
	return c.progress.HasDailyChallenge(c.engine.Today())
}

// Bank returns the question bank problems are drawn from.
func (c *Controller) Bank() *questionbank.Bank {
	return c.bank
}

// Now returns the controller's clock reading.
func (c *Controller) Now() time.Time {
	return c.engine.Now()
}

// StorePath returns where progress is persisted, or "" when unsaved.
func (c *Controller) StorePath() string {
	if c.repo == nil {
		return ""
	}
	return c.repo.Path()
}
