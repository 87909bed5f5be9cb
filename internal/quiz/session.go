package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

// ErrNoActiveProblem is returned when an answer is submitted while no
// problem is presented.
var ErrNoActiveProblem = errors.New("no active problem")

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseIdle      Phase = iota // No problem in flight
	PhasePresented              // Problem shown, waiting for an answer
	PhaseGraded                 // Answer graded; transient, returns to Idle
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePresented:
		return "presented"
	case PhaseGraded:
		return "graded"
	default:
		return "unknown"
	}
}

// Session tracks the single problem currently in flight.
type Session struct {
	// ID identifies the presented problem; empty while idle.
	ID string

	Phase Phase

	// Topic and Problem are set while a problem is presented.
	Topic   questionbank.Topic
	Problem *questionbank.Problem

	// PresentedAt is when the current problem was requested.
	PresentedAt time.Time

	bank *questionbank.Bank
	rng  *rand.Rand
}

// Result is the graded outcome of one submission.
type Result struct {
	SessionID     string
	Problem       questionbank.Problem
	Submitted     string
	Outcome       progress.Outcome
	PointsAwarded int

	// CorrectAnswer is the canonical answer, shown to the learner on failure.
	CorrectAnswer string

	// Events are the gamification events caused by this answer.
	Events []gamification.Event

	// Entry is the quiz history record appended for this attempt.
	Entry progress.QuizEntry
}

// Correct reports whether the answer was judged correct.
func (r *Result) Correct() bool {
	return r.Outcome == progress.OutcomeCorrect
}

// NewSession creates an idle session drawing problems from bank.
func NewSession(bank *questionbank.Bank, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{bank: bank, rng: rng}
}

// Active reports whether a problem is waiting for an answer.
func (s *Session) Active() bool {
	return s.Phase == PhasePresented && s.Problem != nil
}

// RequestProblem presents a random problem of topic. A problem already in
// flight is abandoned without a history entry.
func (s *Session) RequestProblem(topic questionbank.Topic, now time.Time) questionbank.Problem {
	problem := s.bank.RandomProblem(topic, s.rng)
	s.ID = uuid.New().String()
	s.Phase = PhasePresented
	s.Topic = topic
	s.Problem = &problem
	s.PresentedAt = now
	return problem
}

// Submit grades answer against the presented problem, applies the rewards
// to p through eng, and appends a quiz history entry. The session is idle
// again when Submit returns, whatever the outcome.
func (s *Session) Submit(p *progress.Progress, answer string, eng *gamification.Engine) (*Result, error) {
	if !s.Active() {
		return nil, ErrNoActiveProblem
	}
	s.Phase = PhaseGraded
	problem := *s.Problem

	res := &Result{
		SessionID:     s.ID,
		Problem:       problem,
		Submitted:     answer,
		Outcome:       progress.OutcomeIncorrect,
		CorrectAnswer: problem.Answer,
	}
	if CheckAnswer(answer, problem.Answer) {
		res.Outcome = progress.OutcomeCorrect
		res.PointsAwarded = problem.Points
		res.Events = eng.RecordCorrect(p, problem)
	}

	res.Entry = progress.QuizEntry{
		Time:      progress.NewTimestamp(eng.Now()),
		Topic:     s.Topic,
		Kind:      problem.Kind,
		Outcome:   res.Outcome,
		Points:    res.PointsAwarded,
		SessionID: s.ID,
	}
	gamification.RecordQuizHistory(p, res.Entry)

	s.reset()
	return res, nil
}

// Snapshot returns a copy of the session's visible state.
func (s *Session) Snapshot() Session {
	c := Session{ID: s.ID, Phase: s.Phase, Topic: s.Topic, PresentedAt: s.PresentedAt}
	if s.Problem != nil {
		p := *s.Problem
		c.Problem = &p
	}
	return c
}

func (s *Session) reset() {
	s.ID = ""
	s.Phase = PhaseIdle
	s.Topic = ""
	s.Problem = nil
	s.PresentedAt = time.Time{}
}
