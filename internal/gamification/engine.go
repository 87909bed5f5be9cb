package gamification

import (
	"time"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

// Engine applies the gamification rules with a clock and keeps the events
// of the current interaction for display.
type Engine struct {
	now func() time.Time

	// SessionEvents accumulates events emitted since the last ResetSession.
	SessionEvents []Event
}

// NewEngine creates an Engine. A nil clock defaults to time.Now.
func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Today returns the current calendar date.
func (e *Engine) Today() progress.Date {
	return progress.DateOf(e.now())
}

// RecordCorrect applies the rewards for a correctly answered problem:
// points, streak and topic completion, in that order. Achievements are
// checked again after the completion so problem-count thresholds unlock on
// the answer that reaches them.
func (e *Engine) RecordCorrect(p *progress.Progress, problem questionbank.Problem) []Event {
	events := AwardPoints(p, problem.Points, e.now())
	events = append(events, UpdateStreak(p, e.Today())...)
	RecordCompletion(p, problem.Topic)
	events = append(events, CheckAchievements(p)...)
	return e.track(events)
}

// StartDailyChallenge starts today's challenge.
func (e *Engine) StartDailyChallenge(p *progress.Progress) ([]Event, error) {
	events, err := StartDailyChallenge(p, e.now())
	if err != nil {
		return nil, err
	}
	return e.track(events), nil
}

// ResetSession clears the event accumulator. Called at the start of each
// user interaction.
func (e *Engine) ResetSession() {
	e.SessionEvents = nil
}

func (e *Engine) track(events []Event) []Event {
	e.SessionEvents = append(e.SessionEvents, events...)
	return events
}
