package gamification

import (
	"errors"
	"time"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

// DailyChallengePoints is awarded when the learner starts the day's challenge.
const DailyChallengePoints = 10

// ErrChallengeAlreadyStarted is returned when today's challenge was already started.
var ErrChallengeAlreadyStarted = errors.New("daily challenge already started today")

// UpdateStreak records activity on today.
//
//   - no previous activity: streak becomes 1
//   - previous activity yesterday: streak grows by one
//   - previous activity before yesterday: streak resets to 1
//   - previous activity today (or later): unchanged
//
// The last activity date is set to today in every case, so repeated calls on
// the same day have no further effect.
func UpdateStreak(p *progress.Progress, today progress.Date) []Event {
	before := p.DailyStreak
	var events []Event
	grew := false

	switch last := p.LastActivityDate; {
	case last == nil:
		p.DailyStreak = 1
	case today == last.AddDays(1):
		p.DailyStreak++
		grew = true
	case today.After(last.AddDays(1)):
		p.DailyStreak = 1
	}

	if p.DailyStreak != before {
		events = append(events, Event{Kind: EventStreakUpdated, Streak: p.DailyStreak})
	}
	if grew {
		events = append(events, CheckAchievements(p)...)
	}

	d := today
	p.LastActivityDate = &d
	return events
}

// AwardPoints adds amount to the balance, appends a history entry and emits a
// level-up when the derived level rises. Non-positive amounts are ignored.
func AwardPoints(p *progress.Progress, amount int, now time.Time) []Event {
	if amount <= 0 {
		return nil
	}
	oldLevel := p.Level()
	p.Points += amount
	p.PointsHistory = append(p.PointsHistory, progress.PointsEntry{
		Time:         progress.NewTimestamp(now),
		PointsGained: amount,
		TotalPoints:  p.Points,
	})

	events := []Event{{Kind: EventPointsAwarded, Points: amount, Total: p.Points}}
	if newLevel := p.Level(); newLevel > oldLevel {
		events = append(events, Event{Kind: EventLevelUp, FromLevel: oldLevel, ToLevel: newLevel})
	}
	return append(events, CheckAchievements(p)...)
}

// CheckAchievements unlocks every achievement whose threshold is met and
// which is not yet unlocked. Unlocked achievements are never removed.
func CheckAchievements(p *progress.Progress) []Event {
	var events []Event
	for _, d := range definitions {
		if metricValue(p, d.Metric) < d.Threshold {
			continue
		}
		if p.AddAchievement(string(d.ID)) {
			events = append(events, Event{Kind: EventAchievementUnlocked, Achievement: d.ID})
		}
	}
	return events
}

func metricValue(p *progress.Progress, m Metric) int {
	switch m {
	case MetricPoints:
		return p.Points
	case MetricStreak:
		return p.DailyStreak
	case MetricProblems:
		return p.TotalCompleted()
	default:
		return 0
	}
}

// RecordCompletion counts one correctly solved problem of topic.
func RecordCompletion(p *progress.Progress, topic questionbank.Topic) {
	p.ProblemsCompleted[topic]++
}

// RecordQuizHistory appends a graded attempt to the quiz history.
func RecordQuizHistory(p *progress.Progress, entry progress.QuizEntry) {
	p.QuizHistory = append(p.QuizHistory, entry)
}

// StartDailyChallenge marks today's challenge as started, awards
// DailyChallengePoints and updates the streak.
func StartDailyChallenge(p *progress.Progress, now time.Time) ([]Event, error) {
	today := progress.DateOf(now)
	if !p.AddDailyChallenge(today) {
		return nil, ErrChallengeAlreadyStarted
	}
	events := AwardPoints(p, DailyChallengePoints, now)
	return append(events, UpdateStreak(p, today)...), nil
}
