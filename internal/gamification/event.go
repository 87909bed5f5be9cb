package gamification

import "fmt"

// EventKind classifies an engine event.
type EventKind string

const (
	EventPointsAwarded       EventKind = "points_awarded"
	EventLevelUp             EventKind = "level_up"
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	EventStreakUpdated       EventKind = "streak_updated"
)

// Event is emitted by engine operations for the presentation layer to show.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Points is the amount awarded and Total the new balance (points_awarded).
	Points int
	Total  int

	// FromLevel and ToLevel describe a level_up.
	FromLevel int
	ToLevel   int

	// Achievement is set for achievement_unlocked.
	Achievement AchievementID

	// Streak is the new daily streak (streak_updated).
	Streak int
}

// Message returns the text shown to the learner for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventPointsAwarded:
		return fmt.Sprintf("+%d points (total %d)", e.Points, e.Total)
	case EventLevelUp:
		return fmt.Sprintf("🎉 Level Up! You are now Level %d!", e.ToLevel)
	case EventAchievementUnlocked:
		return fmt.Sprintf("🏆 Achievement Unlocked: %s!", e.Achievement.DisplayName())
	case EventStreakUpdated:
		if e.Streak == 1 {
			return "🔥 1 day streak"
		}
		return fmt.Sprintf("🔥 %d day streak", e.Streak)
	default:
		return string(e.Kind)
	}
}

// Filter returns the events of the given kind.
func Filter(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
