package gamification

import "strconv"

// AchievementID identifies an unlockable achievement. Values are the ids
// stored in the progress file.
type AchievementID string

const (
	Achievement50Points   AchievementID = "50_points"
	Achievement100Points  AchievementID = "100_points"
	Achievement3DayStreak AchievementID = "3_day_streak"
	Achievement7DayStreak AchievementID = "7_day_streak"
	Achievement10Problems AchievementID = "10_math_problems"
	Achievement25Problems AchievementID = "25_math_problems"
	Achievement50Problems AchievementID = "50_math_problems"
)

// Metric is the progress counter an achievement threshold is measured on.
type Metric string

const (
	MetricPoints   Metric = "points"
	MetricStreak   Metric = "streak"
	MetricProblems Metric = "problems"
)

// Definition describes one achievement and its unlock threshold.
type Definition struct {
	ID        AchievementID
	Name      string
	Metric    Metric
	Threshold int
}

// definitions is evaluated in order; unlock events follow this order.
var definitions = []Definition{
	{ID: Achievement50Points, Name: "50 Points", Metric: MetricPoints, Threshold: 50},
	{ID: Achievement100Points, Name: "Century Scorer", Metric: MetricPoints, Threshold: 100},
	{ID: Achievement3DayStreak, Name: "3-Day Streak", Metric: MetricStreak, Threshold: 3},
	{ID: Achievement7DayStreak, Name: "Weekly Warrior", Metric: MetricStreak, Threshold: 7},
	{ID: Achievement10Problems, Name: "Math Beginner", Metric: MetricProblems, Threshold: 10},
	{ID: Achievement25Problems, Name: "Math Enthusiast", Metric: MetricProblems, Threshold: 25},
	{ID: Achievement50Problems, Name: "Math Master", Metric: MetricProblems, Threshold: 50},
}

// Definitions returns all achievements in evaluation order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for id.
func Lookup(id AchievementID) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// DisplayName returns a human-readable label for the achievement.
func (id AchievementID) DisplayName() string {
	if d, ok := Lookup(id); ok {
		return d.Name
	}
	return string(id)
}

// Icon returns the display icon for the achievement's metric.
func (id AchievementID) Icon() string {
	d, ok := Lookup(id)
	if !ok {
		return "✦"
	}
	switch d.Metric {
	case MetricPoints:
		return "★"
	case MetricStreak:
		return "🔥"
	case MetricProblems:
		return "📐"
	default:
		return "✦"
	}
}

// Description returns a one-line unlock condition, e.g. "Reach 100 points".
func (d Definition) Description() string {
	switch d.Metric {
	case MetricPoints:
		return "Reach " + strconv.Itoa(d.Threshold) + " points"
	case MetricStreak:
		return "Practice " + strconv.Itoa(d.Threshold) + " days in a row"
	case MetricProblems:
		return "Solve " + strconv.Itoa(d.Threshold) + " problems"
	default:
		return ""
	}
}
