package report

import (
	"fmt"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

// Category groups board milestones by the metric they track.
type Category string

const (
	CategoryProblems Category = "Math Problems"
	CategoryStreaks  Category = "Streaks"
	CategoryPoints   Category = "Points"
)

// Icon returns the category's display glyph.
func (c Category) Icon() string {
	switch c {
	case CategoryProblems:
		return "📐"
	case CategoryStreaks:
		return "🔥"
	case CategoryPoints:
		return "⭐"
	default:
		return "•"
	}
}

// Milestone is one entry on the achievement board.
type Milestone struct {
	Category  Category
	Name      string
	Threshold int
	Earned    bool

	// Remaining is how far the learner is from the threshold; 0 once earned.
	Remaining int
}

type milestoneDef struct {
	category  Category
	name      string
	threshold int
}

// The board is a display of thresholds, independent of the stored
// achievement ids; "First Problem Solved", "Daily Learner" and "Math Power
// Player" exist only here.
var milestones = []milestoneDef{
	{CategoryProblems, "First Problem Solved", 1},
	{CategoryProblems, "Math Beginner", 10},
	{CategoryProblems, "Math Enthusiast", 25},
	{CategoryProblems, "Math Master", 50},
	{CategoryStreaks, "Daily Learner", 1},
	{CategoryStreaks, "3-Day Streak", 3},
	{CategoryStreaks, "Weekly Warrior", 7},
	{CategoryPoints, "50 Points", 50},
	{CategoryPoints, "Century Scorer", 100},
	{CategoryPoints, "Math Power Player", 500},
}

// Categories returns the board columns in display order.
func Categories() []Category {
	return []Category{CategoryProblems, CategoryStreaks, CategoryPoints}
}

func categoryValue(p *progress.Progress, c Category) int {
	switch c {
	case CategoryProblems:
		return p.TotalCompleted()
	case CategoryStreaks:
		return p.DailyStreak
	case CategoryPoints:
		return p.Points
	default:
		return 0
	}
}

// Board evaluates every milestone against p, grouped by category in
// display order.
func Board(p *progress.Progress) []Milestone {
	out := make([]Milestone, 0, len(milestones))
	for _, d := range milestones {
		v := categoryValue(p, d.category)
		m := Milestone{Category: d.category, Name: d.name, Threshold: d.threshold}
		if v >= d.threshold {
			m.Earned = true
		} else {
			m.Remaining = d.threshold - v
		}
		out = append(out, m)
	}
	return out
}

// NextGoal returns the hint shown under a category until its final
// milestone is earned, or "" when the category is complete.
func NextGoal(p *progress.Progress, c Category) string {
	var last *milestoneDef
	for i := range milestones {
		if milestones[i].category == c {
			last = &milestones[i]
		}
	}
	if last == nil {
		return ""
	}
	remaining := last.threshold - categoryValue(p, c)
	if remaining <= 0 {
		return ""
	}
	switch c {
	case CategoryProblems:
		return fmt.Sprintf("Solve %d more problems to become a %s!", remaining, last.name)
	case CategoryStreaks:
		return fmt.Sprintf("Keep practicing for %d more days for %s!", remaining, last.name)
	default:
		return fmt.Sprintf("Earn %d more points for the %s achievement!", remaining, last.name)
	}
}

// ExplorerThreshold is the number of solved problems that makes a topic
// explored.
const ExplorerThreshold = 5

// MasteryLevel describes how far a single topic has been practiced.
type MasteryLevel string

const (
	MasteryNotStarted MasteryLevel = "Not started"
	MasteryBeginner   MasteryLevel = "Beginner"
	MasteryExplorer   MasteryLevel = "Explorer"
)

// TopicProgress is one row of the topic mastery list.
type TopicProgress struct {
	Topic  questionbank.Topic
	Solved int
	Level  MasteryLevel
}

// Label renders the row the way the board shows it.
func (t TopicProgress) Label() string {
	switch t.Level {
	case MasteryExplorer:
		return fmt.Sprintf("%s Explorer (%d+ problems)", t.Topic, ExplorerThreshold)
	case MasteryBeginner:
		return fmt.Sprintf("%s Beginner (%d/%d problems)", t.Topic, t.Solved, ExplorerThreshold)
	default:
		return fmt.Sprintf("%s (Not started)", t.Topic)
	}
}

// TopicMastery returns the mastery level of every topic in bank order.
func TopicMastery(p *progress.Progress) []TopicProgress {
	out := make([]TopicProgress, 0, len(questionbank.Topics()))
	for _, t := range questionbank.Topics() {
		n := p.ProblemsCompleted[t]
		tp := TopicProgress{Topic: t, Solved: n, Level: MasteryNotStarted}
		switch {
		case n >= ExplorerThreshold:
			tp.Level = MasteryExplorer
		case n >= 1:
			tp.Level = MasteryBeginner
		}
		out = append(out, tp)
	}
	return out
}
