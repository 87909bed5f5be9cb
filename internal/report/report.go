// Package report aggregates a learner's progress for the progress report
// and achievement board.
package report

import (
	"slices"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

// DefaultRecent is how many quiz entries the activity timeline shows.
const DefaultRecent = 10

// Summary holds the headline numbers.
type Summary struct {
	ProblemsSolved  int
	TopicsPracticed int
	Points          int
	Level           int
	Streak          int
	Achievements    int

	// ToNextLevel is the number of points still needed for Level+1.
	ToNextLevel int
}

// Summarize builds the headline numbers for p.
func Summarize(p *progress.Progress) Summary {
	level := p.Level()
	return Summary{
		ProblemsSolved:  p.TotalCompleted(),
		TopicsPracticed: p.TopicsPracticed(),
		Points:          p.Points,
		Level:           level,
		Streak:          p.DailyStreak,
		Achievements:    len(p.Achievements),
		ToNextLevel:     level*progress.PointsPerLevel - p.Points,
	}
}

// DayPoints is the point total at the end of one calendar day.
type DayPoints struct {
	Date   progress.Date
	Gained int
	Total  int
}

// PointsByDay groups the points history by calendar date in chronological
// order. Total is the last running total recorded that day.
func PointsByDay(p *progress.Progress) []DayPoints {
	var days []DayPoints
	index := make(map[progress.Date]int)
	for _, e := range p.PointsHistory {
		d := e.Time.Date()
		i, ok := index[d]
		if !ok {
			index[d] = len(days)
			days = append(days, DayPoints{Date: d})
			i = len(days) - 1
		}
		days[i].Gained += e.PointsGained
		days[i].Total = e.TotalPoints
	}
	slices.SortStableFunc(days, func(a, b DayPoints) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})
	return days
}

// TopicShare is one topic's slice of the completed problems.
type TopicShare struct {
	Topic questionbank.Topic
	Count int
	Share float64
}

// TopicDistribution returns completions for every topic in bank order.
// Shares sum to 1 when anything has been solved, and are all 0 otherwise.
func TopicDistribution(p *progress.Progress) []TopicShare {
	total := p.TotalCompleted()
	out := make([]TopicShare, 0, len(questionbank.Topics()))
	for _, t := range questionbank.Topics() {
		n := p.ProblemsCompleted[t]
		s := TopicShare{Topic: t, Count: n}
		if total > 0 {
			s.Share = float64(n) / float64(total)
		}
		out = append(out, s)
	}
	return out
}

// RecentActivity returns the last n quiz entries, newest first.
func RecentActivity(p *progress.Progress, n int) []progress.QuizEntry {
	h := p.QuizHistory
	if n < 0 {
		n = 0
	}
	if n < len(h) {
		h = h[len(h)-n:]
	}
	out := slices.Clone(h)
	slices.Reverse(out)
	return out
}

// Accuracy is the answer record for one topic.
type Accuracy struct {
	Topic     questionbank.Topic
	Attempted int
	Correct   int
}

// Rate returns the fraction answered correctly, or 0 with no attempts.
func (a Accuracy) Rate() float64 {
	if a.Attempted == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempted)
}

// TopicAccuracy tallies the quiz history per topic in bank order. Entries
// for topics outside the bank are ignored.
func TopicAccuracy(p *progress.Progress) []Accuracy {
	byTopic := make(map[questionbank.Topic]*Accuracy)
	out := make([]Accuracy, 0, len(questionbank.Topics()))
	for _, t := range questionbank.Topics() {
		out = append(out, Accuracy{Topic: t})
	}
	for i := range out {
		byTopic[out[i].Topic] = &out[i]
	}
	for _, e := range p.QuizHistory {
		a, ok := byTopic[e.Topic]
		if !ok {
			continue
		}
		a.Attempted++
		if e.Outcome == progress.OutcomeCorrect {
			a.Correct++
		}
	}
	return out
}
