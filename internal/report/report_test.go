package report

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
)

func ts(day, hour int) progress.Timestamp {
	return progress.NewTimestamp(time.Date(2026, time.October, day, hour, 0, 0, 0, time.Local))
}

func TestSummarize(t *testing.T) {
	p := progress.New(progress.DefaultGrade)
	p.Points = 135
	p.DailyStreak = 4
	p.Achievements = []string{"50_points", "100_points"}
	p.ProblemsCompleted[questionbank.TopicAlgebra] = 3
	p.ProblemsCompleted[questionbank.TopicCalculus] = 2

	s := Summarize(p)
	want := Summary{
		ProblemsSolved:  5,
		TopicsPracticed: 2,
		Points:          135,
		Level:           2,
		Streak:          4,
		Achievements:    2,
		ToNextLevel:     65,
	}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestPointsByDay(t *testing.T) {
	p := progress.New(progress.DefaultGrade)
	p.PointsHistory = []progress.PointsEntry{
		{Time: ts(17, 9), PointsGained: 10, TotalPoints: 10},
		{Time: ts(17, 18), PointsGained: 15, TotalPoints: 25},
		{Time: ts(19, 8), PointsGained: 20, TotalPoints: 45},
	}

	days := PointsByDay(p)
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2", len(days))
	}
	if days[0].Date.String() != "2026-10-17" || days[0].Total != 25 || days[0].Gained != 25 {
		t.Errorf("day 0 = %+v", days[0])
	}
	if days[1].Date.String() != "2026-10-19" || days[1].Total != 45 || days[1].Gained != 20 {
		t.Errorf("day 1 = %+v", days[1])
	}
}

func TestPointsByDay_Empty(t *testing.T) {
	if days := PointsByDay(progress.New(progress.DefaultGrade)); len(days) != 0 {
		t.Errorf("expected no days, got %v", days)
	}
}

func TestTopicDistribution(t *testing.T) {
	p := progress.New(progress.DefaultGrade)
	p.ProblemsCompleted[questionbank.TopicGeometry] = 3
	p.ProblemsCompleted[questionbank.TopicStatistics] = 1

	dist := TopicDistribution(p)
	if len(dist) != len(questionbank.Topics()) {
		t.Fatalf("len = %d, want %d", len(dist), len(questionbank.Topics()))
	}
	sum := 0.0
	for i, d := range dist {
		if d.Topic != questionbank.Topics()[i] {
			t.Errorf("dist[%d].Topic = %q, want bank order", i, d.Topic)
		}
		sum += d.Share
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("shares sum to %v, want 1", sum)
	}
	if dist[1].Count != 3 || dist[1].Share != 0.75 {
		t.Errorf("geometry = %+v", dist[1])
	}

	for _, d := range TopicDistribution(progress.New(progress.DefaultGrade)) {
		if d.Share != 0 || d.Count != 0 {
			t.Errorf("empty progress share = %+v", d)
		}
	}
}

func TestRecentActivity(t *testing.T) {
	p := progress.New(progress.DefaultGrade)
	for i := 1; i <= 12; i++ {
		p.QuizHistory = append(p.QuizHistory, progress.QuizEntry{
			Time:   ts(1, 0),
			Topic:  questionbank.TopicAlgebra,
			Points: i,
		})
	}

	got := RecentActivity(p, DefaultRecent)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].Points != 12 || got[9].Points != 3 {
		t.Errorf("order = %d..%d, want 12..3", got[0].Points, got[9].Points)
	}

	got[0].Points = 99
	if p.QuizHistory[11].Points != 12 {
		t.Error("RecentActivity aliases history")
	}

	if n := len(RecentActivity(p, 50)); n != 12 {
		t.Errorf("n larger than history: len = %d, want 12", n)
	}
	if n := len(RecentActivity(p, -1)); n != 0 {
		t.Errorf("negative n: len = %d, want 0", n)
	}
}

func TestTopicAccuracy(t *testing.T) {
	p := progress.New(progress.DefaultGrade)
	add := func(topic questionbank.Topic, o progress.Outcome) {
		p.QuizHistory = append(p.QuizHistory, progress.QuizEntry{Topic: topic, Outcome: o})
	}
	add(questionbank.TopicAlgebra, progress.OutcomeCorrect)
	add(questionbank.TopicAlgebra, progress.OutcomeIncorrect)
	add(questionbank.TopicAlgebra, progress.OutcomeCorrect)
	add(questionbank.TopicCalculus, progress.OutcomeIncorrect)
	add(questionbank.Topic("Chemistry"), progress.OutcomeCorrect)

	acc := TopicAccuracy(p)
	if acc[0].Attempted != 3 || acc[0].Correct != 2 {
		t.Errorf("algebra = %+v", acc[0])
	}
	if math.Abs(acc[0].Rate()-2.0/3.0) > 1e-9 {
		t.Errorf("algebra rate = %v", acc[0].Rate())
	}
	if acc[3].Rate() != 0 || acc[3].Attempted != 1 {
		t.Errorf("calculus = %+v", acc[3])
	}
	if acc[1].Rate() != 0 {
		t.Errorf("unattempted rate = %v, want 0", acc[1].Rate())
	}
}
