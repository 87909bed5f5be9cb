package achievements

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/screens/screentest"
)

func sample() *progress.Progress {
	p := progress.New(progress.DefaultGrade)
	p.Points = 120
	p.DailyStreak = 1
	p.Achievements = []string{"50_points", "100_points"}
	p.ProblemsCompleted[questionbank.TopicAlgebra] = 6
	p.ProblemsCompleted[questionbank.TopicGeometry] = 2
	return p
}

func TestAchievements_Badges(t *testing.T) {
	ctrl, _ := screentest.Controller(sample())
	s := New(ctrl)

	view := s.View(100, 40)
	for _, want := range []string{"2 of 7 unlocked", "Century Scorer", "Weekly Warrior", "Practice 7 days in a row"} {
		if !strings.Contains(view, want) {
			t.Errorf("badges view missing %q", want)
		}
	}
}

func TestAchievements_TabCycles(t *testing.T) {
	ctrl, _ := screentest.Controller(sample())
	s := New(ctrl)

	s.Update(screentest.Special(tea.KeyTab))
	if s.tab != TabBoard {
		t.Fatalf("tab = %d, want board", s.tab)
	}
	view := s.View(120, 40)
	for _, want := range []string{"First Problem Solved", "3-Day Streak (2 to go)", "Math Power Player (380 to go)", "Earn 380 more points"} {
		if !strings.Contains(view, want) {
			t.Errorf("board view missing %q", want)
		}
	}

	s.Update(screentest.Special(tea.KeyTab))
	view = s.View(100, 40)
	for _, want := range []string{"Algebra Explorer", "Geometry Beginner (2/5 problems)", "Calculus (Not started)"} {
		if !strings.Contains(view, want) {
			t.Errorf("topics view missing %q", want)
		}
	}

	s.Update(screentest.Special(tea.KeyTab))
	if s.tab != TabBadges {
		t.Errorf("tab = %d, want wrap to badges", s.tab)
	}

	s.Update(screentest.Key('h'))
	if s.tab != TabTopics {
		t.Errorf("tab = %d, want topics after moving left", s.tab)
	}
}
