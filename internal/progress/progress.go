package progress

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/abhisek/mathdash/internal/questionbank"
)

// PointsPerLevel is the number of points between consecutive levels.
const PointsPerLevel = 100

// Progress is the cumulative state of the single learner.
type Progress struct {
	StudentName              string                     `json:"student_name"`
	Grade                    Grade                      `json:"current_grade"`
	Points                   int                        `json:"points"`
	DailyStreak              int                        `json:"daily_streak"`
	LastActivityDate         *Date                      `json:"last_activity_date"`
	DailyChallengesCompleted []Date                     `json:"daily_challenges_completed"`
	Achievements             []string                   `json:"achievements"`
	PointsHistory            []PointsEntry              `json:"points_history"`
	ProblemsCompleted        map[questionbank.Topic]int `json:"math_problems_completed"`
	QuizHistory              []QuizEntry                `json:"math_quiz_history"`
}

// New returns an empty Progress for a first-time learner.
func New(grade Grade) *Progress {
	p := &Progress{Grade: grade}
	p.normalize()
	return p
}

// LevelFor returns the level reached with the given points.
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// Level returns the learner's current level, always derived from Points.
func (p *Progress) Level() int {
	return LevelFor(p.Points)
}

// TotalCompleted returns the number of correctly solved problems across topics.
func (p *Progress) TotalCompleted() int {
	total := 0
	for _, n := range p.ProblemsCompleted {
		total += n
	}
	return total
}

// TopicsPracticed returns how many topics have at least one solved problem.
func (p *Progress) TopicsPracticed() int {
	n := 0
	for _, c := range p.ProblemsCompleted {
		if c > 0 {
			n++
		}
	}
	return n
}

// HasAchievement reports whether id is unlocked.
func (p *Progress) HasAchievement(id string) bool {
	return slices.Contains(p.Achievements, id)
}

// AddAchievement unlocks id. Returns false if it was already unlocked.
func (p *Progress) AddAchievement(id string) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

// HasDailyChallenge reports whether the daily challenge of d was started.
func (p *Progress) HasDailyChallenge(d Date) bool {
	return slices.Contains(p.DailyChallengesCompleted, d)
}

// AddDailyChallenge records d. Returns false if d was already recorded.
func (p *Progress) AddDailyChallenge(d Date) bool {
	if p.HasDailyChallenge(d) {
		return false
	}
	p.DailyChallengesCompleted = append(p.DailyChallengesCompleted, d)
	return true
}

// Reset clears all earned progress, keeping the learner's name and grade.
func (p *Progress) Reset() {
	*p = Progress{StudentName: p.StudentName, Grade: p.Grade}
	p.normalize()
}

// Clone returns a deep copy of p.
func (p *Progress) Clone() *Progress {
	c := *p
	if p.LastActivityDate != nil {
		d := *p.LastActivityDate
		c.LastActivityDate = &d
	}
	c.DailyChallengesCompleted = slices.Clone(p.DailyChallengesCompleted)
	c.Achievements = slices.Clone(p.Achievements)
	c.PointsHistory = slices.Clone(p.PointsHistory)
	c.QuizHistory = slices.Clone(p.QuizHistory)
	c.ProblemsCompleted = maps.Clone(p.ProblemsCompleted)
	c.normalize()
	return &c
}

// normalize replaces nil collections with empty ones so that documents
// always serialize with [] and {} rather than null.
func (p *Progress) normalize() {
	if p.Grade == "" {
		p.Grade = DefaultGrade
	}
	if p.DailyChallengesCompleted == nil {
		p.DailyChallengesCompleted = []Date{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.PointsHistory == nil {
		p.PointsHistory = []PointsEntry{}
	}
	if p.ProblemsCompleted == nil {
		p.ProblemsCompleted = map[questionbank.Topic]int{}
	}
	if p.QuizHistory == nil {
		p.QuizHistory = []QuizEntry{}
	}
}

// progressJSON has the same fields as Progress without its methods.
type progressJSON Progress

// MarshalJSON writes the document with the derived level included.
func (p *Progress) MarshalJSON() ([]byte, error) {
	c := p.Clone()
	return json.Marshal(struct {
		progressJSON
		Level int `json:"level"`
	}{
		progressJSON: progressJSON(*c),
		Level:        c.Level(),
	})
}

// UnmarshalJSON reads a document. A stored level is ignored and recomputed
// from points.
func (p *Progress) UnmarshalJSON(b []byte) error {
	var raw progressJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Progress(raw)
	p.normalize()
	return nil
}
