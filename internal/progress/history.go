package progress

import "github.com/abhisek/mathdash/internal/questionbank"

// Outcome is the graded result of one quiz attempt.
type Outcome string

const (
	OutcomeCorrect   Outcome = "Correct"
	OutcomeIncorrect Outcome = "Incorrect"
)

// PointsEntry records one point award.
type PointsEntry struct {
	Time         Timestamp `json:"date"`
	PointsGained int       `json:"points_gained"`
	TotalPoints  int       `json:"total_points"`
}

// QuizEntry records one graded quiz attempt.
type QuizEntry struct {
	Time      Timestamp          `json:"timestamp"`
	Topic     questionbank.Topic `json:"topic"`
	Kind      string             `json:"question_type"`
	Outcome   Outcome            `json:"result"`
	Points    int                `json:"points"`
	SessionID string             `json:"session_id,omitempty"`
}
