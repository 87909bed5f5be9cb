package progress

import (
	"fmt"
	"strings"
)

// Grade is the learner's school grade. It is informational and does not
// affect problem selection.
type Grade string

const (
	Grade7  Grade = "Grade 7"
	Grade8  Grade = "Grade 8"
	Grade9  Grade = "Grade 9"
	Grade10 Grade = "Grade 10"
	Grade11 Grade = "Grade 11"
	Grade12 Grade = "Grade 12"
)

// DefaultGrade is assigned to first-time learners.
const DefaultGrade = Grade7

// Grades returns the selectable grades in order.
func Grades() []Grade {
	return []Grade{Grade7, Grade8, Grade9, Grade10, Grade11, Grade12}
}

// ParseGrade accepts "Grade 9", "grade 9" or "9".
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	for _, g := range Grades() {
		if strings.EqualFold(s, string(g)) || s == strings.TrimPrefix(string(g), "Grade ") {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown grade %q", s)
}
