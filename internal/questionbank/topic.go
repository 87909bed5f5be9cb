package questionbank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopic is returned by ParseTopic for input outside the fixed topic set.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is a math subject area. Values double as display names.
type Topic string

const (
	TopicAlgebra      Topic = "Algebra"
	TopicGeometry     Topic = "Geometry"
	TopicTrigonometry Topic = "Trigonometry"
	TopicCalculus     Topic = "Calculus"
	TopicStatistics   Topic = "Statistics"
)

// Topics returns all topics in display order.
func Topics() []Topic {
	return []Topic{
		TopicAlgebra,
		TopicGeometry,
		TopicTrigonometry,
		TopicCalculus,
		TopicStatistics,
	}
}

// Valid reports whether t is one of the fixed topics.
func (t Topic) Valid() bool {
	for _, known := range Topics() {
		if t == known {
			return true
		}
	}
	return false
}

// Icon returns the display icon for the topic.
func (t Topic) Icon() string {
	switch t {
	case TopicAlgebra:
		return "x"
	case TopicGeometry:
		return "△"
	case TopicTrigonometry:
		return "θ"
	case TopicCalculus:
		return "∫"
	case TopicStatistics:
		return "σ"
	default:
		return "•"
	}
}

// ParseTopic resolves user input (case-insensitive) to a Topic.
func ParseTopic(s string) (Topic, error) {
	s = strings.TrimSpace(s)
	for _, t := range Topics() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
}
