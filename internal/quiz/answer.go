package quiz

import (
	"strings"
	"unicode"
)

// Normalize removes all whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// CheckAnswer compares the learner's input against the canonical answer.
//
// Both sides are normalized (whitespace stripped, lowercased) and compared
// exactly. There is no numeric equivalence: "1/2" does not match "0.5".
// Empty input never matches.
func CheckAnswer(submitted, canonical string) bool {
	s := Normalize(submitted)
	if s == "" {
		return false
	}
	return s == Normalize(canonical)
}
