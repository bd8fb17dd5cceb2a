// internal/model/level.go
package model

import "strings"

// Level is a CEFR proficiency tag controlling exercise difficulty.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// Levels lists the recognized levels in ascending order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

// ParseLevel normalizes and validates a level string. Anything outside
// the five recognized values is rejected.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", ErrInvalidLevel
}

// IsValid reports whether l is one of the recognized levels.
func (l Level) IsValid() bool {
	_, err := ParseLevel(string(l))
	return err == nil
}

// AtLeast reports whether l is at or above other in CEFR order.
func (l Level) AtLeast(other Level) bool {
	return levelRank(l) >= levelRank(other)
}

func levelRank(l Level) int {
	for i, known := range Levels {
		if l == known {
			return i
		}
	}
	return -1
}
