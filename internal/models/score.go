package models

import (
	"fmt"

	"github.com/dmitrijs2005/gophmarks/internal/common"
)

// Subject is one column of a score record.
type Subject string

const (
	Math      Subject = "Math"
	English   Subject = "English"
	Chemistry Subject = "Chemistry"
	Physics   Subject = "Physics"
	Biology   Subject = "Biology"
	Geography Subject = "Geography"
	Economics Subject = "Economics"
)

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// Subjects lists every subject in ledger column order.
var Subjects = []Subject{Math, English, Chemistry, Physics, Biology, Geography, Economics}

// IsSubject reports whether s is one of the fixed subjects.
func IsSubject(s Subject) bool {
	for _, known := range Subjects {
		if known == s {
			return true
		}
	}
	return false
}

// ScoreRecord is a single submission: one score per subject.
type ScoreRecord map[Subject]int

// ValidateScore checks a single value against [MinScore, MaxScore].
func ValidateScore(v int) error {
	if v < MinScore || v > MaxScore {
		return fmt.Errorf("%w: %d not in [%d, %d]", common.ErrScoreOutOfRange, v, MinScore, MaxScore)
	}
	return nil
}

// Validate requires all seven subjects, nothing else, and every value in range.
func (r ScoreRecord) Validate() error {
	for s := range r {
		if !IsSubject(s) {
			return fmt.Errorf("%w: %q", common.ErrUnknownSubject, s)
		}
	}
	for _, s := range Subjects {
		v, ok := r[s]
		if !ok {
			return fmt.Errorf("%w: %s", common.ErrMissingSubject, s)
		}
		if err := ValidateScore(v); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

// Values returns the scores in Subjects order. Absent subjects read as 0.
func (r ScoreRecord) Values() []int {
	out := make([]int, len(Subjects))
	for i, s := range Subjects {
		out[i] = r[s]
	}
	return out
}
