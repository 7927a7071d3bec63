// Package validation holds the stateless field predicates shared by the
// entity packages. Each predicate checks one rule; callers collect every
// failing rule through apperr.Collector instead of stopping at the first.
package validation

import (
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	MaxPrice          = 10000.0
	MaxMessageLength  = 255
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

var (
	// 2-45 chars, must start with a letter or digit.
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._\-]{1,44}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func ValidName(s string) bool {
	return nameRegex.MatchString(strings.TrimSpace(s))
}

func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

func ValidPassword(s string) bool {
	if len(s) < MinPasswordLength || len(s) > MaxPasswordLength {
		return false
	}
	return !strings.ContainsAny(s, " \t\n\r")
}

func ValidPrice(p float64) bool {
	return p >= 0 && p <= MaxPrice
}

func ValidAmount(n int) bool {
	return n >= 0
}

func ValidMessage(s string) bool {
	return len(s) <= MaxMessageLength
}

// ParseDate parses a calendar date in the fixed textual layout.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func EndBeforeStart(start, end time.Time) bool {
	return end.Before(start)
}

// StartAlreadyPassed compares date-only: a start date of today is fine.
func StartAlreadyPassed(start, now time.Time) bool {
	today := Truncate(now)
	return start.Before(today)
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
