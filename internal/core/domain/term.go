package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TermSeason is the season part of a term identifier.
type TermSeason string

// Available seasons.
const (
	// TermSpring is the spring semester.
	TermSpring TermSeason = "SP"

	// TermSummer is the summer session.
	TermSummer TermSeason = "SU"

	// TermFall is the fall semester.
	TermFall TermSeason = "FA"
)

// IsValid returns true if the season is recognised.
func (t TermSeason) IsValid() bool {
	switch t {
	case TermSpring, TermSummer, TermFall:
		return true
	default:
		return false
	}
}

// order returns the position of the season within a calendar year.
func (t TermSeason) order() int {
	switch t {
	case TermSpring:
		return 0
	case TermSummer:
		return 1
	case TermFall:
		return 2
	default:
		return -1
	}
}

// TermIdentifier names an academic term, e.g. FA2023.
type TermIdentifier struct {
	// Year is the calendar year.
	Year int

	// Term is the season within the year.
	Term TermSeason
}

// ParseTermIdentifier parses identifiers such as "FA2023" (case-insensitive).
func ParseTermIdentifier(s string) (TermIdentifier, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 6 {
		return TermIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidTerm, s)
	}

	season := TermSeason(s[:2])
	if !season.IsValid() {
		return TermIdentifier{}, fmt.Errorf("%w: unknown season %q", ErrInvalidTerm, s[:2])
	}

	year, err := strconv.Atoi(s[2:])
	if err != nil || year <= 0 {
		return TermIdentifier{}, fmt.Errorf("%w: bad year %q", ErrInvalidTerm, s[2:])
	}

	return TermIdentifier{Year: year, Term: season}, nil
}

// String renders the identifier as e.g. "FA2023".
func (t TermIdentifier) String() string {
	return fmt.Sprintf("%s%04d", t.Term, t.Year)
}

// IsZero reports whether the identifier is unset.
func (t TermIdentifier) IsZero() bool {
	return t.Year == 0 && t.Term == ""
}

// Before reports whether t is chronologically earlier than other.
func (t TermIdentifier) Before(other TermIdentifier) bool {
	if t.Year != other.Year {
		return t.Year < other.Year
	}
	return t.Term.order() < other.Term.order()
}
