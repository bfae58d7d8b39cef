package domain

import "fmt"

// MatchCategory is a dimension along which a query can touch a section.
// Categories are declared in priority order, highest first.
type MatchCategory uint8

// Match categories.
const (
	// MatchCode is a hit on the full section code, e.g. "csci131".
	MatchCode MatchCategory = iota
	MatchTitle
	MatchDepartment
	MatchCourseNumber
	MatchInstructor
	MatchDescription
	MatchCourseArea
	MatchCampus

	// NumMatchCategories is the number of categories. It sizes the weight
	// table and the matcher dispatch table.
	NumMatchCategories
)

// ExactMultiplier scales the weight of an exact match. It exceeds the sum
// of every category weight, so a single exact hit outranks any combination
// of fuzzy hits.
const ExactMultiplier = 1 << 8

// categoryWeights holds one distinct power of two per category,
// 2^7 for the highest priority down to 2^0.
var categoryWeights = [NumMatchCategories]int{
	MatchCode:         1 << 7,
	MatchTitle:        1 << 6,
	MatchDepartment:   1 << 5,
	MatchCourseNumber: 1 << 4,
	MatchInstructor:   1 << 3,
	MatchDescription:  1 << 2,
	MatchCourseArea:   1 << 1,
	MatchCampus:       1 << 0,
}

var categoryNames = [NumMatchCategories]string{
	MatchCode:         "code",
	MatchTitle:        "title",
	MatchDepartment:   "department",
	MatchCourseNumber: "number",
	MatchInstructor:   "instructor",
	MatchDescription:  "description",
	MatchCourseArea:   "course-area",
	MatchCampus:       "campus",
}

// IsValid returns true if the category is one of the declared categories.
func (c MatchCategory) IsValid() bool {
	return c < NumMatchCategories
}

// Weight returns the fixed ranking weight of the category, or 0 if invalid.
func (c MatchCategory) Weight() int {
	if !c.IsValid() {
		return 0
	}
	return categoryWeights[c]
}

// String returns the category name.
func (c MatchCategory) String() string {
	if !c.IsValid() {
		return "unknown"
	}
	return categoryNames[c]
}

// MatchCategories returns every category in priority order.
func MatchCategories() []MatchCategory {
	all := make([]MatchCategory, NumMatchCategories)
	for i := range all {
		all[i] = MatchCategory(i)
	}
	return all
}

// Match records that a query touched a section along one category.
type Match struct {
	// Category is the dimension that matched.
	Category MatchCategory `json:"category"`

	// Exact distinguishes an exact hit from a fuzzy one.
	Exact bool `json:"exact"`
}

// Value returns the score contribution of the match.
func (m Match) Value() int {
	if m.Exact {
		return m.Category.Weight() * ExactMultiplier
	}
	return m.Category.Weight()
}

// MarshalText renders the category by name so explained results read well as JSON.
func (c MatchCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText resolves a category by name, the inverse of MarshalText.
func (c *MatchCategory) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = MatchCategory(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown match category %q", ErrInvalidInput, text)
}
