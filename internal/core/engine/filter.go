package engine

import (
	"strings"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// MaxCodeFilterTokens is the most tokens a course-code filter may carry.
// More than that rejects every section.
const MaxCodeFilterTokens = 3

// filterFunc reports whether a section passes a filter with a non-nil payload.
type filterFunc func(s *domain.Section, data domain.FilterData) bool

// filters is indexed by filter key, so every kind has an entry.
var filters = [domain.NumFilterKeys]filterFunc{
	domain.FilterDepartment:   filterDepartment,
	domain.FilterTitle:        filterTitle,
	domain.FilterCampus:       passFilter,
	domain.FilterDescription:  filterDescription,
	domain.FilterCourseCode:   filterCourseCode,
	domain.FilterInstructor:   filterInstructor,
	domain.FilterScheduleDays: passFilter,
	domain.FilterCourseArea:   passFilter,
	domain.FilterMeetingTime:  passFilter,
}

// FilterSection reports whether the section passes every filter. Filters
// with a nil payload are skipped, so an all-null list matches everything.
func FilterSection(s *domain.Section, fs []domain.Filter) bool {
	for _, f := range fs {
		if f.Data == nil || !f.Key.IsValid() {
			continue
		}
		if !filters[f.Key](s, f.Data) {
			return false
		}
	}
	return true
}

func textOf(data domain.FilterData) string {
	if tf, ok := data.(domain.TextFilter); ok {
		return tf.Text
	}
	return ""
}

// filterDepartment lower-cases the department but not the filter text.
func filterDepartment(s *domain.Section, data domain.FilterData) bool {
	return strings.Contains(strings.ToLower(s.Identifier.Department), textOf(data))
}

// filterDescription lower-cases the description but not the filter text.
func filterDescription(s *domain.Section, data domain.FilterData) bool {
	return strings.Contains(strings.ToLower(s.Course.Description), textOf(data))
}

// filterTitle is case-insensitive on both sides.
func filterTitle(s *domain.Section, data domain.FilterData) bool {
	return strings.Contains(strings.ToLower(s.Course.Title), strings.ToLower(textOf(data)))
}

// filterCourseCode tokenizes the raw filter text. With three tokens the
// suffix, number and department must all match; with two, number and
// department; with one, department only.
func filterCourseCode(s *domain.Section, data domain.FilterData) bool {
	tokens := Tokenize(textOf(data))
	n := len(tokens)
	if n > MaxCodeFilterTokens {
		return false
	}

	id := s.Identifier
	if n >= 3 && !strings.Contains(id.Suffix, tokens[2]) {
		return false
	}
	if n >= 2 && !strings.Contains(id.PaddedCourseNumber(), tokens[1]) {
		return false
	}
	if n >= 1 && !strings.Contains(strings.ToLower(id.Department), tokens[0]) {
		return false
	}
	return true
}

// filterInstructor lower-cases instructor names but not the filter text.
func filterInstructor(s *domain.Section, data domain.FilterData) bool {
	text := textOf(data)
	for _, instr := range s.Instructors {
		if strings.Contains(strings.ToLower(instr.Name), text) {
			return true
		}
	}
	return false
}

// passFilter backs the filter kinds that are accepted but not enforced yet.
func passFilter(_ *domain.Section, _ domain.FilterData) bool {
	return true
}
