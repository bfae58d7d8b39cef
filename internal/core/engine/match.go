package engine

import (
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// EmptyQueryScore is the score every section gets for an empty query.
const EmptyQueryScore = 1

// query is a lower-cased query string and its tokens, prepared once per section.
type query struct {
	text   string
	tokens []string
}

func newQuery(text string) query {
	lower := strings.ToLower(text)
	return query{text: lower, tokens: Tokenize(lower)}
}

// token returns the i-th token, or "" when out of range.
func (q query) token(i int) string {
	if i < len(q.tokens) {
		return q.tokens[i]
	}
	return ""
}

// categoryMatcher appends the matches for one category to dst.
type categoryMatcher func(dst []domain.Match, q query, s *domain.Section) []domain.Match

// matchers is indexed by category, so every category has an entry.
var matchers = [domain.NumMatchCategories]categoryMatcher{
	domain.MatchCode:         matchCode,
	domain.MatchTitle:        matchTitle,
	domain.MatchDepartment:   matchDepartment,
	domain.MatchCourseNumber: matchCourseNumber,
	domain.MatchInstructor:   matchInstructor,
	domain.MatchDescription:  matchDescription,
	domain.MatchCourseArea:   matchNothing,
	domain.MatchCampus:       matchNothing,
}

// Matches returns every match of the query against the section, in
// category priority order. The empty query is not special-cased here; see
// MatchText.
func Matches(text string, s *domain.Section) []domain.Match {
	q := newQuery(text)
	var matches []domain.Match
	for _, m := range matchers {
		matches = m(matches, q, s)
	}
	return matches
}

// MatchText scores a section against a free-text query. ok is false when
// the section does not match at all and should be excluded. The empty query
// matches everything with EmptyQueryScore.
func MatchText(text string, s *domain.Section) (score int, ok bool) {
	if text == "" {
		return EmptyQueryScore, true
	}
	return Score(Matches(text, s))
}

func exact(c domain.MatchCategory) domain.Match {
	return domain.Match{Category: c, Exact: true}
}

func fuzzy(c domain.MatchCategory) domain.Match {
	return domain.Match{Category: c}
}

// matchCode is exact when the section code starts with the joined tokens or
// the raw query. Otherwise each token must sit inside the code segment at the
// same position.
func matchCode(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	code := strings.ToLower(s.Identifier.Code())
	if strings.HasPrefix(code, strings.Join(q.tokens, " ")) || strings.HasPrefix(code, q.text) {
		return append(dst, exact(domain.MatchCode))
	}

	segments := s.Identifier.CodeSegments()
	if len(segments) < len(q.tokens) {
		return dst
	}
	for i, t := range q.tokens {
		if !strings.Contains(segments[i], t) {
			return dst
		}
	}
	return append(dst, fuzzy(domain.MatchCode))
}

func matchTitle(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	title := strings.ToLower(s.Course.Title)
	switch {
	case title == q.text:
		return append(dst, exact(domain.MatchTitle))
	case strings.Contains(title, q.text):
		return append(dst, fuzzy(domain.MatchTitle))
	}

	fragments := strings.Split(title, " ")
	for _, t := range q.tokens {
		if slices.Contains(fragments, t) {
			return append(dst, fuzzy(domain.MatchTitle))
		}
	}
	return dst
}

// matchDepartment only compares the first token for an exact hit, so that
// e.g. "lit intro" favours the intro course over the whole LIT department.
func matchDepartment(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	dept := strings.ToLower(s.Identifier.Department)
	if len(q.tokens) > 0 && q.tokens[0] == dept {
		return append(dst, exact(domain.MatchDepartment))
	}
	for _, t := range q.tokens {
		if strings.Contains(dept, t) {
			return append(dst, fuzzy(domain.MatchDepartment))
		}
	}
	return dst
}

func matchCourseNumber(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	number := s.Identifier.CourseNumber
	if parsesTo(q.token(0), number) || parsesTo(q.token(1), number) {
		return append(dst, exact(domain.MatchCourseNumber))
	}

	digits := strconv.Itoa(number)
	for _, t := range q.tokens {
		if strings.Contains(digits, t) {
			return append(dst, fuzzy(domain.MatchCourseNumber))
		}
	}
	return dst
}

// parsesTo reports whether token is a base-10 integer equal to n. Letters,
// empty tokens and overflow are non-matches.
func parsesTo(token string, n int) bool {
	v, err := strconv.Atoi(token)
	return err == nil && v == n
}

// matchInstructor compares the whole query, not tokens. Every instructor
// whose name contains the query adds its own fuzzy match.
func matchInstructor(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	names := make([]string, len(s.Instructors))
	for i, instr := range s.Instructors {
		names[i] = strings.ToLower(instr.Name)
	}

	if slices.Contains(names, q.text) {
		return append(dst, exact(domain.MatchInstructor))
	}
	for _, name := range names {
		if strings.Contains(name, q.text) {
			dst = append(dst, fuzzy(domain.MatchInstructor))
		}
	}
	return dst
}

// matchDescription adds one fuzzy match per token found in the description,
// repeated tokens included.
func matchDescription(dst []domain.Match, q query, s *domain.Section) []domain.Match {
	description := strings.ToLower(s.Course.Description)
	if description == q.text {
		return append(dst, exact(domain.MatchDescription))
	}
	for _, t := range q.tokens {
		if strings.Contains(description, t) {
			dst = append(dst, fuzzy(domain.MatchDescription))
		}
	}
	return dst
}

// matchNothing backs the course-area and campus categories, which do not
// take part in text matching yet.
func matchNothing(dst []domain.Match, _ query, _ *domain.Section) []domain.Match {
	return dst
}
