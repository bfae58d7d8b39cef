package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

func codes(results []domain.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Section.Identifier.Code()
	}
	return out
}

func catalog() []domain.Section {
	csci2 := csciSection()
	csci2.Identifier.SectionNumber = 2

	cs131 := csciSection()
	cs131.Identifier.CourseNumber = 131
	cs131.Course.Title = "Programming Languages"
	cs131.Course.Description = "Semantics of programming languages."
	cs131.Instructors = nil

	return []domain.Section{mathSection(), csciSection(), csci2, cs131}
}

func TestRank_OrdersByScore(t *testing.T) {
	results := Rank("csci 131", catalog(), nil)

	require.NotEmpty(t, results)
	assert.Equal(t, "CSCI 131 HM-01", results[0].Section.Identifier.Code())
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRank_DropsNonMatches(t *testing.T) {
	results := Rank("math", catalog(), nil)

	assert.Equal(t, []string{"MATH 005 HM-01"}, codes(results))
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	results := Rank("programming", catalog(), nil)

	// The two intro sections score the same and stay in catalog order.
	require.Len(t, results, 3)
	assert.Equal(t, "CSCI 131 HM-01", results[0].Section.Identifier.Code())
	assert.Equal(t, []string{"CSCI 005 HM-01", "CSCI 005 HM-02"}, codes(results[1:]))
	assert.Equal(t, results[1].Score, results[2].Score)
}

func TestRank_EmptyQuery(t *testing.T) {
	results := Rank("", catalog(), nil)

	require.Len(t, results, 4)
	assert.Equal(t, codes(Rank("", catalog(), nil)), codes(results))
	assert.Equal(t, "MATH 005 HM-01", results[0].Section.Identifier.Code())
	for _, r := range results {
		assert.Equal(t, EmptyQueryScore, r.Score)
	}
}

func TestRank_FiltersFirst(t *testing.T) {
	fs := []domain.Filter{text(domain.FilterCourseCode, "csci 131")}

	results := Rank("programming", catalog(), fs)

	assert.Equal(t, []string{"CSCI 131 HM-01"}, codes(results))
}

func TestRank_NoSections(t *testing.T) {
	assert.Empty(t, Rank("csci", nil, nil))
}

func TestFilter_NoFiltersReturnsInput(t *testing.T) {
	sections := catalog()
	assert.Equal(t, sections, Filter(sections, nil))
}

func TestScoreAll_IndexesIntoInput(t *testing.T) {
	sections := catalog()

	scored := ScoreAll("math", sections)

	require.Len(t, scored, 1)
	assert.Equal(t, 0, scored[0].Index)
}

func TestSortScored_Stable(t *testing.T) {
	scored := []Scored{{0, 4}, {1, 8}, {2, 4}, {3, 8}}

	SortScored(scored)

	assert.Equal(t, []Scored{{1, 8}, {3, 8}, {0, 4}, {2, 4}}, scored)
}

func TestRank_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		sections   []domain.Section
		wantCodes  []string
		wantScores []int
	}{
		{
			name:       "department query keeps its course and drops the other",
			query:      "csci",
			sections:   []domain.Section{mathSection(), csciSection()},
			wantCodes:  []string{"CSCI 005 HM-01"},
			wantScores: []int{(128 + 32) * domain.ExactMultiplier},
		},
		{
			name:       "same input in the other order",
			query:      "csci",
			sections:   []domain.Section{csciSection(), mathSection()},
			wantCodes:  []string{"CSCI 005 HM-01"},
			wantScores: []int{(128 + 32) * domain.ExactMultiplier},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Rank(tt.query, tt.sections, nil)

			assert.Equal(t, tt.wantCodes, codes(results))
			scores := make([]int, len(results))
			for i, r := range results {
				scores[i] = r.Score
			}
			assert.Equal(t, tt.wantScores, scores)
		})
	}
}
