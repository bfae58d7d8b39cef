package engine

import (
	"slices"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// Scored pairs a section with its score.
type Scored struct {
	// Index is the position of the section in the candidate slice.
	Index int

	// Score is the relevance score.
	Score int
}

// ScoreAll scores every section and returns those that match, in input
// order. Index is relative to the slice passed in.
func ScoreAll(text string, sections []domain.Section) []Scored {
	scored := make([]Scored, 0, len(sections))
	for i := range sections {
		if score, ok := MatchText(text, &sections[i]); ok {
			scored = append(scored, Scored{Index: i, Score: score})
		}
	}
	return scored
}

// SortScored orders by descending score. Equal scores keep input order.
func SortScored(scored []Scored) {
	slices.SortStableFunc(scored, func(a, b Scored) int {
		return b.Score - a.Score
	})
}

// Filter returns the sections that pass every filter, in input order.
func Filter(sections []domain.Section, fs []domain.Filter) []domain.Section {
	if len(fs) == 0 {
		return sections
	}
	kept := make([]domain.Section, 0, len(sections))
	for i := range sections {
		if FilterSection(&sections[i], fs) {
			kept = append(kept, sections[i])
		}
	}
	return kept
}

// Rank narrows sections with the filters, scores the rest against the
// query and returns the matches best first. Sections that do not match the
// query are dropped. An empty query keeps every filtered section, in input
// order, with EmptyQueryScore.
func Rank(text string, sections []domain.Section, fs []domain.Filter) []domain.SearchResult {
	candidates := Filter(sections, fs)
	scored := ScoreAll(text, candidates)
	SortScored(scored)

	results := make([]domain.SearchResult, len(scored))
	for i, sc := range scored {
		results[i] = domain.SearchResult{Section: candidates[sc.Index], Score: sc.Score}
	}
	return results
}
