package tui

import (
	"context"
	"sync"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// MockSearchService is a mock implementation of driving.SearchService.
type MockSearchService struct {
	mu          sync.Mutex
	results     []domain.SearchResult
	suggestions []string
	err         error
	queries     []string
	filters     [][]domain.Filter
}

func (m *MockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	m.filters = append(m.filters, opts.Filters)
	return m.results, m.err
}

func (m *MockSearchService) Suggest(
	_ context.Context,
	_ string,
	_ *domain.TermIdentifier,
) ([]string, error) {
	return m.suggestions, nil
}

func testResults() []domain.SearchResult {
	sec := func(dept string, number int, title string) domain.Section {
		return domain.Section{
			Identifier: domain.SectionIdentifier{
				Department:    dept,
				CourseNumber:  number,
				Affiliation:   "HM",
				SectionNumber: 1,
				Year:          2023,
				Term:          domain.TermFall,
			},
			Course:      domain.Course{Title: title, Description: "About " + title + "."},
			Instructors: []domain.Instructor{{Name: "Ada Lovelace"}},
		}
	}
	return []domain.SearchResult{
		{Section: sec("CSCI", 5, "Intro to Computer Science"), Score: 12416},
		{Section: sec("CSCI", 131, "Programming Languages"), Score: 160},
	}
}
