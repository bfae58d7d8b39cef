package mcp

import (
	"context"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []string
	err         error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.results, m.err
}

func (m *mockSearchService) Suggest(
	_ context.Context,
	_ string,
	_ *domain.TermIdentifier,
) ([]string, error) {
	return m.suggestions, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	sections []domain.Section
	terms    []domain.TermIdentifier
	err      error

	gotTerm *domain.TermIdentifier
}

func (m *mockCatalogService) Import(
	_ context.Context,
	_ domain.TermIdentifier,
	_ string,
	_ []domain.Section,
) (*domain.ImportRecord, error) {
	return nil, m.err
}

func (m *mockCatalogService) Sections(_ context.Context, term *domain.TermIdentifier) ([]domain.Section, error) {
	m.gotTerm = term
	return m.sections, m.err
}

func (m *mockCatalogService) Section(_ context.Context, _ string) (*domain.Section, error) {
	return nil, m.err
}

func (m *mockCatalogService) Terms(_ context.Context) ([]domain.TermIdentifier, error) {
	return m.terms, m.err
}

func (m *mockCatalogService) Imports(_ context.Context) ([]domain.ImportRecord, error) {
	return nil, m.err
}

func testSection() domain.Section {
	return domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    "CSCI",
			CourseNumber:  5,
			Affiliation:   "HM",
			SectionNumber: 1,
			Year:          2023,
			Term:          domain.TermFall,
		},
		Course: domain.Course{
			Title:       "Intro to Computer Science",
			Description: "An introduction to programming.",
		},
		Instructors: []domain.Instructor{{Name: "Ada Lovelace"}},
		Campus:      domain.SchoolHarveyMudd,
	}
}
