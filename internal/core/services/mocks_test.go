package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
)

// mockSectionStore implements driven.SectionStore with injectable errors
// and call recording.
type mockSectionStore struct {
	mu sync.Mutex

	sections []domain.Section
	imports  []domain.ImportRecord

	listErr    error
	replaceErr error
	saveErr    error

	listedTerms  []*domain.TermIdentifier
	replacedTerm domain.TermIdentifier
	replaced     []domain.Section
}

var _ driven.SectionStore = (*mockSectionStore)(nil)

func (m *mockSectionStore) ReplaceTerm(_ context.Context, term domain.TermIdentifier, sections []domain.Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replacedTerm = term
	m.replaced = sections
	return nil
}

func (m *mockSectionStore) ListSections(_ context.Context, term *domain.TermIdentifier) ([]domain.Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listedTerms = append(m.listedTerms, term)
	if m.listErr != nil {
		return nil, m.listErr
	}
	if term == nil {
		return m.sections, nil
	}
	var out []domain.Section
	for _, s := range m.sections {
		if s.Identifier.TermID() == *term {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSectionStore) GetSection(_ context.Context, longCode string) (*domain.Section, error) {
	for _, s := range m.sections {
		if s.Identifier.LongCode() == longCode {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSectionStore) ListTerms(_ context.Context) ([]domain.TermIdentifier, error) {
	return nil, m.listErr
}

func (m *mockSectionStore) SaveImport(_ context.Context, rec domain.ImportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.imports = append(m.imports, rec)
	return nil
}

func (m *mockSectionStore) ListImports(_ context.Context) ([]domain.ImportRecord, error) {
	return m.imports, nil
}

var (
	fa23 = domain.TermIdentifier{Year: 2023, Term: domain.TermFall}
	sp24 = domain.TermIdentifier{Year: 2024, Term: domain.TermSpring}
)

func newSection(dept string, number, sectionNumber int, title string, term domain.TermIdentifier) domain.Section {
	return domain.Section{
		Identifier: domain.SectionIdentifier{
			Department:    dept,
			CourseNumber:  number,
			Affiliation:   "HM",
			SectionNumber: sectionNumber,
			Year:          term.Year,
			Term:          term.Term,
		},
		Course: domain.Course{Title: title},
	}
}

// testCatalog is a small two-term catalog in long-code order.
func testCatalog() []domain.Section {
	return []domain.Section{
		newSection("CSCI", 5, 1, "Intro to Computer Science", fa23),
		newSection("CSCI", 5, 2, "Intro to Computer Science", fa23),
		newSection("CSCI", 131, 1, "Programming Languages", fa23),
		newSection("MATH", 30, 1, "Calculus", fa23),
		newSection("CSCI", 5, 1, "Intro to Computer Science", sp24),
		newSection("PHYS", 24, 1, "Mechanics", sp24),
	}
}
