package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
)

// Ensure SectionStore implements the interface.
var _ driven.SectionStore = (*SectionStore)(nil)

// SectionStore is an in-memory implementation of driven.SectionStore.
// Contents are lost when the process exits.
type SectionStore struct {
	mu       sync.RWMutex
	sections map[string]domain.Section
	imports  []domain.ImportRecord
}

// NewSectionStore creates a new in-memory section store.
func NewSectionStore() *SectionStore {
	return &SectionStore{
		sections: make(map[string]domain.Section),
	}
}

// ReplaceTerm removes every section of term, then stores sections.
func (s *SectionStore) ReplaceTerm(_ context.Context, term domain.TermIdentifier, sections []domain.Section) error {
	for i := range sections {
		if got := sections[i].Identifier.TermID(); got != term {
			return fmt.Errorf("%w: %s", domain.ErrTermMismatch, sections[i].Identifier.LongCode())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for code, section := range s.sections {
		if section.Identifier.TermID() == term {
			delete(s.sections, code)
		}
	}
	for _, section := range sections {
		s.sections[section.Identifier.LongCode()] = section
	}
	return nil
}

// ListSections returns the sections of term, or all sections when term is
// nil, ordered by long code.
func (s *SectionStore) ListSections(_ context.Context, term *domain.TermIdentifier) ([]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.sections))
	for code, section := range s.sections {
		if term == nil || section.Identifier.TermID() == *term {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)

	sections := make([]domain.Section, len(codes))
	for i, code := range codes {
		sections[i] = s.sections[code]
	}
	return sections, nil
}

// GetSection retrieves a section by long code.
func (s *SectionStore) GetSection(_ context.Context, longCode string) (*domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	section, ok := s.sections[longCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &section, nil
}

// ListTerms returns every term with sections, oldest first.
func (s *SectionStore) ListTerms(_ context.Context) ([]domain.TermIdentifier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[domain.TermIdentifier]bool)
	var terms []domain.TermIdentifier
	for _, section := range s.sections {
		term := section.Identifier.TermID()
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	slices.SortFunc(terms, compareTerms)
	return terms, nil
}

// SaveImport records a completed import.
func (s *SectionStore) SaveImport(_ context.Context, rec domain.ImportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports = append(s.imports, rec)
	return nil
}

// ListImports returns recorded imports, newest first.
func (s *SectionStore) ListImports(_ context.Context) ([]domain.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	imports := slices.Clone(s.imports)
	slices.Reverse(imports)
	slices.SortStableFunc(imports, func(a, b domain.ImportRecord) int {
		return b.ImportedAt.Compare(a.ImportedAt)
	})
	return imports, nil
}

func compareTerms(a, b domain.TermIdentifier) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return strings.Compare(string(a.Term), string(b.Term))
	}
}
