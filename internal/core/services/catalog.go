package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService imports and lists catalog sections.
type CatalogService struct {
	store driven.SectionStore
	now   func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.SectionStore) *CatalogService {
	return &CatalogService{
		store: store,
		now:   time.Now,
	}
}

// Import replaces every section of term. Sections without a term are
// stamped with it; sections of another term reject the whole import.
func (s *CatalogService) Import(
	ctx context.Context, term domain.TermIdentifier, source string, sections []domain.Section,
) (*domain.ImportRecord, error) {
	logger.Section("Catalog Import")

	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if !term.Term.IsValid() || term.Year <= 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTerm, term.String())
	}
	if len(sections) == 0 {
		return nil, domain.ErrNoSections
	}

	stamped := make([]domain.Section, len(sections))
	seen := make(map[string]bool, len(sections))
	for i, section := range sections {
		id := &section.Identifier
		switch {
		case id.TermID().IsZero():
			id.Year, id.Term = term.Year, term.Term
		case id.TermID() != term:
			return nil, fmt.Errorf("%w: %s in import for %s", domain.ErrTermMismatch, id.LongCode(), term)
		}

		code := id.LongCode()
		if seen[code] {
			logger.Warn("Duplicate section %s, keeping the last", code)
		}
		seen[code] = true
		stamped[i] = section
	}

	if err := s.store.ReplaceTerm(ctx, term, stamped); err != nil {
		return nil, fmt.Errorf("replace sections for %s: %w", term, err)
	}

	rec := domain.ImportRecord{
		ID:         uuid.New().String(),
		Term:       term,
		Sections:   len(seen),
		Source:     source,
		ImportedAt: s.now().UTC(),
	}
	if err := s.store.SaveImport(ctx, rec); err != nil {
		return nil, fmt.Errorf("record import: %w", err)
	}

	logger.Info("Imported %d sections for %s from %s", rec.Sections, term, source)
	return &rec, nil
}

// Sections lists the sections of a term, or of every term when term is nil.
func (s *CatalogService) Sections(ctx context.Context, term *domain.TermIdentifier) ([]domain.Section, error) {
	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	sections, err := s.store.ListSections(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// Section retrieves a section by long code.
func (s *CatalogService) Section(ctx context.Context, longCode string) (*domain.Section, error) {
	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if longCode == "" {
		return nil, fmt.Errorf("%w: empty section code", domain.ErrInvalidInput)
	}
	return s.store.GetSection(ctx, longCode)
}

// Terms lists the terms that have sections.
func (s *CatalogService) Terms(ctx context.Context) ([]domain.TermIdentifier, error) {
	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.store.ListTerms(ctx)
}

// Imports lists past imports, newest first.
func (s *CatalogService) Imports(ctx context.Context) ([]domain.ImportRecord, error) {
	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.store.ListImports(ctx)
}
