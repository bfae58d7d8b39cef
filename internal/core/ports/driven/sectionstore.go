package driven

import (
	"context"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// SectionStore persists catalog sections and import history.
type SectionStore interface {
	// ReplaceTerm atomically replaces every section of term.
	ReplaceTerm(ctx context.Context, term domain.TermIdentifier, sections []domain.Section) error

	// ListSections returns the sections of a term, or of every term when
	// term is nil, ordered by long code.
	ListSections(ctx context.Context, term *domain.TermIdentifier) ([]domain.Section, error)

	// GetSection retrieves a section by long code.
	// Returns domain.ErrNotFound if it does not exist.
	GetSection(ctx context.Context, longCode string) (*domain.Section, error)

	// ListTerms returns the terms that have sections, oldest first.
	ListTerms(ctx context.Context) ([]domain.TermIdentifier, error)

	// SaveImport records a completed import.
	SaveImport(ctx context.Context, rec domain.ImportRecord) error

	// ListImports returns recorded imports, newest first.
	ListImports(ctx context.Context) ([]domain.ImportRecord, error)
}
