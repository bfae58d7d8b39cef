package driving

import (
	"context"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// CatalogService manages the section catalog.
type CatalogService interface {
	// Import replaces every section of term with sections and records the import.
	Import(ctx context.Context, term domain.TermIdentifier, source string, sections []domain.Section) (*domain.ImportRecord, error)

	// Sections lists the sections of a term, or of every term when term is nil.
	Sections(ctx context.Context, term *domain.TermIdentifier) ([]domain.Section, error)

	// Section retrieves a section by its long code.
	Section(ctx context.Context, longCode string) (*domain.Section, error)

	// Terms lists the terms that have sections, oldest first.
	Terms(ctx context.Context) ([]domain.TermIdentifier, error)

	// Imports lists past imports, newest first.
	Imports(ctx context.Context) ([]domain.ImportRecord, error)
}
