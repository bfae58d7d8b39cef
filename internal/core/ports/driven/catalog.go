package driven

import (
	"context"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// CatalogReader loads sections from an external catalog source.
type CatalogReader interface {
	// Read returns every section in the source.
	Read(ctx context.Context) ([]domain.Section, error)

	// Source describes where sections are read from, e.g. a file path.
	Source() string
}
