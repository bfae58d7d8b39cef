package driving

import (
	"context"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// SearchService ranks and filters catalog sections.
type SearchService interface {
	// Search ranks the sections of a term against a free-text query after
	// applying the structured filters in opts.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Suggest returns department codes close to the first query token,
	// for "did you mean" hints. A nil term means the default term.
	Suggest(ctx context.Context, query string, term *domain.TermIdentifier) ([]string, error)
}
