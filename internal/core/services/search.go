package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/engine"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// MaxSuggestDistance is the largest edit distance offered as a "did you mean" hint.
const MaxSuggestDistance = 2

// SearchService ranks catalog sections against free-text queries.
type SearchService struct {
	store driven.SectionStore

	limit       int
	workers     int
	threshold   int
	defaultTerm *domain.TermIdentifier

	pool *ants.Pool
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithDefaultLimit sets the result limit used when a search gives none.
func WithDefaultLimit(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithWorkers sets the size of the scoring worker pool. One disables
// parallel scoring.
func WithWorkers(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithParallelThreshold sets the candidate count from which scoring is
// spread over the worker pool.
func WithParallelThreshold(n int) SearchOption {
	return func(s *SearchService) {
		if n > 0 {
			s.threshold = n
		}
	}
}

// WithDefaultTerm sets the term searched when a search names none.
func WithDefaultTerm(term domain.TermIdentifier) SearchOption {
	return func(s *SearchService) {
		if !term.IsZero() {
			s.defaultTerm = &term
		}
	}
}

// NewSearchService creates a new search service. Call Release when done.
func NewSearchService(store driven.SectionStore, opts ...SearchOption) (*SearchService, error) {
	defaults := domain.DefaultAppSettings().Search
	s := &SearchService{
		store:     store,
		limit:     defaults.Limit,
		workers:   defaults.Workers,
		threshold: defaults.ParallelThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.workers > 1 {
		pool, err := ants.NewPool(s.workers)
		if err != nil {
			return nil, fmt.Errorf("create scoring pool: %w", err)
		}
		s.pool = pool
	}
	return s, nil
}

// Release frees the scoring worker pool.
func (s *SearchService) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search filters the candidate sections, scores them against the query and
// returns one page of results, best first.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if opts.Offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", domain.ErrInvalidInput, opts.Offset)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.limit
	}
	logger.Debug("Limit: %d, Offset: %d", limit, opts.Offset)

	term := s.resolveTerm(opts.Term)
	candidates, err := s.store.ListSections(ctx, term)
	if err != nil {
		logger.Warn("Loading candidates failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Candidates: %d (term %s)", len(candidates), termLabel(term))

	if len(opts.Filters) > 0 {
		candidates = engine.Filter(candidates, opts.Filters)
		logger.Debug("After %d filters: %d", len(opts.Filters), len(candidates))
	}

	var scored []engine.Scored
	if query == "" {
		logger.Debug("Empty query, keeping filtered order")
		scored = make([]engine.Scored, len(candidates))
		for i := range candidates {
			scored[i] = engine.Scored{Index: i, Score: engine.EmptyQueryScore}
		}
	} else {
		scored, err = s.score(ctx, query, candidates)
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		engine.SortScored(scored)
	}
	logger.Info("Matched %d of %d sections", len(scored), len(candidates))

	page := paginate(scored, opts.Offset, limit)
	results := make([]domain.SearchResult, len(page))
	for i, sc := range page {
		section := candidates[sc.Index]
		results[i] = domain.SearchResult{Section: section, Score: sc.Score}
		if opts.Explain && query != "" {
			results[i].Matches = engine.Matches(query, &section)
		}
	}
	return results, nil
}

// Suggest returns department codes close to the first query token.
func (s *SearchService) Suggest(
	ctx context.Context, query string, term *domain.TermIdentifier,
) ([]string, error) {
	if s.store == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	sections, err := s.store.ListSections(ctx, s.resolveTerm(term))
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	seen := make(map[string]bool)
	var departments []string
	for i := range sections {
		dept := sections[i].Identifier.Department
		if !seen[dept] {
			seen[dept] = true
			departments = append(departments, dept)
		}
	}

	suggestions := engine.SuggestDepartments(query, departments, MaxSuggestDistance)
	logger.Debug("Suggestions for %q: %v", query, suggestions)
	return suggestions, nil
}

func (s *SearchService) resolveTerm(term *domain.TermIdentifier) *domain.TermIdentifier {
	if term != nil {
		return term
	}
	return s.defaultTerm
}

// score runs the engine over every candidate. Large candidate sets are
// split into contiguous chunks scored on the pool; chunk results are
// concatenated in input order so the stable sort sees the same sequence as
// the sequential path.
func (s *SearchService) score(ctx context.Context, query string, candidates []domain.Section) ([]engine.Scored, error) {
	defer logger.Timed("scoring")()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pool == nil || len(candidates) < s.threshold {
		return engine.ScoreAll(query, candidates), nil
	}

	chunkSize := (len(candidates) + s.workers - 1) / s.workers
	chunks := make([][]engine.Scored, 0, s.workers)
	for lo := 0; lo < len(candidates); lo += chunkSize {
		chunks = append(chunks, nil)
	}
	logger.Debug("Scoring %d candidates in %d chunks", len(candidates), len(chunks))

	var wg sync.WaitGroup
	for i := range chunks {
		lo := i * chunkSize
		hi := min(lo+chunkSize, len(candidates))
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			part := engine.ScoreAll(query, candidates[lo:hi])
			for j := range part {
				part[j].Index += lo
			}
			chunks[i] = part
		}

		wg.Add(1)
		if err := s.pool.Submit(task); err != nil {
			logger.Warn("Pool submit failed, scoring chunk inline: %v", err)
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var scored []engine.Scored
	for _, part := range chunks {
		scored = append(scored, part...)
	}
	return scored, nil
}

func paginate(scored []engine.Scored, offset, limit int) []engine.Scored {
	if offset >= len(scored) {
		return nil
	}
	end := min(offset+limit, len(scored))
	return scored[offset:end]
}

func termLabel(term *domain.TermIdentifier) string {
	if term == nil {
		return "all"
	}
	return term.String()
}
