package domain

import "time"

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means the configured default.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Term restricts candidates to one term. Nil means the configured
	// default term, or every term when none is configured.
	Term *TermIdentifier

	// Filters are applied with AND semantics before scoring.
	Filters []Filter

	// Explain keeps the per-category matches on each result.
	Explain bool
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Section is the matched section.
	Section Section

	// Score is the relevance score. Higher ranks first.
	Score int

	// Matches lists how the query touched the section. Only set when
	// SearchOptions.Explain is true.
	Matches []Match `json:",omitempty"`
}

// ImportRecord describes one catalog import.
type ImportRecord struct {
	// ID is the unique identifier of the import.
	ID string

	// Term is the term whose sections were replaced.
	Term TermIdentifier

	// Sections is the number of sections imported.
	Sections int

	// Source describes where the sections came from, e.g. a file path.
	Source string

	// ImportedAt is when the import completed.
	ImportedAt time.Time
}
