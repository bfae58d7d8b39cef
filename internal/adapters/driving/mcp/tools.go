package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

const defaultToolLimit = 10

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query   string   `json:"query,omitempty" jsonschema:"free-text query, e.g. csci 5 or intro to programming"`
	Filters []string `json:"filters,omitempty" jsonschema:"structured filters as key:value, e.g. dept:csci or code:csci131"`
	Term    string   `json:"term,omitempty" jsonschema:"term to search, e.g. FA2023"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Offset  int      `json:"offset,omitempty" jsonschema:"number of results to skip"`
	Explain bool     `json:"explain,omitempty" jsonschema:"include which categories matched"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results     []SearchResultOutput `json:"results"`
	Count       int                  `json:"count"`
	Suggestions []string             `json:"suggestions,omitempty"`
}

// SearchResultOutput represents a single ranked section.
type SearchResultOutput struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Instructors []string `json:"instructors,omitempty"`
	Campus      string   `json:"campus,omitempty"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	Matches     []string `json:"matches,omitempty"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"query whose words may be misspelled department codes"`
	Term  string `json:"term,omitempty" jsonschema:"term whose departments are considered"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Departments []string `json:"departments"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Rank course sections against a query and structured filters",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest department codes close to the words of a query",
	}, s.handleSuggest)
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultToolLimit
	}

	opts := domain.SearchOptions{
		Limit:   limit,
		Offset:  input.Offset,
		Explain: input.Explain,
	}

	term, err := parseTerm(input.Term)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	opts.Term = term

	for _, raw := range input.Filters {
		f, err := domain.ParseFilter(raw)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("filter %q: %w", raw, err)
		}
		opts.Filters = append(opts.Filters, f)
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		sec := &results[i].Section
		out := SearchResultOutput{
			Code:        sec.Identifier.LongCode(),
			Title:       sec.Course.Title,
			Instructors: sec.InstructorNames(),
			Campus:      string(sec.Campus),
			Description: sec.Course.Description,
			Score:       results[i].Score,
		}
		for _, m := range results[i].Matches {
			kind := "partial"
			if m.Exact {
				kind = "exact"
			}
			out.Matches = append(out.Matches, m.Category.String()+":"+kind)
		}
		output.Results[i] = out
	}

	if len(results) == 0 && input.Query != "" {
		if suggestions, err := s.ports.Search.Suggest(ctx, input.Query, term); err == nil {
			output.Suggestions = suggestions
		}
	}

	return nil, output, nil
}

func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	term, err := parseTerm(input.Term)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	departments, err := s.ports.Search.Suggest(ctx, input.Query, term)
	if err != nil {
		return nil, SuggestOutput{}, err
	}
	if departments == nil {
		departments = []string{}
	}
	return nil, SuggestOutput{Departments: departments}, nil
}

func parseTerm(s string) (*domain.TermIdentifier, error) {
	if s == "" {
		return nil, nil
	}
	term, err := domain.ParseTermIdentifier(s)
	if err != nil {
		return nil, err
	}
	return &term, nil
}
