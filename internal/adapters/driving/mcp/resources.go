package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

const uriScheme = "catalog://"

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "terms",
		Name:        "terms",
		Description: "Terms that have imported sections, oldest first",
		MIMEType:    "application/json",
	}, s.handleTermsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{term}",
		Name:        "term-sections",
		Description: "Sections of a term, ordered by code",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)
}

func (s *Server) handleTermsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	terms, err := s.ports.Catalog.Terms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	names := make([]string, len(terms))
	for i, t := range terms {
		names[i] = t.String()
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling terms: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func (s *Server) handleSectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	raw := extractTerm(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	term, err := domain.ParseTermIdentifier(raw)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sections, err := s.ports.Catalog.Sections(ctx, &term)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	type sectionInfo struct {
		Code        string   `json:"code"`
		Title       string   `json:"title"`
		Instructors []string `json:"instructors,omitempty"`
	}

	infos := make([]sectionInfo, len(sections))
	for i := range sections {
		infos[i] = sectionInfo{
			Code:        sections[i].Identifier.LongCode(),
			Title:       sections[i].Course.Title,
			Instructors: sections[i].InstructorNames(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sections: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractTerm extracts the term from a URI like catalog://sections/{term}.
func extractTerm(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	term := strings.TrimPrefix(uri, prefix)
	if strings.Contains(term, "/") {
		return ""
	}
	return term
}
