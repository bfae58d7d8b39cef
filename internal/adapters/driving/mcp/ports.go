package mcp

import "github.com/custodia-labs/catalog-search/internal/core/ports/driving"

// Ports are the services behind the MCP tools and resources. Catalog is
// optional; without it the terms resource is empty and section listings
// fail.
type Ports struct {
	Search  driving.SearchService
	Catalog driving.CatalogService
}

// Validate reports a missing Search service.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
