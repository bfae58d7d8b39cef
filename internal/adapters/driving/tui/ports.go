// Package tui is the interactive course search screen: a query box, a
// ranked result list and a status line, driven by the search port.
package tui

import (
	"errors"

	"github.com/custodia-labs/catalog-search/internal/core/ports/driving"
)

// ErrMissingSearchService means Ports.Search was nil.
var ErrMissingSearchService = errors.New("tui: search service is required")

// Ports are the services the screen calls.
type Ports struct {
	Search driving.SearchService
}

// NewPorts wraps a search service.
func NewPorts(search driving.SearchService) *Ports {
	return &Ports{Search: search}
}

// Validate reports a missing Search service.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
