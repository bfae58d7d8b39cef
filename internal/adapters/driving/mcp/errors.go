// Package mcp serves catalog search to AI assistants over the Model Context
// Protocol, on stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingSearchService means Ports.Search was nil.
var ErrMissingSearchService = errors.New("mcp: search service is required")
