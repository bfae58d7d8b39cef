// Package driving holds the interfaces the CLI, TUI and MCP server call:
// search, catalog browsing/import, and settings. internal/core/services
// implements them.
package driving
