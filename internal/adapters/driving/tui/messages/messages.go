// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// SearchCompleted carries the results of one live search back to the model.
// Seq identifies the keystroke that started it so stale results can be dropped.
type SearchCompleted struct {
	Seq         int
	Query       string
	Results     []domain.SearchResult
	Suggestions []string
	Err         error
}

// Focus identifies which pane receives key presses.
type Focus int

const (
	// FocusInput sends keys to the search bar.
	FocusInput Focus = iota
	// FocusList sends keys to the result list.
	FocusList
)

// String returns the pane name.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}
