// Package status renders the one-line footer of the search screen.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/styles"
)

// State is the phase of the most recent search.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateError     State = "error"
)

// Bar shows the outcome of the last search on the left and key hints on
// the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	state       State
	query       string
	count       int
	suggestions []string
	err         error
	browsing    bool
}

// NewBar creates a footer. Nil styles or keymap fall back to the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// Searching records that a search for query is in flight.
func (b *Bar) Searching(query string) {
	b.state = StateSearching
	b.query = query
	b.err = nil
}

// Results records a finished search. Suggestions are shown as a
// "did you mean" hint.
func (b *Bar) Results(count int, suggestions []string) {
	b.state = StateResults
	b.count = count
	b.suggestions = suggestions
	b.err = nil
}

// Failed records a search error.
func (b *Bar) Failed(err error) {
	b.state = StateError
	b.err = err
	b.suggestions = nil
}

// Reset returns to the idle state, used when the query box is emptied.
func (b *Bar) Reset() {
	b.state = StateReady
	b.query = ""
	b.count = 0
	b.suggestions = nil
	b.err = nil
}

// SetBrowsing switches the hints between the query box and the result list.
func (b *Bar) SetBrowsing(browsing bool) { b.browsing = browsing }

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) { b.width = width }

// State returns the current phase.
func (b *Bar) State() State { return b.state }

// Hint returns the "did you mean" text, or "" when there is none.
func (b *Bar) Hint() string {
	if len(b.suggestions) == 0 {
		return ""
	}
	return "Did you mean " + strings.Join(b.suggestions, ", ") + "?"
}

// View renders the footer.
func (b *Bar) View() string {
	left := b.outcome()
	right := b.hints()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) outcome() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render(fmt.Sprintf("Searching %q...", b.query))
	case StateError:
		if b.err == nil {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.err.Error())
	case StateResults:
		text := "1 result"
		if b.count != 1 {
			text = fmt.Sprintf("%d results", b.count)
		}
		if hint := b.Hint(); hint != "" {
			text += "  " + hint
		}
		return b.styles.Normal.Render(text)
	default:
		return b.styles.Muted.Render("Type to search sections")
	}
}

func (b *Bar) hints() string {
	var bindings []key.Binding
	if b.browsing {
		bindings = b.keymap.ResultsHelp()
	} else {
		bindings = b.keymap.InputHelp()
	}

	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		h := binding.Help()
		parts[i] = h.Key + ": " + h.Desc
	}
	return b.styles.Muted.Render(strings.Join(parts, " | "))
}
