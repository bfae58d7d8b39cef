// Package input is the query box of the search screen.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// labelWidth is the space taken by the "Search: " label and the field border.
const labelWidth = 14

// minFieldWidth keeps the field usable in narrow terminals.
const minFieldWidth = 20

// SearchInput is a focused textinput with the search label and border.
// Value, Focus, Blur and Focused come from the embedded model.
type SearchInput struct {
	textinput.Model
	styles *styles.Styles
}

// NewSearchInput creates a focused, empty query box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = `csci 5, intro programming, dept:math calculus`
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &SearchInput{Model: ti, styles: s}
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text field.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the label and the field, highlighted while focused.
func (s *SearchInput) View() string {
	field := s.styles.InputField
	if s.Focused() {
		field = s.styles.InputFocused
	}
	//nolint:misspell // lipgloss.Center is the library's spelling
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.styles.Title.Render("Search: "), field.Render(s.Model.View()))
}

// SetWidth fits the field into a line of the given width.
func (s *SearchInput) SetWidth(width int) {
	s.Width = max(width-labelWidth, minFieldWidth)
}

// Query splits the current text into free text and filters.
func (s *SearchInput) Query() (string, []domain.Filter) {
	return ParseQuery(s.Value())
}
