// Package list provides the ranked section list for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// ResultList displays ranked sections in a navigable list. The selected
// section can be expanded to show its details.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	expanded bool
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	width    int
	height   int
}

// NewResultList creates an empty list. Nil styles or keymap fall back to
// the defaults.
func NewResultList(s *styles.Styles, km *keymap.KeyMap) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &ResultList{styles: s, keymap: km, width: 80, height: 10}
}

// Update moves the selection and toggles details on key presses.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	press, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch {
	case key.Matches(press, r.keymap.Up):
		r.MoveUp()
	case key.Matches(press, r.keymap.Down):
		r.MoveDown()
	case key.Matches(press, r.keymap.Expand):
		r.ToggleExpanded()
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Title.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")

	visible := r.height - 2
	if r.expanded {
		visible -= 6
	}
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i, &r.results[i]))
		if i == r.selected && r.expanded {
			lines = append(lines, r.renderDetail(&r.results[i].Section))
		}
	}

	return strings.Join(lines, "\n")
}

// renderRow formats one result as "code  title  score".
func (r *ResultList) renderRow(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	code := result.Section.Identifier.Code()
	title := result.Section.Course.Title
	score := fmt.Sprintf("%d", result.Score)

	maxTitle := r.width - len(code) - len(score) - 8
	if maxTitle < 10 {
		maxTitle = 10
	}
	title = clip(title, maxTitle)

	if index == r.selected {
		return r.styles.Selected.Render(fmt.Sprintf("%s%s  %-*s  %s", indicator, code, maxTitle, title, score))
	}
	return indicator + r.styles.Code.Render(code) + "  " +
		r.styles.Normal.Render(fmt.Sprintf("%-*s", maxTitle, title)) + "  " +
		r.styles.Score.Render(score)
}

// renderDetail formats the expanded view of a section.
func (r *ResultList) renderDetail(sec *domain.Section) string {
	lines := []string{r.styles.Code.Render(sec.Identifier.LongCode())}
	if names := sec.InstructorNames(); len(names) > 0 {
		lines = append(lines, r.styles.Normal.Render(strings.Join(names, ", ")))
	}
	var meta []string
	if sec.Campus != "" {
		meta = append(meta, string(sec.Campus))
	}
	if len(sec.Course.CourseAreas) > 0 {
		meta = append(meta, strings.Join(sec.Course.CourseAreas, " "))
	}
	if len(meta) > 0 {
		lines = append(lines, r.styles.Muted.Render(strings.Join(meta, " · ")))
	}
	if sec.Course.Description != "" {
		lines = append(lines, r.styles.Muted.Render(clip(sec.Course.Description, (r.width-8)*3)))
	}

	return r.styles.Detail.Width(r.width - 8).Render(strings.Join(lines, "\n"))
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetResults replaces the results and resets selection.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
	r.expanded = false
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up and collapses the details.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
		r.expanded = false
	}
}

// MoveDown moves selection down and collapses the details.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
		r.expanded = false
	}
}

// ToggleExpanded shows or hides details of the selected section.
func (r *ResultList) ToggleExpanded() {
	if len(r.results) == 0 {
		return
	}
	r.expanded = !r.expanded
}

// Expanded reports whether the selected section shows its details.
func (r *ResultList) Expanded() bool {
	return r.expanded
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}
