package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

// App is the single-screen course search, following the Elm architecture.
// Every edit of the query starts a new search; results of older searches
// are discarded when they arrive late.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.SearchInput
	list   *list.ResultList
	status *status.Bar

	focus messages.Focus

	// seq numbers searches; only the latest one updates the list.
	seq int

	// lastQuery is the input value that produced the latest search.
	lastQuery string

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		input:  input.NewSearchInput(s),
		list:   list.NewResultList(s, km),
		status: status.NewBar(s, km),
		focus:  messages.FocusInput,
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("catalog - Course Search"),
		a.search(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SearchCompleted:
		a.handleResults(msg)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	if key.Matches(msg, a.keymap.ToggleFocus) {
		return a, a.toggleFocus()
	}

	if a.focus == messages.FocusList {
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == a.lastQuery {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.search())
}

func (a *App) toggleFocus() tea.Cmd {
	if a.focus == messages.FocusInput {
		a.focus = messages.FocusList
		a.input.Blur()
		a.status.SetBrowsing(true)
		return nil
	}
	a.focus = messages.FocusInput
	a.status.SetBrowsing(false)
	return a.input.Focus()
}

// search starts a search for the current input. An empty box lists every
// section in catalog order.
func (a *App) search() tea.Cmd {
	a.seq++
	a.lastQuery = a.input.Value()

	raw := a.lastQuery
	text, filters := input.ParseQuery(raw)
	if raw == "" {
		a.status.Reset()
	} else {
		a.status.Searching(raw)
	}

	seq := a.seq
	ctx := a.ctx
	svc := a.ports.Search
	return func() tea.Msg {
		results, err := svc.Search(ctx, text, domain.SearchOptions{Filters: filters})
		msg := messages.SearchCompleted{Seq: seq, Query: raw, Results: results, Err: err}
		if err == nil && len(results) == 0 && text != "" {
			msg.Suggestions, _ = svc.Suggest(ctx, text, nil) //nolint:errcheck // suggestions are optional
		}
		return msg
	}
}

func (a *App) handleResults(msg messages.SearchCompleted) {
	if msg.Seq != a.seq {
		return
	}

	a.err = msg.Err
	if msg.Err != nil {
		a.status.Failed(msg.Err)
		return
	}

	a.list.SetResults(msg.Results)
	a.status.Results(len(msg.Results), msg.Suggestions)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.styles.Title.Render("Course Search")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.input.View(),
		"",
		a.list.View(),
		"",
		a.status.View(),
	)
}

// SetDimensions sizes every component for a terminal of the given size.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	// header, input box (3 lines), two spacers, status bar
	a.list.SetDimensions(width, height-7)
	a.status.SetWidth(width)
}

// Query returns the current search bar text.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the displayed results.
func (a *App) Results() []domain.SearchResult {
	return a.list.Results()
}

// Focus returns the pane that receives key presses.
func (a *App) Focus() messages.Focus {
	return a.focus
}

// Expanded reports whether the selected section shows its details.
func (a *App) Expanded() bool {
	return a.list.Expanded()
}

// Err returns the error from the latest search, if any.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}
