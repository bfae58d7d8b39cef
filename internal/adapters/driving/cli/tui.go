package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/catalog-search/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive course search.

Results update as you type. Words such as dept:csci or code:"csci 5"
in the search bar are applied as filters.

Controls:
  tab      - Switch between search bar and results
  ↑/k, ↓/j - Navigate results
  Enter    - Show or hide section details
  Esc      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if !isTerminal() {
		return errors.New("tui needs an interactive terminal; use 'catalog search' instead")
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(searchService))
	if err != nil {
		return fmt.Errorf("creating tui: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
