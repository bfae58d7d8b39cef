package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

var (
	searchLimit   int
	searchOffset  int
	searchTerm    string
	searchFilters []string
	searchJSON    bool
	searchExplain bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search course sections",
	Long: `Ranks sections against a free-text query. Matches on the section code
rank highest, then title, department, course number, instructor and
description. Exact matches always outrank partial ones.

Filters narrow the candidates before ranking and may be repeated:
  dept:csci  title:intro  desc:python  code:"csci 5"  instr:lovelace

With filters only, the query may be omitted.`,
	Example: `  catalog search "csci 5"
  catalog search -f dept:math calculus
  catalog search -f code:csci131 --term FA2023 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().StringVar(&searchTerm, "term", "", "term to search, e.g. FA2023 (default: configured term, else all)")
	searchCmd.Flags().StringArrayVarP(&searchFilters, "filter", "f", nil, "structured filter key:value (repeatable)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchExplain, "explain", false, "show which categories matched")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	if query == "" && len(searchFilters) == 0 {
		return errors.New("give a query, a --filter, or both")
	}

	opts := domain.SearchOptions{
		Limit:   searchLimit,
		Offset:  searchOffset,
		Explain: searchExplain,
	}

	term, err := parseTermFlag(searchTerm)
	if err != nil {
		return err
	}
	opts.Term = term

	for _, raw := range searchFilters {
		f, err := domain.ParseFilter(raw)
		if err != nil {
			return fmt.Errorf("filter %q: %w", raw, err)
		}
		opts.Filters = append(opts.Filters, f)
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	outputSearchTable(cmd, results)
	if len(results) == 0 && query != "" {
		suggestions, err := searchService.Suggest(cmd.Context(), query, opts.Term)
		if err == nil && len(suggestions) > 0 {
			cmd.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	}
	return nil
}

// parseTermFlag returns nil for an empty flag.
func parseTermFlag(s string) (*domain.TermIdentifier, error) {
	if s == "" {
		return nil, nil
	}
	term, err := domain.ParseTermIdentifier(s)
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	width := terminalWidth(cmd.OutOrStdout())
	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		line := fmt.Sprintf("  [%d] %s  %s", i+1, r.Section.Identifier.LongCode(), r.Section.Course.Title)
		score := fmt.Sprintf(" (%d)", r.Score)
		cmd.Println(truncate(line, width-len(score)) + score)

		if names := r.Section.InstructorNames(); len(names) > 0 {
			cmd.Printf("      %s\n", strings.Join(names, ", "))
		}
		if len(r.Matches) > 0 {
			cmd.Printf("      matched: %s\n", describeMatches(r.Matches))
		}
	}
	cmd.Println()
}

func describeMatches(matches []domain.Match) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		kind := "partial"
		if m.Exact {
			kind = "exact"
		}
		parts[i] = fmt.Sprintf("%s (%s)", m.Category, kind)
	}
	return strings.Join(parts, ", ")
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens s to width runes with an ellipsis. A width below 4
// leaves s unchanged.
func truncate(s string, width int) string {
	if width < 4 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
