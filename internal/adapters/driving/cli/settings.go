package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure search limits, the scoring worker pool, the default
term and the storage backend.

Use subcommands to change single settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting.

Keys:
  search.limit               default number of results
  search.workers             scoring worker pool size
  search.parallel_threshold  candidates needed before scoring in parallel
  catalog.term               default term, e.g. FA2023 ("" searches all terms)
  storage.backend            sqlite or memory`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	cmd.Printf("  Workers: %d\n", settings.Search.Workers)
	cmd.Printf("  Parallel threshold: %d\n", settings.Search.ParallelThreshold)
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.DefaultTerm != "" {
		cmd.Printf("  Default term: %s\n", settings.Catalog.DefaultTerm)
	} else {
		cmd.Println("  Default term: (all terms)")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	cmd.Println()

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %q\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Catalog Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: storage backend
	cmd.Println("Step 1: Select Storage Backend")
	cmd.Println("------------------------------")
	backends := domain.AllStorageBackends()
	defaultIdx := 1
	for i, b := range backends {
		if b == current.Storage.Backend {
			defaultIdx = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	backend := backends[parseChoice(readLine(reader), len(backends), defaultIdx)-1]
	if err := settingsService.Set(domain.SettingStorageBackend, backend.String()); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}
	cmd.Printf("Set storage backend to: %s\n\n", backend.Description())

	// Step 2: default term
	cmd.Println("Step 2: Default Term")
	cmd.Println("--------------------")
	cmd.Printf("Term searched when none is given, e.g. FA2023. Enter - for all terms [%s]: ", current.Catalog.DefaultTerm)
	if input := readLine(reader); input != "" {
		if input == "-" {
			input = ""
		}
		if err := settingsService.Set(domain.SettingCatalogTerm, input); err != nil {
			return fmt.Errorf("failed to set default term: %w", err)
		}
	}
	cmd.Println()

	// Step 3: result limit
	cmd.Println("Step 3: Result Limit")
	cmd.Println("--------------------")
	cmd.Printf("Default number of results [%d]: ", current.Search.Limit)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(domain.SettingSearchLimit, input); err != nil {
			return fmt.Errorf("failed to set result limit: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
