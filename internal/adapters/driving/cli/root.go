// Package cli implements the catalog command line interface with cobra.
// Commands reach the core through the driving ports set by SetServices.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

var version = "dev"

var (
	verbose  bool
	logLevel string
)

// Services wired by main. Nil services make the commands that need them fail.
var (
	searchService   driving.SearchService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	catalogFiles    CatalogFiles
)

// Services groups the driving ports the commands use.
type Services struct {
	Search   driving.SearchService
	Catalog  driving.CatalogService
	Settings driving.SettingsService
}

// WatchFunc watches a catalog file and calls onChange with its sections
// after every change, until ctx is cancelled.
type WatchFunc func(ctx context.Context, path string, onChange func(context.Context, []domain.Section) error) error

// CatalogFiles opens and watches catalog files for import and watch.
type CatalogFiles struct {
	Open  func(path string) driven.CatalogReader
	Watch WatchFunc
}

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search a course catalog from the terminal",
	Long: `catalog ranks course sections against free-text queries and
structured filters such as dept:csci or code:"csci 5".

Import a term's sections from JSON first, then search them from the
command line, the terminal UI, or an MCP client.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if logLevel == "" {
			return nil
		}
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "minimum verbose level: debug, info or warn")
}

// SetServices sets the core services used by the commands.
func SetServices(s Services) {
	searchService = s.Search
	catalogService = s.Catalog
	settingsService = s.Settings
}

// SetCatalogFiles sets how catalog files are opened and watched.
func SetCatalogFiles(files CatalogFiles) {
	catalogFiles = files
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}
