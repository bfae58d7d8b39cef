// Command catalog ranks course sections from the terminal, a TUI or an MCP client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/catalog-search/internal/adapters/driven/catalog/jsonfile"
	"github.com/custodia-labs/catalog-search/internal/adapters/driven/config/file"
	"github.com/custodia-labs/catalog-search/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-search/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/catalog-search/internal/adapters/driving/cli"
	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/services"
	"github.com/custodia-labs/catalog-search/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	home, err := file.DefaultDir()
	if err != nil {
		return err
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(settings.Storage.Backend, home)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []services.SearchOption{
		services.WithDefaultLimit(settings.Search.Limit),
		services.WithWorkers(settings.Search.Workers),
		services.WithParallelThreshold(settings.Search.ParallelThreshold),
	}
	if term, ok := settingsService.DefaultTerm(); ok {
		opts = append(opts, services.WithDefaultTerm(term))
	}

	searchService, err := services.NewSearchService(store, opts...)
	if err != nil {
		return err
	}
	defer searchService.Release()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:   searchService,
		Catalog:  services.NewCatalogService(store),
		Settings: settingsService,
	})
	cli.SetCatalogFiles(cli.CatalogFiles{
		Open: func(path string) driven.CatalogReader {
			return jsonfile.NewReader(path)
		},
		Watch: func(ctx context.Context, path string, onChange func(context.Context, []domain.Section) error) error {
			return jsonfile.NewWatcher(path, onChange).Run(ctx)
		},
	})

	return cli.Execute(ctx)
}

// openStore opens the section store for backend. The returned func closes it.
func openStore(backend domain.StorageBackend, home string) (driven.SectionStore, func(), error) {
	switch backend {
	case domain.StorageMemory:
		logger.Debug("Storage: in-memory sections")
		return memory.NewSectionStore(), func() {}, nil
	default:
		db, err := sqlite.NewStore(home)
		if err != nil {
			return nil, nil, fmt.Errorf("open section store: %w", err)
		}
		logger.Debug("Storage: %s", db.Path())
		return db.SectionStore(), func() {
			if err := db.Close(); err != nil {
				logger.Warn("close section store: %v", err)
			}
		}, nil
	}
}
