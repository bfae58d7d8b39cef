package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/catalog-search/internal/core/domain"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-search/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid stored
// values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			Limit:             s.getPositiveInt(domain.SettingSearchLimit, defaults.Search.Limit),
			Workers:           s.getPositiveInt(domain.SettingSearchWorkers, defaults.Search.Workers),
			ParallelThreshold: s.getPositiveInt(domain.SettingParallelThreshold, defaults.Search.ParallelThreshold),
		},
		Catalog: domain.CatalogSettings{
			DefaultTerm: s.getTerm(defaults.Catalog.DefaultTerm),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
		},
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case domain.SettingSearchLimit, domain.SettingSearchWorkers, domain.SettingParallelThreshold:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidSetting, key, value)
		}
		stored = n

	case domain.SettingCatalogTerm:
		if value == "" {
			stored = ""
			break
		}
		term, err := domain.ParseTermIdentifier(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSetting, key, err)
		}
		stored = term.String()

	case domain.SettingStorageBackend:
		backend := domain.StorageBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%w: %s must be one of %v, got %q",
				domain.ErrInvalidSetting, key, domain.AllStorageBackends(), value)
		}
		stored = backend.String()

	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// DefaultTerm returns the configured default term, if any.
func (s *SettingsService) DefaultTerm() (domain.TermIdentifier, bool) {
	term, err := domain.ParseTermIdentifier(s.configStore.GetString(domain.SettingCatalogTerm))
	if err != nil {
		return domain.TermIdentifier{}, false
	}
	return term, true
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if n := s.configStore.GetInt(key); n > 0 {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getTerm(defaultVal string) string {
	val := s.configStore.GetString(domain.SettingCatalogTerm)
	if val == "" {
		return defaultVal
	}
	term, err := domain.ParseTermIdentifier(val)
	if err != nil {
		return defaultVal
	}
	return term.String()
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(domain.SettingStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
