package driving

import "github.com/custodia-labs/catalog-search/internal/core/domain"

// SettingsService reads and updates the persisted settings.
type SettingsService interface {
	// Get returns the stored settings with defaults filled in.
	Get() (*domain.AppSettings, error)

	// Set validates value for key (e.g. "search.limit", "25") and saves it.
	Set(key, value string) error

	// GetDefaults returns the settings used when nothing is stored.
	GetDefaults() domain.AppSettings
}
