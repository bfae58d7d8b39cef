package domain

import "runtime"

const unknownDescription = "Unknown"

// Settings keys as stored in the configuration file.
const (
	SettingSearchLimit       = "search.limit"
	SettingSearchWorkers     = "search.workers"
	SettingParallelThreshold = "search.parallel_threshold"
	SettingCatalogTerm       = "catalog.term"
	SettingStorageBackend    = "storage.backend"
)

// StorageBackend selects where the section catalog is kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists sections in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps sections in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (lost on exit)"
	default:
		return unknownDescription
	}
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Limit is the default maximum number of results.
	Limit int

	// Workers is the size of the scoring worker pool.
	Workers int

	// ParallelThreshold is the candidate count from which scoring is
	// spread over the worker pool.
	ParallelThreshold int
}

// CatalogSettings holds catalog selection configuration.
type CatalogSettings struct {
	// DefaultTerm is searched when no term is given. Empty means all terms.
	DefaultTerm string
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the section store implementation.
	Backend StorageBackend
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds search behaviour settings.
	Search SearchSettings

	// Catalog holds catalog selection settings.
	Catalog CatalogSettings

	// Storage holds persistence settings.
	Storage StorageSettings
}

// DefaultWorkers returns half the CPUs, at least one.
func DefaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Limit:             50,
			Workers:           DefaultWorkers(),
			ParallelThreshold: 2048,
		},
		Catalog: CatalogSettings{},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}

// SettingKeys returns every recognised settings key.
func SettingKeys() []string {
	return []string{
		SettingSearchLimit,
		SettingSearchWorkers,
		SettingParallelThreshold,
		SettingCatalogTerm,
		SettingStorageBackend,
	}
}
