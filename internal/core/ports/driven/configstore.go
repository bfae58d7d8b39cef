package driven

// ConfigStore holds application settings under flat dot-separated keys
// such as "search.limit".
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the string at key, or "" when missing or not a string.
	GetString(key string) string

	// GetInt returns the integer at key, or 0 when missing or not numeric.
	// Numeric strings are parsed.
	GetInt(key string) int

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save writes the current settings to storage.
	Save() error

	// Load replaces the in-memory settings with those in storage.
	Load() error

	// Path returns where settings are persisted.
	Path() string
}
