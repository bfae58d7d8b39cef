package jsonfile

import "errors"

var (
	// ErrInvalidCatalog indicates the file is not a recognised catalog document.
	ErrInvalidCatalog = errors.New("invalid catalog file")

	// ErrNoCallback indicates a watcher was started without a change handler.
	ErrNoCallback = errors.New("watcher needs a change handler")
)
