package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTerm indicates a term identifier could not be parsed.
	// Valid identifiers look like FA2023, SP2024 or SU2024.
	ErrInvalidTerm = errors.New("invalid term identifier")

	// ErrUnknownFilterKey indicates a filter key outside the known set.
	ErrUnknownFilterKey = errors.New("unknown filter key")

	// ErrInvalidFilter indicates a filter payload could not be parsed.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrNoSections indicates an import carried no sections.
	ErrNoSections = errors.New("no sections")

	// ErrTermMismatch indicates a section belongs to a different term than the import.
	ErrTermMismatch = errors.New("section term does not match import term")

	// ErrInvalidSetting indicates an unknown settings key or an unacceptable value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrCatalogUnavailable indicates the section store is not configured.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
