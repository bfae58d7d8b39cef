// Package sqlite persists imported sections and the import log in
// <home>/catalog.db using modernc.org/sqlite, so no cgo toolchain is needed.
//
// Each section is stored as a JSON payload keyed by its long code, with the
// term, department and course number in their own columns for lookups.
// Importing a term replaces all of its rows in one transaction. The schema
// comes from the numbered files in migrations/.
//
// The database runs in WAL mode and is safe for concurrent use.
package sqlite
