// Package file stores settings in <home>/config.toml. Nested TOML tables
// are exposed as dotted keys, so [search] limit = 25 reads as
// "search.limit".
package file
