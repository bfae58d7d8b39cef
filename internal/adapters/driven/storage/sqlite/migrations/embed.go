// Package migrations holds the numbered SQL files that build the section
// store schema. Each NNN_name.up.sql runs once, in order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
