// Package migrations embeds the hero catalog schema.
package migrations

import "embed"

// Dir is the directory within FS holding the migration files.
const Dir = "."

//go:embed *.sql
var FS embed.FS
