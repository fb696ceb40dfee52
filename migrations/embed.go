// Package migrations holds the goose SQL migrations of the missions schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
