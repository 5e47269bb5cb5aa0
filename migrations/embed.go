// Package migrations embeds the goose SQL migrations so the binary carries
// its own schema and can run from any working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
