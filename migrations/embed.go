// Package migrations holds the goose SQL migrations, embedded so the
// server can apply them at startup without a separate goose binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
