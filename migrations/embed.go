package migrations

import "embed"

// Files stores the forward-only SQL migrations for the catalog mirror.
//
//go:embed *.sql
var Files embed.FS
