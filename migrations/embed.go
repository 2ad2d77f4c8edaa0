package migrations

import "embed"

// Files holds the forward-only SQL migrations for the sqlite backend.
//
//go:embed *.sql
var Files embed.FS
