package migrations

import "embed"

// Migrations holds the golang-migrate up/down scripts.
//
//go:embed *.sql
var Migrations embed.FS
