// Package tracker holds module-level embedded assets shared by the
// subcommands, currently the goose migration files.
package tracker

import "embed"

// Migrations contains the embedded SQL migration files applied by the
// migrate subcommand.
//
//go:embed migrations/*.sql
var Migrations embed.FS
