// Package toolserver exposes build-time embedded assets used by the CLI.
package toolserver

import "embed"

// Migrations contains the goose SQL migration files applied by the migrate
// command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
