// Package sql embeds the schema migrations for the facility database.
package sql

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
