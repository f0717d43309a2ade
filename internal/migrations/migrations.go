// Package migrations embeds the goose migrations for the SQL credential
// backends. The statements are written to run unchanged on SQLite and
// PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
