// Package migrations embeds the versioned schema migrations for the local
// store. Migrations are additive only: new stores and indexes are created,
// existing ones are never dropped or redefined.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
