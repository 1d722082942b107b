// Package migrations embeds the ledger's SQL schema migrations.
package migrations

import "embed"

// FS holds the numbered golang-migrate files.
//
//go:embed *.sql
var FS embed.FS
