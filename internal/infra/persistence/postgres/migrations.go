package postgres

import "embed"

// MigrationsFS carries the schema migrations so the migrate command can
// run them without a checkout of the source tree.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
