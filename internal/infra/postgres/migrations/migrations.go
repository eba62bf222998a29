package migrations

import "github.com/uptrace/bun/migrate"

// Migrations collects the schema steps; each file registers itself from init
// and is versioned by its filename prefix.
var Migrations = migrate.NewMigrations()
