package database

import _ "embed"

// Schema is the current schema as produced by the migrations.
// Tests apply it directly instead of running the migrations.
//
//go:embed sqlc/schema.sql
var Schema string
