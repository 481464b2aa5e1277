package db

import "embed"

// MigrationFS embeds the SQL migrations for users and OTP records. cmd/migrate applies them.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
