package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

// handleMigrations runs a goose command against the embedded migrations.
// It's called from run() when the -migrate flag is set.
func handleMigrations(ctx context.Context, db *sql.DB, migrateCmd string, logger *slog.Logger) error {
	logger.Info("Executing migrations", "command", migrateCmd)
	return postgres.Migrate(ctx, db, migrateCmd, logger)
}
