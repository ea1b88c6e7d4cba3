package testhelpers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/conecta-coleta/migrations"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations applies all embedded goose migrations
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
