package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migrations are embedded so `food-picker migrate` works regardless of the
// current working directory. Every file must be valid for both PostgreSQL
// and SQLite.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// ExecFunc runs one migration script.
type ExecFunc func(ctx context.Context, script string) error

// PgExec adapts a pgx pool to ExecFunc.
func PgExec(pool *pgxpool.Pool) ExecFunc {
	return func(ctx context.Context, script string) error {
		_, err := pool.Exec(ctx, script)
		return err
	}
}

// SQLExec adapts a database/sql handle to ExecFunc.
func SQLExec(conn *sql.DB) ExecFunc {
	return func(ctx context.Context, script string) error {
		_, err := conn.ExecContext(ctx, script)
		return err
	}
}

// ApplyMigrations runs every embedded script in name order. Scripts are
// idempotent (IF NOT EXISTS), so running them again is harmless.
func ApplyMigrations(ctx context.Context, exec ExecFunc) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Debug().Str("migration", name).Msg("migration applied")
	}
	return nil
}
