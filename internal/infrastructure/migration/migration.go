package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration. Statements are idempotent so
// every start may run the full list.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the schema steps in the order they must run.
func Migrations() []Migration {
	return []Migration{
		{
			Name: "create_resume_sessions",
			SQL: `
				CREATE TABLE IF NOT EXISTS resume_sessions (
					id UUID PRIMARY KEY,
					resume JSONB NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
				);
			`,
		},
		{
			Name: "create_resume_exports",
			SQL: `
				CREATE TABLE IF NOT EXISTS resume_exports (
					id UUID PRIMARY KEY,
					session_id UUID NOT NULL,
					status TEXT NOT NULL,
					file_name TEXT NOT NULL DEFAULT '',
					storage_key TEXT NOT NULL DEFAULT '',
					pages INTEGER NOT NULL DEFAULT 0,
					size_bytes INTEGER NOT NULL DEFAULT 0,
					error TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
				);
			`,
		},
		{
			Name: "index_resume_exports_session_id",
			SQL:  `CREATE INDEX IF NOT EXISTS resume_exports_session_id_idx ON resume_exports (session_id);`,
		},
	}
}
