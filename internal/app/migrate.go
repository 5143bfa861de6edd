package app

import (
	"context"

	"github.com/rdmitr/todo-api/internal/config"
)

// Startup DDL, applied in order. Every statement must be idempotent.
var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS tasks (
    id       BIGSERIAL PRIMARY KEY,
    title    VARCHAR(1024),
    due_date DATE
)
`,
	`
CREATE TABLE IF NOT EXISTS dones (
    id BIGINT PRIMARY KEY REFERENCES tasks (id) ON DELETE CASCADE
)
`,
}

func MustMigratePostgres() {
	cfg := config.Global().Postgres

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MigrateTimeout)
	defer cancel()

	for _, statement := range migrations {
		_, err := globalPostgresPool.Exec(ctx, statement)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to apply migration")
			panic(err)
		}
	}
	globalLogger.Info().
		Int("count", len(migrations)).
		Msg("applied postgres migrations")
}
