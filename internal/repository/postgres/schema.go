package postgres

import (
	"context"
	"database/sql"
)

// InitSchema creates the tables if they do not exist yet. It is idempotent and
// safe to run on every startup; it is not a substitute for real migrations.
func InitSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		location   TEXT NOT NULL,
		capacity   INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS registrations (
		id       BIGSERIAL PRIMARY KEY,
		user_id  TEXT NOT NULL,
		event_id BIGINT NOT NULL REFERENCES events(id),
		UNIQUE (user_id, event_id)
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}
