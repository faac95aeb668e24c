package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS bucket_listings (
	id            BIGSERIAL PRIMARY KEY,
	sort_order    TEXT        NOT NULL,
	outcome       TEXT        NOT NULL,
	bucket_count  INTEGER     NOT NULL DEFAULT 0,
	error_message TEXT        NOT NULL DEFAULT '',
	requested_at  TIMESTAMPTZ NOT NULL
)`

const sqliteSchema = `CREATE TABLE IF NOT EXISTS bucket_listings (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	sort_order    TEXT      NOT NULL,
	outcome       TEXT      NOT NULL,
	bucket_count  INTEGER   NOT NULL DEFAULT 0,
	error_message TEXT      NOT NULL DEFAULT '',
	requested_at  TIMESTAMP NOT NULL
)`

// Migrate creates the bucket_listings audit table if it does not exist.
func Migrate(db *sqlx.DB) error {
	schema := postgresSchema
	if db.DriverName() == "sqlite3" {
		schema = sqliteSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create bucket_listings: %w", err)
	}
	return nil
}
