package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		dataset     TEXT NOT NULL,
		id          TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active',
		domain      TEXT NOT NULL DEFAULT '',
		pos         INTEGER NOT NULL,
		PRIMARY KEY (dataset, id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		dataset     TEXT NOT NULL,
		id          INTEGER NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active',
		goal_id     TEXT NOT NULL DEFAULT '',
		sort_order  REAL NOT NULL,
		pos         INTEGER NOT NULL,
		PRIMARY KEY (dataset, id)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		dataset      TEXT NOT NULL,
		id           TEXT NOT NULL,
		project_id   INTEGER NOT NULL,
		kind         TEXT NOT NULL CHECK(kind IN ('task','resource','reference')),
		name         TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		tags         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		duration     TEXT NOT NULL DEFAULT '',
		due_date     TEXT,
		completed_at TEXT,
		acquired     INTEGER NOT NULL DEFAULT 0,
		store        TEXT NOT NULL DEFAULT '',
		type         TEXT NOT NULL DEFAULT '',
		link         TEXT NOT NULL DEFAULT '',
		content      TEXT NOT NULL DEFAULT '',
		pos          INTEGER NOT NULL,
		PRIMARY KEY (dataset, id)
	)`,
	`CREATE TABLE IF NOT EXISTS inbox (
		dataset TEXT NOT NULL,
		pos     INTEGER NOT NULL,
		text    TEXT NOT NULL,
		PRIMARY KEY (dataset, pos)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_project ON items(dataset, project_id)`,
}

func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
