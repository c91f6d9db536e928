package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		client_name       TEXT NOT NULL DEFAULT '',
		billable          INTEGER NOT NULL DEFAULT 1,
		hourly_rate_cents INTEGER,
		active            INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		project_id    TEXT REFERENCES projects(id) ON DELETE SET NULL,
		parent_id     TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'todo'
		              CHECK(status IN ('todo','in_progress','completed','archived')),
		priority      TEXT NOT NULL DEFAULT 'medium'
		              CHECK(priority IN ('low','medium','high','urgent')),
		billable      INTEGER NOT NULL DEFAULT 1,
		estimated_min INTEGER,
		due_date      TEXT,
		completed_at  TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT,
		duration_sec INTEGER CHECK(duration_sec IS NULL OR duration_sec >= 0),
		description  TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		billable     INTEGER NOT NULL DEFAULT 1,
		manual       INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	// Storage-level enforcement of the single-running-entry invariant:
	// at most one open entry (end_time IS NULL) per user.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_one_running
		ON time_entries(user_id) WHERE end_time IS NULL`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_start ON time_entries(user_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,
}
