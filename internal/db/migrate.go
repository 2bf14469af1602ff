package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		order_number  TEXT NOT NULL UNIQUE,
		customer_name TEXT NOT NULL DEFAULT '',
		product_name  TEXT NOT NULL,
		article       TEXT NOT NULL DEFAULT '',
		quantity      INTEGER NOT NULL,
		start_date    TEXT,
		ship_date     TEXT,
		comment       TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sections (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE,
		capacity_minutes INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS section_operation_types (
		section_id TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		label      TEXT NOT NULL,
		PRIMARY KEY (section_id, label)
	)`,

	`CREATE TABLE IF NOT EXISTS workers (
		id         TEXT PRIMARY KEY,
		full_name  TEXT NOT NULL,
		section_id TEXT REFERENCES sections(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS worker_capabilities (
		worker_id TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		label     TEXT NOT NULL,
		PRIMARY KEY (worker_id, label)
	)`,

	`CREATE TABLE IF NOT EXISTS order_operations (
		id                 TEXT PRIMARY KEY,
		order_id           TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		section_id         TEXT NOT NULL REFERENCES sections(id),
		assigned_worker_id TEXT REFERENCES workers(id) ON DELETE SET NULL,
		name               TEXT NOT NULL DEFAULT '',
		sort_order         INTEGER NOT NULL,
		quantity           INTEGER NOT NULL DEFAULT 0,
		norm_per_unit_min  REAL NOT NULL DEFAULT 0,
		status             TEXT NOT NULL DEFAULT 'not_started'
		                   CHECK(status IN ('not_started','in_progress','paused','done','problem')),
		scheduled_start_at TEXT,
		scheduled_end_at   TEXT,
		completed_qty      INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL,
		UNIQUE (order_id, sort_order)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_order_operations_order ON order_operations(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_operations_worker ON order_operations(assigned_worker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workers_section ON workers(section_id)`,
}
