package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS outcome_links (
			session_id TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS session_rollups (
			session_id      TEXT PRIMARY KEY,
			analyzed_at     TEXT NOT NULL,
			node_count      INTEGER NOT NULL,
			total_tokens    INTEGER NOT NULL,
			avg_complexity  REAL NOT NULL,
			max_complexity  INTEGER NOT NULL,
			avg_latency_ms  REAL NOT NULL,
			duration_ms     INTEGER NOT NULL,
			classification  TEXT NOT NULL,
			linearity       REAL NOT NULL,
			density         REAL NOT NULL,
			rhythm          REAL NOT NULL,
			breadth         REAL NOT NULL,
			convergence     REAL NOT NULL,
			momentum        REAL NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_rollups_classification ON session_rollups(classification)`,
		`CREATE INDEX IF NOT EXISTS idx_rollups_analyzed_at ON session_rollups(analyzed_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
