package database

import (
	"context"
	"fmt"
	"log/slog"
)

// migration is one schema step. Versions are contiguous from 1.
type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{1, "saved_dates", migrationV1SavedDates},
	{2, "weton_index", migrationV2WetonIndex},
}

func latestVersion() int {
	return migrations[len(migrations)-1].version
}

// migrationV1SavedDates creates the saved_dates table.
//
// The Javanese side of each row is filled from the converter at insert
// time. Conversion is deterministic, so weton lookups stay a plain
// indexed query.
const migrationV1SavedDates = `
CREATE TABLE IF NOT EXISTS saved_dates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- User supplied
    label TEXT NOT NULL CHECK (length(label) > 0),
    gregorian_date TEXT NOT NULL,  -- YYYY-MM-DD
    notes TEXT,

    -- Filled from the converter
    javanese TEXT NOT NULL,        -- formatted conversion string
    day_name TEXT NOT NULL,        -- Senin..Minggu
    pasaran TEXT NOT NULL,         -- Wage..Pon
    wuku TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (label, gregorian_date)
);

CREATE INDEX IF NOT EXISTS idx_saved_dates_gregorian
    ON saved_dates(gregorian_date);
`

const migrationV2WetonIndex = `
CREATE INDEX IF NOT EXISTS idx_saved_dates_weton
    ON saved_dates(day_name, pasaran);

CREATE TRIGGER IF NOT EXISTS trg_saved_dates_updated_at
    AFTER UPDATE ON saved_dates
    FOR EACH ROW
    WHEN NEW.updated_at = OLD.updated_at
BEGIN
    UPDATE saved_dates SET updated_at = datetime('now') WHERE id = NEW.id;
END;
`

const createSchemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// SchemaVersion returns the highest applied migration, or 0 on a fresh
// database.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var tables int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations'",
	).Scan(&tables)
	if err != nil {
		return 0, fmt.Errorf("look up schema_migrations: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Migrate applies every migration newer than the current schema version
// in one transaction and returns how many were applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return 0, fmt.Errorf("create schema_migrations table: %w", err)
	}

	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return 0, err
	}

	pending := migrations[min(current, len(migrations)):]
	if len(pending) == 0 {
		db.logger.Debug("schema up to date", slog.Int("version", current))
		return 0, nil
	}

	err = db.WithTx(ctx, func(tx *Tx) error {
		for _, m := range pending {
			db.logger.Info("applying migration",
				slog.Int("version", m.version),
				slog.String("name", m.name),
			)

			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return fmt.Errorf("execute migration %d (%s): %w", m.version, m.name, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
				m.version, m.name,
			); err != nil {
				return fmt.Errorf("record migration %d: %w", m.version, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Info("migrations complete",
		slog.Int("applied", len(pending)),
		slog.Int("version", latestVersion()),
	)
	return len(pending), nil
}
