// Package database stores saved dates in SQLite.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// DB wraps sql.DB with the saved-dates queries.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Config holds database configuration options.
type Config struct {
	Path            string        // SQLite file, or ":memory:"
	MaxOpenConns    int           // 1: SQLite has a single writer
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration // wait on a locked database before failing
}

// DefaultConfig returns the settings used by the server and the importer.
func DefaultConfig(path string) Config {
	return Config{
		Path:            path,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		BusyTimeout:     5 * time.Second,
	}
}

func (c Config) inMemory() bool {
	return c.Path == ":memory:" || strings.HasPrefix(c.Path, "file::memory:")
}

// dsn adds the connection pragmas. Write transactions take the lock up
// front so an import never fails halfway on SQLITE_BUSY.
func (c Config) dsn() string {
	timeout := c.BusyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}

	journal := "WAL"
	if c.inMemory() {
		journal = "MEMORY"
	}

	return fmt.Sprintf("%s%s_journal_mode=%s&_foreign_keys=ON&_busy_timeout=%d&_txlock=immediate",
		c.Path, sep, journal, timeout.Milliseconds())
}

// Open connects to the database, creating its directory if needed.
// The caller must Close it.
func Open(cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.inMemory() {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite3", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(max(cfg.MaxOpenConns, 1))
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected",
		slog.String("path", cfg.Path),
		slog.Bool("in_memory", cfg.inMemory()),
	)

	return &DB{DB: sqlDB, logger: logger}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

// Health reports whether the database answers and the schema is current.
// A server started against an unmigrated file fails here rather than on
// the first saved-date request.
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("database query failed: %w", err)
	}
	if want := latestVersion(); version < want {
		return fmt.Errorf("schema at version %d, want %d: %w", version, want, ErrSchemaOutdated)
	}
	return nil
}

// Stats summarizes the saved-dates table.
type Stats struct {
	SchemaVersion int `json:"schema_version"`
	SavedDates    int `json:"saved_dates"`
	Wetons        int `json:"wetons"` // distinct day name + pasaran pairs
}

// Stats counts saved dates and the wetons they cover.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return nil, err
	}
	s.SchemaVersion = version

	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT day_name || ' ' || pasaran)
		FROM saved_dates
	`).Scan(&s.SavedDates, &s.Wetons)
	if err != nil {
		return nil, fmt.Errorf("count saved dates: %w", err)
	}
	return &s, nil
}

// =============================================================================
// Transactions
// =============================================================================

// Tx is a transaction carrying the same write helpers as DB.
type Tx struct {
	*sql.Tx
}

// BeginTx starts a new transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := db.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx}, nil
}

// WithTx runs fn inside a transaction, committing if fn returns nil and
// rolling back otherwise.
//
//	err := db.WithTx(ctx, func(tx *database.Tx) error {
//	    return tx.CreateSavedDate(ctx, saved)
//	})
func (db *DB) WithTx(ctx context.Context, fn func(*Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNotFound is returned when no saved date has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a label is already saved for that date.
	ErrDuplicate = errors.New("duplicate record")

	// ErrSchemaOutdated is returned by Health before Migrate has run.
	ErrSchemaOutdated = errors.New("schema not migrated")
)

// IsNotFound checks if an error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation reports whether err came from a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
